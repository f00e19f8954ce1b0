// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package folding implements text folding used to normalize headwords and
// imported dictionary text.
package folding

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// Case returns the lower case form of s using language-neutral mappings.
// Strings which differ only in letter case map to the same string. Full
// case folding is not applied, so "ß" does not match "ss".
func Case(s string) string {
	// Casers hold state and are not safe for concurrent use.
	return cases.Lower(language.Und).String(s)
}

// Whitespace trims s and collapses internal whitespace spans to a single
// space.
func Whitespace(s string) string {
	out, _, err := transform.String(&WhitespaceFolder{}, s)
	if err != nil {
		// WhitespaceFolder only returns short buffer errors which
		// transform.String handles.
		return s
	}
	return out
}
