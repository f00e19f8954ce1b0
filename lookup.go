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

package aynary

import "context"

// Lookuper resolves a free-text term into an ordered list of entries.
//
// Implementations trim the term and return an error wrapping ErrEmptyQuery
// if nothing remains. A term matching nothing returns a *NotFoundError.
type Lookuper interface {
	Lookup(ctx context.Context, term string) ([]*Entry, error)
}

// LookupText resolves term and renders the result, or the failure, as
// display text.
func LookupText(ctx context.Context, l Lookuper, term string) string {
	entries, err := l.Lookup(ctx, term)
	if err != nil {
		return FormatError(err)
	}
	return Format(entries)
}
