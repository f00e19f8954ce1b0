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

import (
	"strconv"
	"strings"
)

// NoDefinitions is the text returned by Format for an empty entry list.
const NoDefinitions = "No definitions found."

// Format renders entries as display text. The output depends only on the
// input so identical entries always produce identical text.
func Format(entries []*Entry) string {
	if len(entries) == 0 {
		return NoDefinitions
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Word)
		b.WriteByte('\n')

		if e.Phonetic != "" {
			b.WriteString(e.Phonetic)
			b.WriteString("\n\n")
		}

		for _, m := range e.Meanings {
			b.WriteString(strings.ReplaceAll(m.PartOfSpeech, "-", " "))
			b.WriteByte('\n')

			for i, d := range m.Definitions {
				b.WriteString(strconv.Itoa(i + 1))
				b.WriteString(". ")
				b.WriteString(d.Definition)
				b.WriteByte('\n')

				if d.Example != "" {
					b.WriteString("   Example: ")
					b.WriteString(d.Example)
					b.WriteByte('\n')
				}
			}

			if len(m.Synonyms) > 0 {
				b.WriteString("   Synonyms: ")
				b.WriteString(strings.Join(m.Synonyms, ", "))
				b.WriteByte('\n')
			}

			b.WriteByte('\n')
		}
	}

	return b.String()
}

// FormatError renders a lookup failure as display text.
func FormatError(err error) string {
	return "Error: " + err.Error()
}
