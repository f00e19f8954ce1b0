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

// Entry is a dictionary entry. Entries are shared between readers and must
// not be modified after they are added to a store.
type Entry struct {
	// Word is the entry's headword. It is never empty.
	Word string `json:"word"`

	// Phonetic is an optional pronunciation string.
	Phonetic string `json:"phonetic,omitempty"`

	Phonetics  []Phonetic `json:"phonetics"`
	Meanings   []Meaning  `json:"meanings"`
	License    *License   `json:"license,omitempty"`
	SourceURLs []string   `json:"sourceUrls"`
}

// Phonetic is a single pronunciation of an entry.
type Phonetic struct {
	Text      string   `json:"text,omitempty"`
	Audio     string   `json:"audio,omitempty"`
	SourceURL string   `json:"sourceUrl,omitempty"`
	License   *License `json:"license,omitempty"`
}

// Meaning groups the definitions of an entry sharing a part of speech.
type Meaning struct {
	// PartOfSpeech may contain hyphens, e.g. "phrasal-verb".
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms"`
	Antonyms     []string     `json:"antonyms"`
}

// Definition is a single definition with an optional usage example.
type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

// License is a content license.
type License struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// String returns a string representation of the Entry.
func (e *Entry) String() string {
	return Format([]*Entry{e})
}
