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

package testutil

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-aynary"
)

// Compression is the compression applied to a dataset fixture.
type Compression int

const (
	// None writes plain JSON.
	None Compression = iota

	// Gzip writes gzip compressed JSON.
	Gzip

	// DictZip writes dictzip compressed JSON.
	DictZip
)

// Ext returns the file extension used for the compression.
func (c Compression) Ext() string {
	switch c {
	case Gzip:
		return ".json.gz"
	case DictZip:
		return ".json.dz"
	default:
		return ".json"
	}
}

// MakeDataset encodes entries as a JSON dataset.
func MakeDataset(t *testing.T, entries []*aynary.Entry) []byte {
	t.Helper()

	b, err := json.Marshal(entries)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// MakeTempDataset writes entries to a dataset file in a temporary directory
// and returns its path. The file is removed when the test finishes.
func MakeTempDataset(t *testing.T, entries []*aynary.Entry, c Compression) string {
	t.Helper()
	return WriteTempFile(t, "dataset"+c.Ext(), MakeDataset(t, entries), c)
}

// WriteTempFile writes data to a file named name in a temporary directory,
// compressing it with c, and returns its path.
func WriteTempFile(t *testing.T, name string, data []byte, c Compression) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var w io.WriteCloser
	switch c {
	case Gzip:
		w = gzip.NewWriter(f)
	case DictZip:
		w, err = dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
	}

	if w == nil {
		if _, err := f.Write(data); err != nil {
			t.Fatal(err)
		}
		return path
	}

	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

// Entry returns a minimal entry with a single noun definition.
func Entry(word, definition string) *aynary.Entry {
	return &aynary.Entry{
		Word: word,
		Meanings: []aynary.Meaning{
			{
				PartOfSpeech: "noun",
				Definitions: []aynary.Definition{
					{Definition: definition},
				},
			},
		},
	}
}
