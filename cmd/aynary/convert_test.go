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
package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-aynary/store"
)

func TestConvertCSV(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"word,definition",
		"run,To move swiftly.",
		"runner,\"Someone who <b>runs</b>,  especially in a race.\"",
		",A definition without a word.",
		"empty,",
		"  look   up ,To search for something.",
	}, "\n")

	entries, err := convertCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("convertCSV: %v", err)
	}

	type row struct {
		Word, PartOfSpeech, Definition string
	}
	var got []row
	for _, e := range entries {
		if len(e.Meanings) != 1 || len(e.Meanings[0].Definitions) != 1 {
			t.Fatalf("entry %q: unexpected shape", e.Word)
		}
		got = append(got, row{
			Word:         e.Word,
			PartOfSpeech: e.Meanings[0].PartOfSpeech,
			Definition:   e.Meanings[0].Definitions[0].Definition,
		})
	}

	want := []row{
		{Word: "run", PartOfSpeech: "noun", Definition: "To move swiftly."},
		{Word: "runner", PartOfSpeech: "noun", Definition: "Someone who runs, especially in a race."},
		{Word: "look up", PartOfSpeech: "noun", Definition: "To search for something."},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("convertCSV (-want, +got):\n%s", diff)
	}
}

func TestConvertCSV_columnOrder(t *testing.T) {
	t.Parallel()

	entries, err := convertCSV(strings.NewReader("Definition,Word\nTo move swiftly.,run\n"))
	if err != nil {
		t.Fatalf("convertCSV: %v", err)
	}
	if len(entries) != 1 || entries[0].Word != "run" {
		t.Fatalf("convertCSV: got %v", entries)
	}
}

func TestConvertCSV_badHeader(t *testing.T) {
	t.Parallel()

	if _, err := convertCSV(strings.NewReader("term,meaning\nrun,To move.\n")); err == nil {
		t.Fatal("convertCSV: expected error")
	}
	if _, err := convertCSV(strings.NewReader("")); err == nil {
		t.Fatal("convertCSV: expected error for empty input")
	}
}

func TestWriteDataset(t *testing.T) {
	t.Parallel()

	entries, err := convertCSV(strings.NewReader("word,definition\nrun,To move swiftly.\nrunner,Someone who runs.\n"))
	if err != nil {
		t.Fatalf("convertCSV: %v", err)
	}

	for _, name := range []string{"out.json", "out.json.gz", "out.json.dz"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), name)
			if err := writeDataset(path, entries); err != nil {
				t.Fatalf("writeDataset: %v", err)
			}

			s, err := store.Open(path)
			if err != nil {
				t.Fatalf("store.Open: %v", err)
			}
			if diff := cmp.Diff(entries, s.All()); diff != "" {
				t.Fatalf("entries (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestWriteDataset_unsupported(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.json.xz")
	if err := writeDataset(path, nil); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("writeDataset: got %v, want %v", err, ErrUnsupported)
	}
}
