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
	"compress/gzip"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ianlewis/go-dictzip"
	"github.com/k3a/html2text"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-aynary"
	"github.com/ianlewis/go-aynary/internal/folding"
	"github.com/ianlewis/go-aynary/store"
)

// defaultPartOfSpeech is used for every converted definition. The CSV format
// has no part of speech column.
const defaultPartOfSpeech = "noun"

var convertCommand = &cli.Command{
	Name:      "convert",
	Usage:     "convert a word,definition CSV file into a dataset",
	ArgsUsage: "CSV OUT",
	Description: `Reads a CSV file with a header row naming "word" and "definition"
columns and writes a dataset usable with the dictionary.data_path setting.
HTML markup in definitions is removed. Rows with an empty word or
definition are skipped. OUT ending in .dz is compressed with dictzip and
OUT ending in .gz is compressed with gzip.`,
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return fmt.Errorf("%w: expected CSV and OUT arguments", ErrFlagParse)
		}

		f, err := os.Open(c.Args().Get(0))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrAynary, err)
		}
		defer f.Close()

		entries, err := convertCSV(f)
		if err != nil {
			return err
		}

		out := c.Args().Get(1)
		if err := writeDataset(out, entries); err != nil {
			return err
		}
		_, err = fmt.Fprintf(c.App.Writer, "wrote %d entries to %s\n", len(entries), out)
		return err
	},
}

// convertCSV reads entries from a word,definition CSV file.
func convertCSV(r io.Reader) ([]*aynary.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", ErrAynary, err)
	}
	wordCol, defCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "word":
			wordCol = i
		case "definition":
			defCol = i
		}
	}
	if wordCol < 0 || defCol < 0 {
		return nil, fmt.Errorf("%w: header must name word and definition columns", ErrAynary)
	}

	entries := []*aynary.Entry{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAynary, err)
		}
		if wordCol >= len(record) || defCol >= len(record) {
			continue
		}

		word := folding.Whitespace(record[wordCol])
		definition := folding.Whitespace(html2text.HTML2Text(record[defCol]))
		if word == "" || definition == "" {
			continue
		}

		entries = append(entries, &aynary.Entry{
			Word:      word,
			Phonetics: []aynary.Phonetic{},
			Meanings: []aynary.Meaning{
				{
					PartOfSpeech: defaultPartOfSpeech,
					Definitions: []aynary.Definition{
						{
							Definition: definition,
							Synonyms:   []string{},
							Antonyms:   []string{},
						},
					},
					Synonyms: []string{},
					Antonyms: []string{},
				},
			},
			SourceURLs: []string{},
		})
	}

	// Every entry has a word, but check the dataset the same way it will be
	// checked when loaded.
	if _, err := store.New(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// unsupportedExts are compressed formats that store.Open can't read.
var unsupportedExts = []string{".bz2", ".xz", ".zst", ".zip"}

// writeDataset writes entries to path, compressing based on its extension.
func writeDataset(path string, entries []*aynary.Entry) (err error) {
	for _, ext := range unsupportedExts {
		if strings.HasSuffix(strings.ToLower(path), ext) {
			return fmt.Errorf("%w: output format %q", ErrUnsupported, ext)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAynary, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("%w: %w", ErrAynary, cerr)
		}
	}()

	var w io.Writer = f
	var z io.Closer
	switch ext := strings.ToLower(path); {
	case strings.HasSuffix(ext, ".dz"):
		dz, err := dictzip.NewWriter(f)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrAynary, err)
		}
		w, z = dz, dz
	case strings.HasSuffix(ext, ".gz"):
		gz := gzip.NewWriter(f)
		w, z = gz, gz
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("%w: %w", ErrAynary, err)
	}

	if z != nil {
		if err := z.Close(); err != nil {
			return fmt.Errorf("%w: %w", ErrAynary, err)
		}
	}
	return nil
}
