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

// Package store implements the lexical store: an immutable, ordered
// collection of dictionary entries.
package store

import (
	"bytes"
	"compress/gzip"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-aynary"
)

//go:embed data/dictionary.json
var bundled []byte

// Store is an immutable list of entries. The order of the entries is the
// order of the dataset they were read from. A Store is safe for concurrent
// use.
type Store struct {
	entries []*aynary.Entry
}

// New creates a store from the given entries. The slice is copied. Every
// entry must have a non-empty headword.
func New(entries []*aynary.Entry) (*Store, error) {
	for i, e := range entries {
		if e == nil {
			return nil, fmt.Errorf("%w: entry %d is null", aynary.ErrDatasetLoad, i)
		}
		if e.Word == "" {
			return nil, fmt.Errorf("%w: entry %d has an empty word", aynary.ErrDatasetLoad, i)
		}
	}
	return &Store{
		entries: slices.Clone(entries),
	}, nil
}

// Load reads a JSON array of entries from r.
func Load(r io.Reader) (*Store, error) {
	var entries []*aynary.Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %w", aynary.ErrDatasetLoad, err)
	}
	return New(entries)
}

// Open reads a dataset file. Files ending in .gz are read with gzip and
// files ending in .dz are read with dictzip. Anything else is read as plain
// JSON.
func Open(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %q: %w", aynary.ErrDatasetLoad, path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch ext := strings.ToLower(path); {
	case strings.HasSuffix(ext, ".gz"):
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: opening %q: %w", aynary.ErrDatasetLoad, path, err)
		}
		defer z.Close()
		r = z
	case strings.HasSuffix(ext, ".dz"):
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: opening %q: %w", aynary.ErrDatasetLoad, path, err)
		}
		r = z
	}

	s, err := Load(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return s, nil
}

var loadBundled = sync.OnceValues(func() (*Store, error) {
	return Load(bytes.NewReader(bundled))
})

// Bundled returns the store parsed from the dataset compiled into the
// binary. The dataset is parsed on first use only. If it cannot be parsed an
// empty store is returned along with the error.
func Bundled() (*Store, error) {
	s, err := loadBundled()
	if err != nil {
		return &Store{}, err
	}
	return s, nil
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// At returns the i'th entry in store order.
func (s *Store) At(i int) *aynary.Entry {
	return s.entries[i]
}

// All returns the entries in store order. The returned slice may be modified
// by the caller but the entries it points to must not be.
func (s *Store) All() []*aynary.Entry {
	return slices.Clone(s.entries)
}
