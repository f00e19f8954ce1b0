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

// Package resolve implements offline lookups against a lexical store.
//
// A term is matched case-insensitively against headwords. Entries whose
// headword equals the term are returned if there are any. Otherwise entries
// whose headword starts with the term are returned. Results are always in
// store order.
package resolve

import (
	"context"
	"slices"
	"strings"

	"github.com/ianlewis/go-aynary"
	"github.com/ianlewis/go-aynary/internal/folding"
	"github.com/ianlewis/go-aynary/internal/index"
	"github.com/ianlewis/go-aynary/store"
)

// posting is a folded headword and the position of its entry in the store.
type posting struct {
	key string
	pos int
}

func (p posting) String() string {
	return p.key
}

// Resolver resolves terms against a store.
type Resolver struct {
	store *store.Store
	index *index.Index[posting]
}

// New builds a Resolver for s.
func New(s *store.Store) *Resolver {
	postings := make([]posting, 0, s.Len())
	for i := range s.Len() {
		postings = append(postings, posting{
			key: folding.Case(s.At(i).Word),
			pos: i,
		})
	}

	return &Resolver{
		store: s,
		index: index.New(postings),
	}
}

// Lookup implements aynary.Lookuper.
func (r *Resolver) Lookup(_ context.Context, term string) ([]*aynary.Entry, error) {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return nil, aynary.ErrEmptyQuery
	}
	key := folding.Case(trimmed)

	matches := r.index.Search(key)
	if len(matches) == 0 {
		matches = r.index.Prefix(key)
	}
	if len(matches) == 0 {
		return nil, &aynary.NotFoundError{Term: trimmed}
	}

	return r.entries(matches), nil
}

// entries returns the entries for the postings in store order.
func (r *Resolver) entries(matches []posting) []*aynary.Entry {
	positions := make([]int, 0, len(matches))
	for _, m := range matches {
		positions = append(positions, m.pos)
	}
	slices.Sort(positions)

	entries := make([]*aynary.Entry, 0, len(positions))
	for _, pos := range positions {
		entries = append(entries, r.store.At(pos))
	}
	return entries
}
