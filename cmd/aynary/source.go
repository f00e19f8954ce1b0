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
	"log/slog"
	"os"

	"github.com/ianlewis/go-aynary"
	"github.com/ianlewis/go-aynary/internal/config"
	"github.com/ianlewis/go-aynary/online"
	"github.com/ianlewis/go-aynary/resolve"
	"github.com/ianlewis/go-aynary/store"
)

// newLookuper builds the lookup source selected by cfg.
func newLookuper(cfg config.DictionaryConfig, logger *slog.Logger) (aynary.Lookuper, error) {
	if cfg.Source == config.SourceOnline {
		return online.New(cfg.BaseURL, cfg.Timeout, logger), nil
	}

	s, err := openStore(cfg.DataPath, logger)
	if err != nil {
		return nil, err
	}
	return resolve.New(s), nil
}

// openStore opens the dataset at path. If path is empty the first existing
// dataset location is used, falling back to the bundled dataset.
func openStore(path string, logger *slog.Logger) (*store.Store, error) {
	if path != "" {
		return store.Open(path)
	}

	for _, loc := range datasetLocations() {
		if _, err := os.Stat(loc); err != nil {
			continue
		}
		s, err := store.Open(loc)
		if err != nil {
			logger.Warn("skipping dataset", slog.String("path", loc), slog.String("error", err.Error()))
			continue
		}
		logger.Debug("using dataset", slog.String("path", loc), slog.Int("entries", s.Len()))
		return s, nil
	}

	s, err := store.Bundled()
	if err != nil {
		// Lookups still work but never find anything.
		logger.Warn("bundled dataset unavailable", slog.String("error", err.Error()))
	}
	return s, nil
}
