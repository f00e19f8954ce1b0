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
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-aynary"
)

var searchCommand = &cli.Command{
	Name:      "search",
	Usage:     "look up a word without a running instance",
	ArgsUsage: "WORD",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:               "table",
			Usage:              "print a summary table instead of definitions",
			Aliases:            []string{"t"},
			DisableDefaultText: true,
		},
	},
	Action: func(c *cli.Context) error {
		word, err := wordArg(c)
		if err != nil {
			return err
		}

		cfg, logger, err := setup(c)
		if err != nil {
			return err
		}
		l, err := newLookuper(cfg.Dictionary, logger)
		if err != nil {
			return err
		}

		return search(c.Context, c.App.Writer, l, word, c.Bool("table"))
	},
}

// search looks up word and prints the result to w. Lookup failures are
// printed like any other result.
func search(ctx context.Context, w io.Writer, l aynary.Lookuper, word string, asTable bool) error {
	entries, err := l.Lookup(ctx, word)
	if err != nil {
		_, err = fmt.Fprintln(w, aynary.FormatError(err))
		return err
	}

	if !asTable {
		_, err = fmt.Fprint(w, aynary.Format(entries))
		return err
	}

	tbl := table.New("Word", "Phonetic", "Parts of Speech", "Definitions").WithWriter(w)
	for _, e := range entries {
		var pos []string
		n := 0
		for _, m := range e.Meanings {
			pos = append(pos, strings.ReplaceAll(m.PartOfSpeech, "-", " "))
			n += len(m.Definitions)
		}
		tbl.AddRow(e.Word, e.Phonetic, strings.Join(pos, ", "), n)
	}
	tbl.Print()
	return nil
}
