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
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-aynary/bridge"
)

var shortcutCommand = &cli.Command{
	Name:      "shortcut",
	Usage:     "look up the first word of a text selection",
	ArgsUsage: "[TEXT]",
	Description: `Intended to be bound to a desktop keyboard shortcut, e.g.

    aynary shortcut "$(xclip -o -selection primary)"

The first word of TEXT, or of stdin if no TEXT is given, is looked up in
the running instance and its window is shown. Nothing is done if there is
no word.`,
	Action: func(c *cli.Context) error {
		text := strings.Join(c.Args().Slice(), " ")
		if c.NArg() == 0 {
			var err error
			text, err = readFirstLine(c.App.Reader)
			if err != nil {
				return err
			}
		}

		word := selectionWord(text)
		if word == "" {
			return nil
		}
		return withClient(c, func(client *bridge.Client) error {
			return client.LookupAndShow(c.Context, word)
		})
	},
}

// selectionWord returns the first whitespace separated token of text with
// any leading and trailing non-alphanumeric characters removed.
func selectionWord(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimFunc(fields[0], func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func readFirstLine(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: reading selection: %w", ErrAynary, err)
	}
	return "", nil
}
