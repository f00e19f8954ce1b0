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
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-aynary/bridge"
)

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "look up a word in the running instance",
	ArgsUsage: "WORD",
	Action: func(c *cli.Context) error {
		word, err := wordArg(c)
		if err != nil {
			return err
		}
		return withClient(c, func(client *bridge.Client) error {
			ack, err := client.LookupWord(c.Context, word)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, ack)
			return err
		})
	},
}

var showCommand = &cli.Command{
	Name:  "show",
	Usage: "show the window of the running instance",
	Action: func(c *cli.Context) error {
		return withClient(c, func(client *bridge.Client) error {
			return client.ShowWindow(c.Context)
		})
	},
}

var defineCommand = &cli.Command{
	Name:      "define",
	Usage:     "show the window of the running instance and look up a word",
	ArgsUsage: "WORD",
	Action: func(c *cli.Context) error {
		word, err := wordArg(c)
		if err != nil {
			return err
		}
		return withClient(c, func(client *bridge.Client) error {
			return client.LookupAndShow(c.Context, word)
		})
	},
}

// withClient connects to the running instance and calls fn.
func withClient(c *cli.Context, fn func(*bridge.Client) error) error {
	cfg, _, err := setup(c)
	if err != nil {
		return err
	}

	client, err := bridge.Dial(cfg.Bus)
	if err != nil {
		return err
	}
	defer client.Close()

	return fn(client)
}
