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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-aynary/bridge"
)

// maxMessageSize is the largest accepted native messaging line.
const maxMessageSize = 1 << 20

var nativeHostCommand = &cli.Command{
	Name:  "native-host",
	Usage: "relay lookups from a browser extension",
	Description: `Reads newline delimited JSON messages from stdin. Each message of the
form {"action":"lookup","word":"WORD"} shows the window of the running
instance and looks up WORD. A JSON reply is written to stdout for every
message.`,
	Action: func(c *cli.Context) error {
		return withClient(c, func(client *bridge.Client) error {
			return handleNativeMessages(c.Context, c.App.Reader, c.App.Writer, client)
		})
	},
}

// lookupShower is implemented by *bridge.Client.
type lookupShower interface {
	LookupAndShow(ctx context.Context, word string) error
}

type nativeRequest struct {
	Action string `json:"action"`
	Word   string `json:"word"`
}

type nativeResponse struct {
	Success bool   `json:"success"`
	Word    string `json:"word,omitempty"`
	Error   string `json:"error,omitempty"`
}

// handleNativeMessages answers every message read from r until r is
// exhausted. Failures are reported to the caller in the reply and do not
// stop the loop.
func handleNativeMessages(ctx context.Context, r io.Reader, w io.Writer, client lookupShower) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxMessageSize)

	enc := json.NewEncoder(w)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := enc.Encode(handleNativeMessage(ctx, line, client)); err != nil {
			return fmt.Errorf("%w: writing reply: %w", ErrAynary, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: reading messages: %w", ErrAynary, err)
	}
	return nil
}

func handleNativeMessage(ctx context.Context, line string, client lookupShower) nativeResponse {
	var req nativeRequest
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		return nativeResponse{Error: "Invalid message: " + err.Error()}
	}

	switch req.Action {
	case "lookup":
		if strings.TrimSpace(req.Word) == "" {
			return nativeResponse{Error: "Missing word"}
		}
		if err := client.LookupAndShow(ctx, req.Word); err != nil {
			return nativeResponse{Error: err.Error()}
		}
		return nativeResponse{Success: true, Word: req.Word}
	default:
		return nativeResponse{Error: "Unknown action"}
	}
}
