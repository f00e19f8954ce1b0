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
	"io"
	"strings"
	"sync"
)

// consoleWindow is a dispatch.Window that prints definitions to a writer.
// It is used when aynary runs without a graphical shell.
type consoleWindow struct {
	mu      sync.Mutex
	w       io.Writer
	loading bool
}

func newConsoleWindow(w io.Writer) *consoleWindow {
	return &consoleWindow{w: w}
}

func (c *consoleWindow) Show() {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, "==> aynary")
}

func (c *consoleWindow) SetLoading(loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = loading
}

func (c *consoleWindow) SetDefinitionText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	fmt.Fprint(c.w, text)
}
