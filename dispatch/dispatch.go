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
// Package dispatch applies relayed commands to the application window.
//
// A Dispatcher is the single consumer of a bridge.Relay. It must be driven
// from the goroutine that owns the window: every Window method is called
// from Drain, which Run calls in a loop.
package dispatch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ianlewis/go-aynary"
	"github.com/ianlewis/go-aynary/bridge"
	"github.com/ianlewis/go-aynary/internal/queue"
)

// LoadingText is shown while a lookup is in progress.
const LoadingText = "Loading..."

// Window is the application window.
type Window interface {
	// Show brings the window to the front.
	Show()

	// SetLoading marks the window as waiting for a lookup result.
	SetLoading(loading bool)

	// SetDefinitionText replaces the displayed definition text.
	SetDefinitionText(text string)
}

// result is the text of a finished asynchronous lookup.
type result struct {
	gen  uint64
	word string
	text string
}

// Options configures a Dispatcher.
type Options struct {
	// Async runs lookups on their own goroutines. Only the result of the
	// most recent lookup is displayed.
	Async bool

	Logger *slog.Logger
}

// Dispatcher drains a relay and applies each command to the window.
type Dispatcher struct {
	relay    *bridge.Relay
	lookuper aynary.Lookuper
	async    bool
	log      *slog.Logger

	mu     sync.Mutex
	window Window

	// gen is the generation of the latest lookup. It is only accessed from
	// the consumer goroutine.
	gen     uint64
	results *queue.Queue[result]
	wg      sync.WaitGroup
}

// New returns a Dispatcher consuming relay and resolving words with l.
func New(relay *bridge.Relay, l aynary.Lookuper, opts Options) *Dispatcher {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		relay:    relay,
		lookuper: l,
		async:    opts.Async,
		log:      logger.With("component", "dispatch"),
		results:  queue.New[result](),
	}
}

// SetWindow sets the window commands are applied to. Commands drained while
// no window is set are dropped.
func (d *Dispatcher) SetWindow(w Window) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.window = w
}

func (d *Dispatcher) currentWindow() Window {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.window
}

// Dispatch applies a single command to the window.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd bridge.Command) {
	w := d.currentWindow()
	if w == nil {
		d.log.Warn("window not initialized, dropping command", slog.String("command", cmd.String()))
		return
	}
	d.log.Debug("dispatching", slog.String("command", cmd.String()))

	switch cmd.Kind {
	case bridge.KindShowWindow:
		w.Show()
	case bridge.KindLookupAndShow:
		w.Show()
		d.lookup(ctx, w, cmd.Word)
	case bridge.KindLookupWord:
		d.lookup(ctx, w, cmd.Word)
	default:
		d.log.Warn("unknown command", slog.String("command", cmd.String()))
	}
}

func (d *Dispatcher) lookup(ctx context.Context, w Window, word string) {
	d.gen++
	w.SetLoading(true)
	w.SetDefinitionText(LoadingText)

	if !d.async {
		d.apply(w, aynary.LookupText(ctx, d.lookuper, word))
		return
	}

	gen := d.gen
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.results.Push(result{
			gen:  gen,
			word: word,
			text: aynary.LookupText(ctx, d.lookuper, word),
		})
	}()
}

func (d *Dispatcher) apply(w Window, text string) {
	w.SetDefinitionText(text)
	w.SetLoading(false)
}

// Drain dispatches every pending command and applies finished lookups. It
// keeps going until both the relay and the result queue are empty and
// returns the number of commands dispatched.
func (d *Dispatcher) Drain(ctx context.Context) int {
	n := 0
	for {
		cmds := d.relay.Drain()
		results := d.results.Drain()
		if len(cmds) == 0 && len(results) == 0 {
			return n
		}

		for _, r := range results {
			d.applyResult(r)
		}
		for _, cmd := range cmds {
			d.Dispatch(ctx, cmd)
			n++
		}
	}
}

func (d *Dispatcher) applyResult(r result) {
	if r.gen != d.gen {
		d.log.Debug("discarding stale result",
			slog.String("word", r.word),
			slog.Uint64("generation", r.gen),
			slog.Uint64("latest", d.gen),
		)
		return
	}
	w := d.currentWindow()
	if w == nil {
		return
	}
	d.apply(w, r.text)
}

// Run drains the relay until ctx is done. It wakes when commands or results
// arrive and at least every interval.
func (d *Dispatcher) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		d.Drain(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-d.relay.Ready():
		case <-d.results.Ready():
		case <-ticker.C:
		}
	}
}

// Wait blocks until all asynchronous lookups have finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
