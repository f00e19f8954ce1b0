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
package bridge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var cmpSortStrings = cmpopts.SortSlices(func(a, b string) bool { return a < b })

func newTestClient(bus *fakeBus) (*Client, *fakeObject) {
	obj := &fakeObject{
		bus:  bus,
		dest: testConfig.Name,
		path: dbus.ObjectPath(testConfig.Path),
	}
	return NewClient(obj, testConfig.Interface, testConfig.CallTimeout, nil), obj
}

func TestClient(t *testing.T) {
	t.Parallel()

	bus := newFakeBus()
	_, _, relay := newTestServer(t, bus)
	c, obj := newTestClient(bus)
	ctx := context.Background()

	ack, err := c.LookupWord(ctx, "run")
	if err != nil {
		t.Fatalf("LookupWord: %v", err)
	}
	if ack != LookupAck {
		t.Fatalf("LookupWord: got %q, want %q", ack, LookupAck)
	}

	if err := c.ShowWindow(ctx); err != nil {
		t.Fatalf("ShowWindow: %v", err)
	}
	if err := c.LookupAndShow(ctx, "word"); err != nil {
		t.Fatalf("LookupAndShow: %v", err)
	}

	want := []Command{LookupWord("run"), ShowWindow(), LookupAndShow("word")}
	if diff := cmp.Diff(want, relay.Drain()); diff != "" {
		t.Fatalf("relay (-want, +got):\n%s", diff)
	}

	wantMethods := []string{
		"com.aynary.Test.LookupWord",
		"com.aynary.Test.ShowWindow",
		"com.aynary.Test.LookupAndShow",
	}
	if diff := cmp.Diff(wantMethods, obj.methods); diff != "" {
		t.Fatalf("methods (-want, +got):\n%s", diff)
	}
	if !obj.deadline {
		t.Fatal("call made without a deadline")
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestClient_notRunning(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(newFakeBus())

	err := c.ShowWindow(context.Background())
	if !errors.Is(err, ErrNotRunning) {
		t.Fatalf("ShowWindow: got %v, want %v", err, ErrNotRunning)
	}
}

func TestClient_transportError(t *testing.T) {
	t.Parallel()

	bus := newFakeBus()
	newTestServer(t, bus)
	c, obj := newTestClient(bus)
	obj.err = dbus.Error{Name: "org.freedesktop.DBus.Error.NoReply"}

	_, err := c.LookupWord(context.Background(), "run")
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("LookupWord: got %v, want %v", err, ErrTransport)
	}
	if errors.Is(err, ErrNotRunning) {
		t.Fatalf("LookupWord: %v should not be ErrNotRunning", err)
	}
}

func TestClient_timeout(t *testing.T) {
	t.Parallel()

	bus := newFakeBus()
	newTestServer(t, bus)
	c, _ := newTestClient(bus)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	err := c.LookupAndShow(ctx, "run")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("LookupAndShow: got %v, want %v", err, context.DeadlineExceeded)
	}
}

func TestCommand_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cmd      Command
		expected string
	}{
		{cmd: LookupWord("run"), expected: `LookupWord("run")`},
		{cmd: ShowWindow(), expected: "ShowWindow"},
		{cmd: LookupAndShow("look up"), expected: `LookupAndShow("look up")`},
		{cmd: Command{Kind: CommandKind(9), Word: "x"}, expected: `CommandKind(9)("x")`},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, test.cmd.String()); diff != "" {
				t.Fatalf("String (-want, +got):\n%s", diff)
			}
		})
	}
}
