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
	"errors"
	"fmt"
	"os"
	"strconv"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/google/go-cmp/cmp"
)

// TestListen_ordering runs against a real session bus, for example under
// dbus-run-session. It is skipped when no session bus is available.
func TestListen_ordering(t *testing.T) {
	t.Parallel()

	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no session bus")
	}

	cfg := testConfig
	cfg.Name = fmt.Sprintf("com.aynary.Test.p%d", os.Getpid())

	relay := NewRelay()
	s, err := Listen(cfg, relay, discard())
	if errors.Is(err, ErrTransport) {
		t.Skipf("session bus unavailable: %v", err)
	}
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		t.Fatalf("ConnectSessionBus: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	const n = 300
	obj := conn.Object(cfg.Name, dbus.ObjectPath(cfg.Path))
	done := make(chan *dbus.Call, n)

	var want []Command
	for i := range n {
		word := strconv.Itoa(i)
		obj.Go(cfg.Interface+"."+KindLookupWord.String(), 0, done, word)
		want = append(want, LookupWord(word))
	}
	for range n {
		call := <-done
		if call.Err != nil {
			t.Fatalf("LookupWord: %v", call.Err)
		}
		var ack string
		if err := call.Store(&ack); err != nil {
			t.Fatalf("LookupWord reply: %v", err)
		}
		if ack != LookupAck {
			t.Fatalf("LookupWord: got %q, want %q", ack, LookupAck)
		}
	}

	if diff := cmp.Diff(want, relay.Drain()); diff != "" {
		t.Fatalf("relay (-want, +got):\n%s", diff)
	}
}
