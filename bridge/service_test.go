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
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/google/go-cmp/cmp"
)

func callMessage(path dbus.ObjectPath, iface, member string, args ...interface{}) *dbus.Message {
	headers := map[dbus.HeaderField]dbus.Variant{
		dbus.FieldPath:   dbus.MakeVariant(path),
		dbus.FieldMember: dbus.MakeVariant(member),
	}
	if iface != "" {
		headers[dbus.FieldInterface] = dbus.MakeVariant(iface)
	}
	return &dbus.Message{
		Type:    dbus.TypeMethodCall,
		Headers: headers,
		Body:    args,
	}
}

func TestService_Intercept(t *testing.T) {
	t.Parallel()

	path := dbus.ObjectPath(testConfig.Path)
	iface := testConfig.Interface

	signal := callMessage(path, iface, "LookupWord", "run")
	signal.Type = dbus.TypeSignal

	tests := []struct {
		name     string
		msg      *dbus.Message
		inactive bool
		expected []Command
	}{
		{
			name:     "lookup word",
			msg:      callMessage(path, iface, "LookupWord", "run"),
			expected: []Command{LookupWord("run")},
		},
		{
			name:     "show window",
			msg:      callMessage(path, iface, "ShowWindow"),
			expected: []Command{ShowWindow()},
		},
		{
			name:     "lookup and show",
			msg:      callMessage(path, iface, "LookupAndShow", "word"),
			expected: []Command{LookupAndShow("word")},
		},
		{
			name:     "no interface header",
			msg:      callMessage(path, "", "LookupWord", "run"),
			expected: []Command{LookupWord("run")},
		},
		{
			name: "other interface",
			msg:  callMessage(path, "org.example.Other", "LookupWord", "run"),
		},
		{
			name: "other path",
			msg:  callMessage("/org/example/Other", iface, "LookupWord", "run"),
		},
		{
			name: "unknown member",
			msg:  callMessage(path, iface, "Frobnicate", "x"),
		},
		{
			name: "introspect",
			msg:  callMessage(path, "org.freedesktop.DBus.Introspectable", "Introspect"),
		},
		{
			name: "missing argument",
			msg:  callMessage(path, iface, "LookupWord"),
		},
		{
			name: "wrong argument type",
			msg:  callMessage(path, iface, "LookupAndShow", int32(1)),
		},
		{
			name: "extra argument",
			msg:  callMessage(path, iface, "ShowWindow", "x"),
		},
		{
			name: "not a method call",
			msg:  signal,
		},
		{
			name:     "inactive",
			msg:      callMessage(path, iface, "LookupWord", "run"),
			inactive: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			relay := NewRelay()
			s := NewService(relay, path, iface, discard())
			s.active.Store(!test.inactive)

			s.Intercept(test.msg)

			if diff := cmp.Diff(test.expected, relay.Drain()); diff != "" {
				t.Fatalf("relay (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestServer_Intercept_afterClose(t *testing.T) {
	t.Parallel()

	bus := newFakeBus()
	conn := bus.connect()
	relay := NewRelay()
	s := NewServer(conn, testConfig, relay, discard())

	msg := callMessage(dbus.ObjectPath(testConfig.Path), testConfig.Interface, "ShowWindow")

	// Not yet registered.
	s.Intercept(msg)
	if n := relay.Len(); n != 0 {
		t.Fatalf("before Register: got %d commands, want 0", n)
	}

	if err := s.Register(); err != nil {
		t.Fatalf("Register: %v", err)
	}
	s.Intercept(msg)
	if n := relay.Len(); n != 1 {
		t.Fatalf("after Register: got %d commands, want 1", n)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	s.Intercept(msg)
	if n := relay.Len(); n != 1 {
		t.Fatalf("after Close: got %d commands, want 1", n)
	}
}
