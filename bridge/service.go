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
	"log/slog"
	"sync/atomic"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
)

// LookupAck is the acknowledgment returned by LookupWord. The result of the
// lookup itself is only ever shown in the window.
const LookupAck = "Lookup initiated"

// Service implements the bus methods.
//
// The bus library runs each exported method in its own goroutine, so the
// methods only reply. Commands are relayed by Intercept, which is installed
// as the connection's incoming interceptor and sees messages in the order
// they were read from the bus.
type Service struct {
	relay *Relay
	path  dbus.ObjectPath
	iface string
	log   *slog.Logger

	active atomic.Bool
}

// NewService returns a Service for the object at path implementing iface.
// Commands are pushed to relay.
func NewService(relay *Relay, path dbus.ObjectPath, iface string, logger *slog.Logger) *Service {
	return &Service{
		relay: relay,
		path:  path,
		iface: iface,
		log:   logger,
	}
}

// LookupWord acknowledges a LookupWord call.
func (s *Service) LookupWord(string) (string, *dbus.Error) {
	return LookupAck, nil
}

// ShowWindow acknowledges a ShowWindow call.
func (s *Service) ShowWindow() *dbus.Error {
	return nil
}

// LookupAndShow acknowledges a LookupAndShow call.
func (s *Service) LookupAndShow(string) *dbus.Error {
	return nil
}

// Intercept relays the command carried by msg. Messages that are not calls
// to one of the service's methods with matching arguments are ignored, as
// are all messages while the service is inactive.
func (s *Service) Intercept(msg *dbus.Message) {
	if !s.active.Load() {
		return
	}
	c, ok := s.command(msg)
	if !ok {
		return
	}
	s.log.Debug("relaying command", slog.String("command", c.String()))
	s.relay.Push(c)
}

func (s *Service) command(msg *dbus.Message) (Command, bool) {
	if msg == nil || msg.Type != dbus.TypeMethodCall {
		return Command{}, false
	}

	path, _ := header(msg, dbus.FieldPath).(dbus.ObjectPath)
	iface, _ := header(msg, dbus.FieldInterface).(string)
	member, _ := header(msg, dbus.FieldMember).(string)
	if path != s.path || (iface != "" && iface != s.iface) {
		return Command{}, false
	}

	switch member {
	case KindShowWindow.String():
		if len(msg.Body) == 0 {
			return ShowWindow(), true
		}
	case KindLookupWord.String(), KindLookupAndShow.String():
		if len(msg.Body) != 1 {
			return Command{}, false
		}
		word, ok := msg.Body[0].(string)
		if !ok {
			return Command{}, false
		}
		if member == KindLookupWord.String() {
			return LookupWord(word), true
		}
		return LookupAndShow(word), true
	}
	return Command{}, false
}

func header(msg *dbus.Message, f dbus.HeaderField) interface{} {
	v, ok := msg.Headers[f]
	if !ok {
		return nil
	}
	return v.Value()
}

// methodTable returns the exported methods keyed by member name. Members not
// in the table are rejected by the bus library with UnknownMethod.
func (s *Service) methodTable() map[string]interface{} {
	return map[string]interface{}{
		KindLookupWord.String():    s.LookupWord,
		KindShowWindow.String():    s.ShowWindow,
		KindLookupAndShow.String(): s.LookupAndShow,
	}
}

// introspection describes the service interface at path.
func introspection(path, iface string) *introspect.Node {
	word := introspect.Arg{Name: "word", Type: "s", Direction: "in"}
	return &introspect.Node{
		Name: path,
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			{
				Name: iface,
				Methods: []introspect.Method{
					{
						Name: KindLookupWord.String(),
						Args: []introspect.Arg{
							word,
							{Name: "ack", Type: "s", Direction: "out"},
						},
					},
					{
						Name: KindShowWindow.String(),
					},
					{
						Name: KindLookupAndShow.String(),
						Args: []introspect.Arg{word},
					},
				},
			},
		},
	}
}
