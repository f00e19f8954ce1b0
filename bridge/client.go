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
	"fmt"
	"io"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/ianlewis/go-aynary/internal/config"
)

// Errors returned by the bus when the service name has no owner.
var notRunningErrors = []string{
	"org.freedesktop.DBus.Error.ServiceUnknown",
	"org.freedesktop.DBus.Error.NameHasNoOwner",
}

// Client calls the methods of a running instance.
type Client struct {
	obj     dbus.BusObject
	iface   string
	timeout time.Duration
	closer  io.Closer
}

// Dial connects to the session bus and returns a Client for the instance
// named in cfg.
func Dial(cfg config.BusConfig) (*Client, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("%w: connecting to session bus: %w", ErrTransport, err)
	}
	obj := conn.Object(cfg.Name, dbus.ObjectPath(cfg.Path))
	return NewClient(obj, cfg.Interface, cfg.CallTimeout, conn), nil
}

// NewClient returns a Client calling methods of iface on obj. Each call is
// bounded by timeout. closer, if not nil, is closed by Close.
func NewClient(obj dbus.BusObject, iface string, timeout time.Duration, closer io.Closer) *Client {
	return &Client{
		obj:     obj,
		iface:   iface,
		timeout: timeout,
		closer:  closer,
	}
}

// LookupWord asks the running instance to look up word and returns its
// acknowledgment.
func (c *Client) LookupWord(ctx context.Context, word string) (string, error) {
	var ack string
	if err := c.call(ctx, KindLookupWord, word).Store(&ack); err != nil {
		return "", c.wrap(KindLookupWord, err)
	}
	return ack, nil
}

// ShowWindow asks the running instance to show its window.
func (c *Client) ShowWindow(ctx context.Context) error {
	if err := c.call(ctx, KindShowWindow).Err; err != nil {
		return c.wrap(KindShowWindow, err)
	}
	return nil
}

// LookupAndShow asks the running instance to show its window and look up
// word.
func (c *Client) LookupAndShow(ctx context.Context, word string) error {
	if err := c.call(ctx, KindLookupAndShow, word).Err; err != nil {
		return c.wrap(KindLookupAndShow, err)
	}
	return nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

func (c *Client) call(ctx context.Context, kind CommandKind, args ...interface{}) *dbus.Call {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return c.obj.CallWithContext(ctx, c.iface+"."+kind.String(), 0, args...)
}

func (c *Client) wrap(kind CommandKind, err error) error {
	var dbusErr dbus.Error
	if errors.As(err, &dbusErr) {
		for _, name := range notRunningErrors {
			if dbusErr.Name == name {
				return fmt.Errorf("%w: %s: %w", ErrNotRunning, kind, err)
			}
		}
	}
	return fmt.Errorf("%w: %s: %w", ErrTransport, kind, err)
}
