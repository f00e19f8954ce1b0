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
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/godbus/dbus/v5"
)

const unknownMethod = "org.freedesktop.DBus.Error.UnknownMethod"

// fakeBus is an in-memory name registry shared by fakeConns.
type fakeBus struct {
	mu     sync.Mutex
	owners map[string]*fakeConn
}

func newFakeBus() *fakeBus {
	return &fakeBus{
		owners: map[string]*fakeConn{},
	}
}

func (b *fakeBus) owner(name string) *fakeConn {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.owners[name]
}

// steal gives name to c and sends NameLost to the previous owner.
func (b *fakeBus) steal(name string, c *fakeConn) {
	b.mu.Lock()
	prev := b.owners[name]
	b.owners[name] = c
	b.mu.Unlock()

	if prev != nil {
		prev.emit(&dbus.Signal{
			Sender: "org.freedesktop.DBus",
			Path:   "/org/freedesktop/DBus",
			Name:   nameLost,
			Body:   []interface{}{name},
		})
	}
}

func (b *fakeBus) connect() *fakeConn {
	c := &fakeConn{
		bus:     b,
		tables:  map[string]map[string]interface{}{},
		exports: map[string]interface{}{},
		inbox:   make(chan *fakeCall),
		done:    make(chan struct{}),
	}
	c.connected.Store(true)
	go c.readLoop()
	return c
}

type fakeReply struct {
	body []interface{}
	err  error
}

// fakeCall is an incoming method call waiting for its reply.
type fakeCall struct {
	msg   *dbus.Message
	reply chan fakeReply
}

// fakeConn implements Conn. Incoming calls are read one at a time by
// readLoop, which runs the interceptor and then handles each call in a new
// goroutine, as the bus library does.
type fakeConn struct {
	bus *fakeBus

	mu        sync.Mutex
	tables    map[string]map[string]interface{}
	exports   map[string]interface{}
	matches   []string
	signals   []chan<- *dbus.Signal
	intercept func(*dbus.Message)
	closed    bool

	inbox chan *fakeCall
	done  chan struct{}

	connected atomic.Bool
}

func (c *fakeConn) setInterceptor(fn func(*dbus.Message)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.intercept = fn
}

func (c *fakeConn) readLoop() {
	for {
		select {
		case <-c.done:
			return
		case call := <-c.inbox:
			c.mu.Lock()
			intercept := c.intercept
			c.mu.Unlock()
			if intercept != nil {
				intercept(call.msg)
			}

			go func() {
				body, err := c.invoke(call.msg)
				call.reply <- fakeReply{body: body, err: err}
			}()
		}
	}
}

// send delivers a method call to the connection without waiting for the
// reply. Calls sent from one goroutine are read in the order sent.
func (c *fakeConn) send(path dbus.ObjectPath, iface, member string, args ...interface{}) *fakeCall {
	call := &fakeCall{
		msg: &dbus.Message{
			Type: dbus.TypeMethodCall,
			Headers: map[dbus.HeaderField]dbus.Variant{
				dbus.FieldPath:      dbus.MakeVariant(path),
				dbus.FieldInterface: dbus.MakeVariant(iface),
				dbus.FieldMember:    dbus.MakeVariant(member),
			},
			Body: args,
		},
		reply: make(chan fakeReply, 1),
	}

	select {
	case c.inbox <- call:
	case <-c.done:
		call.reply <- fakeReply{err: dbus.ErrClosed}
	}
	return call
}

// call sends a method call and waits for the reply.
func (c *fakeConn) call(path dbus.ObjectPath, iface, member string, args ...interface{}) ([]interface{}, error) {
	r := <-c.send(path, iface, member, args...).reply
	return r.body, r.err
}

func tableKey(path dbus.ObjectPath, iface string) string {
	return string(path) + "|" + iface
}

func (c *fakeConn) RequestName(name string, _ dbus.RequestNameFlags) (dbus.RequestNameReply, error) {
	c.bus.mu.Lock()
	defer c.bus.mu.Unlock()

	switch c.bus.owners[name] {
	case nil:
		c.bus.owners[name] = c
		return dbus.RequestNameReplyPrimaryOwner, nil
	case c:
		return dbus.RequestNameReplyAlreadyOwner, nil
	default:
		return dbus.RequestNameReplyExists, nil
	}
}

func (c *fakeConn) ReleaseName(name string) (dbus.ReleaseNameReply, error) {
	c.bus.mu.Lock()
	defer c.bus.mu.Unlock()

	switch c.bus.owners[name] {
	case nil:
		return dbus.ReleaseNameReplyNonExistent, nil
	case c:
		delete(c.bus.owners, name)
		return dbus.ReleaseNameReplyReleased, nil
	default:
		return dbus.ReleaseNameReplyNotOwner, nil
	}
}

func (c *fakeConn) ExportMethodTable(methods map[string]interface{}, path dbus.ObjectPath, iface string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables[tableKey(path, iface)] = methods
	return nil
}

func (c *fakeConn) Export(v interface{}, path dbus.ObjectPath, iface string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.exports[tableKey(path, iface)] = v
	return nil
}

func (c *fakeConn) AddMatchSignal(_ ...dbus.MatchOption) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.matches = append(c.matches, "match")
	return nil
}

func (c *fakeConn) Signal(ch chan<- *dbus.Signal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.signals = append(c.signals, ch)
}

func (c *fakeConn) Connected() bool {
	return c.connected.Load()
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.done)
		c.connected.Store(false)
		for _, ch := range c.signals {
			close(ch)
		}
		c.signals = nil
	}
	return nil
}

func (c *fakeConn) emit(sig *dbus.Signal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ch := range c.signals {
		ch <- sig
	}
}

func (c *fakeConn) table(path dbus.ObjectPath, iface string) map[string]interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tables[tableKey(path, iface)]
}

func (c *fakeConn) export(path dbus.ObjectPath, iface string) interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.exports[tableKey(path, iface)]
}

// invoke calls the method named by msg the way the bus library dispatches
// an incoming method call to an exported method table.
func (c *fakeConn) invoke(msg *dbus.Message) ([]interface{}, error) {
	path := msg.Headers[dbus.FieldPath].Value().(dbus.ObjectPath)
	iface := msg.Headers[dbus.FieldInterface].Value().(string)
	member := msg.Headers[dbus.FieldMember].Value().(string)
	args := msg.Body

	fn, ok := c.table(path, iface)[member]
	if !ok {
		return nil, dbus.Error{
			Name: unknownMethod,
			Body: []interface{}{"Unknown method " + member},
		}
	}

	in := make([]reflect.Value, 0, len(args))
	for _, a := range args {
		in = append(in, reflect.ValueOf(a))
	}
	out := reflect.ValueOf(fn).Call(in)

	if e := out[len(out)-1].Interface().(*dbus.Error); e != nil {
		return nil, *e
	}
	var body []interface{}
	for _, v := range out[:len(out)-1] {
		body = append(body, v.Interface())
	}
	return body, nil
}

// fakeObject implements dbus.BusObject by calling into the connection that
// currently owns the destination name.
type fakeObject struct {
	dbus.BusObject

	bus  *fakeBus
	dest string
	path dbus.ObjectPath

	mu       sync.Mutex
	methods  []string
	deadline bool
	err      error
}

func (o *fakeObject) CallWithContext(ctx context.Context, method string, _ dbus.Flags, args ...interface{}) *dbus.Call {
	o.mu.Lock()
	o.methods = append(o.methods, method)
	_, o.deadline = ctx.Deadline()
	injected := o.err
	o.mu.Unlock()

	call := &dbus.Call{
		Destination: o.dest,
		Path:        o.path,
		Method:      method,
		Args:        args,
	}
	if injected != nil {
		call.Err = injected
		return call
	}
	if err := ctx.Err(); err != nil {
		call.Err = err
		return call
	}

	owner := o.bus.owner(o.dest)
	if owner == nil {
		call.Err = dbus.Error{Name: "org.freedesktop.DBus.Error.ServiceUnknown"}
		return call
	}

	i := strings.LastIndex(method, ".")
	call.Body, call.Err = owner.call(o.path, method[:i], method[i+1:], args...)
	return call
}
