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
	"fmt"
	"log/slog"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"

	"github.com/ianlewis/go-aynary/internal/config"
)

const (
	busInterface = "org.freedesktop.DBus"
	nameLost     = busInterface + ".NameLost"
)

// Conn is the subset of *dbus.Conn used by Server.
type Conn interface {
	RequestName(name string, flags dbus.RequestNameFlags) (dbus.RequestNameReply, error)
	ReleaseName(name string) (dbus.ReleaseNameReply, error)
	ExportMethodTable(methods map[string]interface{}, path dbus.ObjectPath, iface string) error
	Export(v interface{}, path dbus.ObjectPath, iface string) error
	AddMatchSignal(options ...dbus.MatchOption) error
	Signal(ch chan<- *dbus.Signal)
	Connected() bool
	Close() error
}

var _ Conn = (*dbus.Conn)(nil)

// Server owns the bus connection and the service name.
type Server struct {
	conn    Conn
	cfg     config.BusConfig
	service *Service
	log     *slog.Logger

	signals    chan *dbus.Signal
	registered bool
}

// NewServer returns an unregistered Server relaying commands received on
// conn to relay. Intercept must be installed as conn's incoming interceptor
// for commands to reach relay.
func NewServer(conn Conn, cfg config.BusConfig, relay *Relay, logger *slog.Logger) *Server {
	logger = logger.With("component", "bridge")
	return &Server{
		conn:    conn,
		cfg:     cfg,
		service: NewService(relay, dbus.ObjectPath(cfg.Path), cfg.Interface, logger),
		log:     logger,
		signals: make(chan *dbus.Signal, 16),
	}
}

// Listen connects to the session bus and registers a Server. If another
// instance owns the name the returned error wraps ErrNameTaken.
func Listen(cfg config.BusConfig, relay *Relay, logger *slog.Logger) (*Server, error) {
	s := NewServer(nil, cfg, relay, logger)
	conn, err := dbus.ConnectSessionBus(dbus.WithIncomingInterceptor(s.Intercept))
	if err != nil {
		return nil, fmt.Errorf("%w: connecting to session bus: %w", ErrTransport, err)
	}
	s.conn = conn

	if err := s.Register(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return s, nil
}

// Register exports the service and claims the service name. The name is
// not queued for: if another connection owns it Register returns an error
// wrapping ErrNameTaken.
func (s *Server) Register() error {
	if s.registered {
		return nil
	}

	path := dbus.ObjectPath(s.cfg.Path)
	if err := s.conn.ExportMethodTable(s.service.methodTable(), path, s.cfg.Interface); err != nil {
		return fmt.Errorf("%w: exporting %s: %w", ErrTransport, path, err)
	}
	node := introspection(s.cfg.Path, s.cfg.Interface)
	if err := s.conn.Export(introspect.NewIntrospectable(node), path, "org.freedesktop.DBus.Introspectable"); err != nil {
		return fmt.Errorf("%w: exporting introspection: %w", ErrTransport, err)
	}

	if err := s.conn.AddMatchSignal(
		dbus.WithMatchInterface(busInterface),
		dbus.WithMatchMember("NameLost"),
	); err != nil {
		return fmt.Errorf("%w: adding match: %w", ErrTransport, err)
	}
	s.conn.Signal(s.signals)

	reply, err := s.conn.RequestName(s.cfg.Name, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("%w: requesting name %q: %w", ErrTransport, s.cfg.Name, err)
	}

	switch reply {
	case dbus.RequestNameReplyPrimaryOwner, dbus.RequestNameReplyAlreadyOwner:
	case dbus.RequestNameReplyExists, dbus.RequestNameReplyInQueue:
		s.log.Info("service name owned by another instance", slog.String("name", s.cfg.Name))
		return fmt.Errorf("%w: %q", ErrNameTaken, s.cfg.Name)
	default:
		return fmt.Errorf("%w: requesting name %q: unexpected reply %d", ErrTransport, s.cfg.Name, reply)
	}

	s.registered = true
	s.service.active.Store(true)
	s.log.Info("registered",
		slog.String("name", s.cfg.Name),
		slog.String("path", s.cfg.Path),
		slog.String("interface", s.cfg.Interface),
	)
	return nil
}

// Intercept is the incoming message interceptor for the server's
// connection. It is called on the connection's read loop in the order
// messages arrive and relays the commands they carry.
func (s *Server) Intercept(msg *dbus.Message) {
	s.service.Intercept(msg)
}

// Serve blocks until ctx is done or the bridge fails. Commands are relayed
// by Intercept as they arrive and replies are sent by the bus library. Serve
// watches for the loss of the service name and checks the connection every
// poll interval.
//
// When ctx is done the name is released and Serve returns nil.
func (s *Server) Serve(ctx context.Context) error {
	if !s.registered {
		return fmt.Errorf("%w: not registered", ErrBridge)
	}

	interval := s.cfg.PollInterval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.release()
			return nil
		case sig, ok := <-s.signals:
			if !ok {
				s.log.Error("signal channel closed")
				return fmt.Errorf("%w: connection closed", ErrTransport)
			}
			if s.isNameLost(sig) {
				s.registered = false
				s.service.active.Store(false)
				s.log.Error("service name lost", slog.String("name", s.cfg.Name))
				return fmt.Errorf("%w: %q", ErrNameLost, s.cfg.Name)
			}
		case <-ticker.C:
			if !s.conn.Connected() {
				s.log.Error("bus connection lost")
				return fmt.Errorf("%w: connection closed", ErrTransport)
			}
		}
	}
}

func (s *Server) isNameLost(sig *dbus.Signal) bool {
	if sig == nil || sig.Name != nameLost || len(sig.Body) == 0 {
		return false
	}
	name, ok := sig.Body[0].(string)
	return ok && name == s.cfg.Name
}

func (s *Server) release() {
	s.service.active.Store(false)
	if !s.registered {
		return
	}
	s.registered = false
	if _, err := s.conn.ReleaseName(s.cfg.Name); err != nil {
		s.log.Warn("releasing name", slog.String("name", s.cfg.Name), slog.String("error", err.Error()))
		return
	}
	s.log.Info("released", slog.String("name", s.cfg.Name))
}

// Close releases the service name if held and closes the connection. Close
// must not be called while Serve is running.
func (s *Server) Close() error {
	s.release()
	if err := s.conn.Close(); err != nil {
		return fmt.Errorf("%w: closing: %w", ErrTransport, err)
	}
	return nil
}
