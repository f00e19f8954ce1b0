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

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"
)

// maxDrainInterval is the longest allowed relay drain interval.
const maxDrainInterval = 100 * time.Millisecond

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Bus.validate(); err != nil {
		return fmt.Errorf("bus: %w", err)
	}
	if err := c.Dictionary.validate(); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}
	if d := c.Relay.DrainInterval; d <= 0 || d > maxDrainInterval {
		return fmt.Errorf("relay: drain_interval must be > 0 and <= %v (got %v)", maxDrainInterval, d)
	}
	return nil
}

func (b *BusConfig) validate() error {
	if b.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if b.Interface == "" {
		return fmt.Errorf("interface must not be empty")
	}
	if !dbus.ObjectPath(b.Path).IsValid() {
		return fmt.Errorf("invalid object path %q", b.Path)
	}
	if b.CallTimeout <= 0 {
		return fmt.Errorf("call_timeout must be > 0 (got %v)", b.CallTimeout)
	}
	if b.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be > 0 (got %v)", b.PollInterval)
	}
	return nil
}

func (d *DictionaryConfig) validate() error {
	d.Source = strings.ToLower(strings.TrimSpace(d.Source))
	switch d.Source {
	case SourceOffline, SourceOnline:
	default:
		return fmt.Errorf("source must be %q or %q (got %q)", SourceOffline, SourceOnline, d.Source)
	}
	if d.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", d.Timeout)
	}
	return nil
}
