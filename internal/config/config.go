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

// Package config loads aynary's configuration from a YAML file and the
// environment.
package config

import "time"

const (
	// SourceOffline resolves terms against a local dataset.
	SourceOffline = "offline"

	// SourceOnline resolves terms with a remote dictionary service.
	SourceOnline = "online"
)

// Config is the root configuration.
type Config struct {
	Bus        BusConfig        `yaml:"bus"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Relay      RelayConfig      `yaml:"relay"`
	Log        LogConfig        `yaml:"log"`
}

// BusConfig holds the session bus identity of the running instance.
type BusConfig struct {
	Name         string        `yaml:"name"          env:"AYNARY_BUS_NAME"          env-default:"com.aynary.Dictionary"`
	Path         string        `yaml:"path"          env:"AYNARY_BUS_PATH"          env-default:"/com/aynary/Dictionary"`
	Interface    string        `yaml:"interface"     env:"AYNARY_BUS_INTERFACE"     env-default:"com.aynary.Dictionary"`
	CallTimeout  time.Duration `yaml:"call_timeout"  env:"AYNARY_BUS_CALL_TIMEOUT"  env-default:"5s"`
	PollInterval time.Duration `yaml:"poll_interval" env:"AYNARY_BUS_POLL_INTERVAL" env-default:"1s"`
}

// DictionaryConfig selects and configures the lookup source.
type DictionaryConfig struct {
	Source string `yaml:"source" env:"AYNARY_DICTIONARY_SOURCE" env-default:"offline"`

	// DataPath is a dataset file used instead of the bundled dataset.
	DataPath string `yaml:"data_path" env:"AYNARY_DICTIONARY_DATA_PATH"`

	BaseURL string        `yaml:"base_url" env:"AYNARY_DICTIONARY_BASE_URL" env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	Timeout time.Duration `yaml:"timeout"  env:"AYNARY_DICTIONARY_TIMEOUT"  env-default:"10s"`

	// Async runs lookups off the dispatch goroutine.
	Async bool `yaml:"async" env:"AYNARY_DICTIONARY_ASYNC" env-default:"false"`
}

// RelayConfig holds settings for the command relay consumer.
type RelayConfig struct {
	DrainInterval time.Duration `yaml:"drain_interval" env:"AYNARY_RELAY_DRAIN_INTERVAL" env-default:"100ms"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"AYNARY_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"AYNARY_LOG_FORMAT" env-default:"text"`
}
