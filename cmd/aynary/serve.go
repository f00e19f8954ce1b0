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
package main

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-aynary/bridge"
	"github.com/ianlewis/go-aynary/dispatch"
	"github.com/ianlewis/go-aynary/internal/config"
)

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "run the dictionary service",
	Description: `Registers the dictionary service on the session bus and prints the
definitions requested by other processes. If an instance is already
running it is asked to show its window instead.`,
	Action: serve,
}

func serve(c *cli.Context) error {
	cfg, logger, err := setup(c)
	if err != nil {
		return err
	}

	l, err := newLookuper(cfg.Dictionary, logger)
	if err != nil {
		return err
	}

	relay := bridge.NewRelay()
	srv, err := bridge.Listen(cfg.Bus, relay, logger)
	if errors.Is(err, bridge.ErrNameTaken) {
		// Hand over to the running instance.
		return showRunning(c, cfg.Bus, logger)
	}
	if err != nil {
		return err
	}
	defer func() {
		if err := srv.Close(); err != nil {
			logger.Warn("closing bridge", slog.String("error", err.Error()))
		}
	}()

	d := dispatch.New(relay, l, dispatch.Options{
		Async:  cfg.Dictionary.Async || cfg.Dictionary.Source == config.SourceOnline,
		Logger: logger,
	})
	d.SetWindow(newConsoleWindow(c.App.Writer))
	defer d.Wait()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(ctx)
	})
	g.Go(func() error {
		return d.Run(ctx, cfg.Relay.DrainInterval)
	})
	return g.Wait()
}

func showRunning(c *cli.Context, cfg config.BusConfig, logger *slog.Logger) error {
	logger.Info("already running, showing existing window", slog.String("name", cfg.Name))

	client, err := bridge.Dial(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	return client.ShowWindow(c.Context)
}
