// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AlphyonAlephium/memeprotocol/config"
	"github.com/AlphyonAlephium/memeprotocol/consts"
	"github.com/AlphyonAlephium/memeprotocol/controller"
	"github.com/AlphyonAlephium/memeprotocol/genesis"
	"github.com/AlphyonAlephium/memeprotocol/pebble"
	"github.com/AlphyonAlephium/memeprotocol/registry"
	"github.com/AlphyonAlephium/memeprotocol/rpc"
	"github.com/AlphyonAlephium/memeprotocol/server"
	"github.com/AlphyonAlephium/memeprotocol/simulator"
	"github.com/AlphyonAlephium/memeprotocol/storage"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "start the registry daemon",
	RunE:  runDaemon,
}

func runDaemon(*cobra.Command, []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	gen, err := genesis.Load(genesisPath)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	gatherer := prometheus.NewRegistry()
	db, dbRegistry, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	reg, err := registry.New(log, gatherer)
	if err != nil {
		return err
	}
	sim := simulator.New(db, reg, log)

	ctx := context.Background()
	if _, err := storage.GetConfig(ctx, db); err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			return err
		}
		if cfg.InitActor == "" {
			return errors.New("fresh store requires initActor in the daemon config")
		}
		if err := sim.Init(ctx, cfg.InitActor, gen); err != nil {
			return err
		}
	}

	listener, err := net.Listen("tcp", cfg.ListenAddress)
	if err != nil {
		return err
	}
	srv := server.New(log, listener, cfg.HTTP, cfg.AllowedOrigins, cfg.ShutdownTimeout)

	ctrl := controller.New(sim, reg, gen, log)
	handler, err := server.NewHandler(rpc.NewJSONRPCServer(ctrl), consts.Name)
	if err != nil {
		return err
	}
	srv.AddRoute(handler, rpc.JSONRPCEndpoint)
	gatherers := prometheus.Gatherers{gatherer}
	if dbRegistry != nil {
		gatherers = append(gatherers, dbRegistry)
	}
	srv.AddRoute(promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{}), "/metrics")

	errs := make(chan error, 1)
	go func() {
		errs <- srv.Dispatch()
	}()
	log.Info("daemon started",
		zap.String("listen", cfg.ListenAddress),
		zap.String("endpoint", rpc.JSONRPCEndpoint),
	)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
		return srv.Shutdown()
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func openDatabase(cfg *config.Config) (database.Database, *prometheus.Registry, error) {
	if cfg.DatabaseDir == "" {
		return memdb.New(), nil, nil
	}
	return pebble.New(cfg.DatabaseDir, pebble.NewDefaultConfig())
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}
