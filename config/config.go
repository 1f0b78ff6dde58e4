// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/AlphyonAlephium/memeprotocol/server"
)

const (
	defaultListenAddress   = "127.0.0.1:9650"
	defaultShutdownTimeout = 10 * time.Second
	defaultHTTPTimeout     = 30 * time.Second
)

// Config controls the registry daemon. Zero DatabaseDir selects an
// in-memory store.
type Config struct {
	ListenAddress string `json:"listenAddress"`
	DatabaseDir   string `json:"databaseDir"`

	// InitActor becomes the registry owner when the store is fresh.
	InitActor string `json:"initActor"`

	AllowedOrigins []string `json:"allowedOrigins"`

	HTTP server.HTTPConfig `json:"http"`

	ShutdownTimeout time.Duration `json:"shutdownTimeout"`

	LogLevel string `json:"logLevel"`
}

func Default() *Config {
	return &Config{
		ListenAddress:  defaultListenAddress,
		AllowedOrigins: []string{"*"},
		HTTP: server.HTTPConfig{
			ReadTimeout:       defaultHTTPTimeout,
			ReadHeaderTimeout: defaultHTTPTimeout,
			WriteTimeout:      defaultHTTPTimeout,
			IdleTimeout:       defaultHTTPTimeout,
		},
		ShutdownTimeout: defaultShutdownTimeout,
		LogLevel:        "info",
	}
}

func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}
