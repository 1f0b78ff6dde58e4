// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package controller

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/AlphyonAlephium/memeprotocol/actions"
	"github.com/AlphyonAlephium/memeprotocol/genesis"
	"github.com/AlphyonAlephium/memeprotocol/host"
	"github.com/AlphyonAlephium/memeprotocol/registry"
	"github.com/AlphyonAlephium/memeprotocol/rpc"
	"github.com/AlphyonAlephium/memeprotocol/simulator"
	"github.com/AlphyonAlephium/memeprotocol/storage"
)

var _ rpc.Controller = (*Controller)(nil)

// Controller serves the JSON-RPC surface from the committed store and
// feeds submitted actions through the host loop.
type Controller struct {
	sim *simulator.Simulator
	reg *registry.Registry
	gen *genesis.Genesis
	log *zap.Logger
}

func New(
	sim *simulator.Simulator,
	reg *registry.Registry,
	gen *genesis.Genesis,
	log *zap.Logger,
) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{sim: sim, reg: reg, gen: gen, log: log}
}

func (c *Controller) Genesis() *genesis.Genesis {
	return c.gen
}

func (c *Controller) GetConfig(ctx context.Context) (*storage.Config, error) {
	return c.reg.Config(ctx, c.sim.DB())
}

func (c *Controller) GetToken(ctx context.Context, symbol string) (*storage.TokenRecord, error) {
	return c.reg.Token(ctx, c.sim.DB(), symbol)
}

func (c *Controller) GetTokens(
	ctx context.Context,
	startAfter string,
	limit int,
) ([]*storage.TokenRecord, error) {
	return c.reg.Tokens(ctx, c.sim.DB(), startAfter, limit)
}

func (c *Controller) GetStats(ctx context.Context) (uint64, error) {
	return c.reg.Stats(ctx, c.sim.DB())
}

func (c *Controller) Submit(
	ctx context.Context,
	actor string,
	funds []host.Coin,
	actionBytes []byte,
) (*simulator.Result, error) {
	action, err := actions.Unmarshal(actionBytes)
	if err != nil {
		return nil, err
	}
	result, err := c.sim.Call(ctx, time.Now().Unix(), actor, funds, action)
	if err != nil {
		return nil, err
	}
	c.log.Debug("call committed",
		zap.String("actor", actor),
		zap.Int("deployed", len(result.Deployed)),
	)
	return result, nil
}
