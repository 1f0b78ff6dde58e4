// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"

	"github.com/AlphyonAlephium/memeprotocol/genesis"
	"github.com/AlphyonAlephium/memeprotocol/host"
	"github.com/AlphyonAlephium/memeprotocol/simulator"
	"github.com/AlphyonAlephium/memeprotocol/storage"
)

type Controller interface {
	Genesis() *genesis.Genesis
	GetConfig(ctx context.Context) (*storage.Config, error)
	GetToken(ctx context.Context, symbol string) (*storage.TokenRecord, error)
	GetTokens(ctx context.Context, startAfter string, limit int) ([]*storage.TokenRecord, error)
	GetStats(ctx context.Context) (uint64, error)
	Submit(ctx context.Context, actor string, funds []host.Coin, actionBytes []byte) (*simulator.Result, error)
}
