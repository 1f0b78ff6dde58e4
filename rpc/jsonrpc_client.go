// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"strings"

	"github.com/ava-labs/avalanchego/utils/formatting"
	arpc "github.com/ava-labs/avalanchego/utils/rpc"

	"github.com/AlphyonAlephium/memeprotocol/actions"
	"github.com/AlphyonAlephium/memeprotocol/consts"
	"github.com/AlphyonAlephium/memeprotocol/genesis"
	"github.com/AlphyonAlephium/memeprotocol/host"
	"github.com/AlphyonAlephium/memeprotocol/storage"
)

// JSONRPCEndpoint is the path the registry API is mounted on.
const JSONRPCEndpoint = "/" + consts.Name

type JSONRPCClient struct {
	requester arpc.EndpointRequester

	g *genesis.Genesis
}

// NewJSONRPCClient creates a new client object.
func NewJSONRPCClient(uri string) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += JSONRPCEndpoint
	return &JSONRPCClient{requester: arpc.NewEndpointRequester(uri)}
}

func (cli *JSONRPCClient) Genesis(ctx context.Context) (*genesis.Genesis, error) {
	if cli.g != nil {
		return cli.g, nil
	}

	resp := new(GenesisReply)
	err := cli.requester.SendRequest(
		ctx,
		consts.Name+".genesis",
		struct{}{},
		resp,
	)
	if err != nil {
		return nil, err
	}
	cli.g = resp.Genesis
	return resp.Genesis, nil
}

func (cli *JSONRPCClient) Config(ctx context.Context) (*storage.Config, error) {
	resp := new(ConfigReply)
	err := cli.requester.SendRequest(
		ctx,
		consts.Name+".config",
		struct{}{},
		resp,
	)
	if err != nil {
		return nil, err
	}
	return &storage.Config{
		Owner:          resp.Owner,
		TemplateCodeID: resp.TemplateCodeID,
		CreationFee:    resp.CreationFee,
	}, nil
}

func (cli *JSONRPCClient) Token(ctx context.Context, symbol string) (*TokenReply, error) {
	resp := new(TokenReply)
	err := cli.requester.SendRequest(
		ctx,
		consts.Name+".token",
		&TokenArgs{Symbol: symbol},
		resp,
	)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (cli *JSONRPCClient) Tokens(
	ctx context.Context,
	startAfter string,
	limit int,
) ([]TokenReply, error) {
	resp := new(TokensReply)
	err := cli.requester.SendRequest(
		ctx,
		consts.Name+".tokens",
		&TokensArgs{StartAfter: startAfter, Limit: limit},
		resp,
	)
	if err != nil {
		return nil, err
	}
	return resp.Tokens, nil
}

func (cli *JSONRPCClient) Stats(ctx context.Context) (uint64, error) {
	resp := new(StatsReply)
	err := cli.requester.SendRequest(
		ctx,
		consts.Name+".stats",
		struct{}{},
		resp,
	)
	if err != nil {
		return 0, err
	}
	return resp.TotalTokens, nil
}

// Submit packs [action] and executes it on the daemon's host loop.
func (cli *JSONRPCClient) Submit(
	ctx context.Context,
	actor string,
	funds []host.Coin,
	action actions.Action,
) (*SubmitReply, error) {
	actionBytes, err := actions.Marshal(action)
	if err != nil {
		return nil, err
	}
	actionHex, err := formatting.Encode(formatting.Hex, actionBytes)
	if err != nil {
		return nil, err
	}
	resp := new(SubmitReply)
	err = cli.requester.SendRequest(
		ctx,
		consts.Name+".submit",
		&SubmitArgs{Actor: actor, Funds: funds, Action: actionHex},
		resp,
	)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
