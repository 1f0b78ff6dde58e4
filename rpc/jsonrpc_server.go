// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"errors"
	"net/http"

	"github.com/ava-labs/avalanchego/utils/formatting"

	"github.com/AlphyonAlephium/memeprotocol/genesis"
	"github.com/AlphyonAlephium/memeprotocol/host"
	"github.com/AlphyonAlephium/memeprotocol/storage"
)

type JSONRPCServer struct {
	c Controller
}

func NewJSONRPCServer(c Controller) *JSONRPCServer {
	return &JSONRPCServer{c}
}

type GenesisReply struct {
	Genesis *genesis.Genesis `json:"genesis"`
}

func (j *JSONRPCServer) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) error {
	reply.Genesis = j.c.Genesis()
	return nil
}

type ConfigReply struct {
	Owner          string `json:"owner"`
	TemplateCodeID uint64 `json:"templateCodeId"`
	CreationFee    uint64 `json:"creationFee"`
}

func (j *JSONRPCServer) Config(req *http.Request, _ *struct{}, reply *ConfigReply) error {
	cfg, err := j.c.GetConfig(req.Context())
	if err != nil {
		return err
	}
	reply.Owner = cfg.Owner
	reply.TemplateCodeID = cfg.TemplateCodeID
	reply.CreationFee = cfg.CreationFee
	return nil
}

type TokenArgs struct {
	Symbol string `json:"symbol"`
}

type TokenReply struct {
	Address   string `json:"address"`
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	Creator   string `json:"creator"`
	CreatedAt int64  `json:"createdAt"`
	Deployed  bool   `json:"deployed"`
}

func setTokenReply(reply *TokenReply, record *storage.TokenRecord) {
	// Pending records render an empty address.
	if record.Deployed {
		reply.Address = record.Address
	}
	reply.Symbol = record.Symbol
	reply.Name = record.Name
	reply.Creator = record.Creator
	reply.CreatedAt = record.CreatedAt
	reply.Deployed = record.Deployed
}

func (j *JSONRPCServer) Token(req *http.Request, args *TokenArgs, reply *TokenReply) error {
	record, err := j.c.GetToken(req.Context(), args.Symbol)
	if errors.Is(err, storage.ErrTokenNotFound) {
		return ErrTokenNotFound
	}
	if err != nil {
		return err
	}
	setTokenReply(reply, record)
	return nil
}

type TokensArgs struct {
	StartAfter string `json:"startAfter,omitempty"`
	Limit      int    `json:"limit,omitempty"`
}

type TokensReply struct {
	Tokens []TokenReply `json:"tokens"`
}

func (j *JSONRPCServer) Tokens(req *http.Request, args *TokensArgs, reply *TokensReply) error {
	records, err := j.c.GetTokens(req.Context(), args.StartAfter, args.Limit)
	if err != nil {
		return err
	}
	reply.Tokens = make([]TokenReply, len(records))
	for i, record := range records {
		setTokenReply(&reply.Tokens[i], record)
	}
	return nil
}

type StatsReply struct {
	TotalTokens uint64 `json:"totalTokens"`
}

func (j *JSONRPCServer) Stats(req *http.Request, _ *struct{}, reply *StatsReply) error {
	total, err := j.c.GetStats(req.Context())
	if err != nil {
		return err
	}
	reply.TotalTokens = total
	return nil
}

type SubmitArgs struct {
	Actor  string      `json:"actor"`
	Funds  []host.Coin `json:"funds,omitempty"`
	Action string      `json:"action"` // hex-encoded action bytes
}

type SubmitReply struct {
	Transfers []*host.SendMsg `json:"transfers,omitempty"`
	Deployed  []string        `json:"deployed,omitempty"`
}

func (j *JSONRPCServer) Submit(req *http.Request, args *SubmitArgs, reply *SubmitReply) error {
	actionBytes, err := formatting.Decode(formatting.Hex, args.Action)
	if err != nil {
		return err
	}
	result, err := j.c.Submit(req.Context(), args.Actor, args.Funds, actionBytes)
	if err != nil {
		return err
	}
	reply.Transfers = result.Transfers
	reply.Deployed = result.Deployed
	return nil
}
