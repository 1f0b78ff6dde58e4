// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package simulator

import (
	"context"
	"encoding/binary"
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"go.uber.org/zap"

	"github.com/AlphyonAlephium/memeprotocol/actions"
	"github.com/AlphyonAlephium/memeprotocol/genesis"
	"github.com/AlphyonAlephium/memeprotocol/host"
	"github.com/AlphyonAlephium/memeprotocol/registry"
	"github.com/AlphyonAlephium/memeprotocol/utils"
)

// Simulator stands in for the host execution environment: it serializes
// top-level calls, executes the instructions a call emits, delivers
// deployment replies back to the registry, and commits or discards the
// call's writes as one unit.
type Simulator struct {
	mu sync.Mutex

	db  database.Database
	reg *registry.Registry
	log *zap.Logger

	// DeployErr, when non-empty, makes every delegated deployment fail
	// with that reason.
	DeployErr string
}

// Result reports the externally visible effects of one committed call.
type Result struct {
	Transfers []*host.SendMsg
	Deployed  []string
}

func New(db database.Database, reg *registry.Registry, log *zap.Logger) *Simulator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Simulator{db: db, reg: reg, log: log}
}

// DB exposes the committed store for read-only queries.
func (s *Simulator) DB() database.Database {
	return s.db
}

// Init runs the registry's init entry point as its own atomic call.
func (s *Simulator) Init(ctx context.Context, actor string, gen *genesis.Genesis) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vdb := versiondb.New(s.db)
	if err := s.reg.Init(ctx, vdb, actor, gen); err != nil {
		vdb.Abort()
		return err
	}
	return vdb.Commit()
}

// Call executes one action at block time [t] and walks its emitted
// instruction graph. Any failure anywhere in the graph aborts the whole
// call; nothing is retained.
func (s *Simulator) Call(
	ctx context.Context,
	t int64,
	actor string,
	funds []host.Coin,
	action actions.Action,
) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vdb := versiondb.New(s.db)
	msgs, err := s.reg.Execute(ctx, vdb, t, actor, funds, action)
	if err != nil {
		vdb.Abort()
		return nil, err
	}

	result := &Result{}
	for _, msg := range msgs {
		switch m := msg.(type) {
		case *host.SendMsg:
			result.Transfers = append(result.Transfers, m)
		case *host.InstantiateMsg:
			addr, err := s.instantiate(ctx, vdb, m)
			if err != nil {
				vdb.Abort()
				return nil, err
			}
			result.Deployed = append(result.Deployed, addr)
		}
	}
	if err := vdb.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Simulator) instantiate(
	ctx context.Context,
	db database.KeyValueReaderWriterDeleter,
	msg *host.InstantiateMsg,
) (string, error) {
	if s.DeployErr != "" {
		_, err := s.reg.HandleReply(ctx, db, &host.Reply{
			Tag: msg.ReplyTag,
			Err: s.DeployErr,
		})
		return "", err
	}

	addr, err := s.deployAddress(msg)
	if err != nil {
		return "", err
	}
	s.log.Debug("instantiated template",
		zap.Uint64("codeId", msg.CodeID),
		zap.String("label", msg.Label),
		zap.String("address", addr),
	)
	return s.reg.HandleReply(ctx, db, &host.Reply{
		Tag: msg.ReplyTag,
		Events: []host.Event{{
			Type: host.InstantiateEventType,
			Attributes: map[string]string{
				host.InstantiateAddressKey: addr,
			},
		}},
	})
}

// deployAddress derives a deterministic address for a deployed
// instance from its code id, reply tag, and label.
func (s *Simulator) deployAddress(msg *host.InstantiateMsg) (string, error) {
	preimage := make([]byte, 16, 16+len(msg.Label))
	binary.BigEndian.PutUint64(preimage, msg.CodeID)
	binary.BigEndian.PutUint64(preimage[8:], msg.ReplyTag)
	preimage = append(preimage, msg.Label...)
	return utils.Address(preimage)
}
