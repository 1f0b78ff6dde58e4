// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/AlphyonAlephium/memeprotocol/actions"
	"github.com/AlphyonAlephium/memeprotocol/genesis"
	"github.com/AlphyonAlephium/memeprotocol/host"
	"github.com/AlphyonAlephium/memeprotocol/storage"
	"github.com/AlphyonAlephium/memeprotocol/utils"
)

const (
	// DefaultTokenListLimit applies when a list query carries no limit.
	DefaultTokenListLimit = 30

	// MaxTokenListLimit caps any requested page size.
	MaxTokenListLimit = 100
)

// Registry is the token-issuance module. It holds no state of its own;
// every entry point operates on the store view the host hands it, and
// the host commits or discards that view atomically per top-level call.
type Registry struct {
	log     *zap.Logger
	metrics *metrics
}

func New(log *zap.Logger, gatherer prometheus.Registerer) (*Registry, error) {
	if log == nil {
		log = zap.NewNop()
	}
	m, err := newMetrics(gatherer)
	if err != nil {
		return nil, err
	}
	return &Registry{log: log, metrics: m}, nil
}

// Init persists the initial config with [actor] as owner and zeroes the
// finalized-token counter.
func (r *Registry) Init(
	ctx context.Context,
	db database.KeyValueReaderWriter,
	actor string,
	gen *genesis.Genesis,
) error {
	if err := utils.ParseAddress(actor); err != nil {
		return fmt.Errorf("%w: %s", actions.ErrInvalidCaller, actor)
	}
	if err := storage.SetConfig(ctx, db, &storage.Config{
		Owner:          actor,
		TemplateCodeID: gen.TemplateCodeID,
		CreationFee:    gen.CreationFee,
	}); err != nil {
		return err
	}
	if err := storage.SetTokenCount(ctx, db, 0); err != nil {
		return err
	}
	r.log.Info("registry initialized",
		zap.String("owner", actor),
		zap.Uint64("templateCodeId", gen.TemplateCodeID),
		zap.Uint64("creationFee", gen.CreationFee),
	)
	return nil
}

// Execute runs one action for [actor]. The returned instructions must
// be executed by the host before the top-level call can commit.
func (r *Registry) Execute(
	ctx context.Context,
	db database.KeyValueReaderWriter,
	t int64,
	actor string,
	funds []host.Coin,
	action actions.Action,
) ([]host.Instruction, error) {
	msgs, err := action.Execute(ctx, db, t, actor, funds)
	if err != nil {
		r.log.Debug("action rejected",
			zap.Uint8("type", action.GetTypeID()),
			zap.String("actor", actor),
			zap.Error(err),
		)
		return nil, err
	}
	r.metrics.executed(action)
	r.log.Info("action executed",
		zap.Uint8("type", action.GetTypeID()),
		zap.String("actor", actor),
		zap.Int("instructions", len(msgs)),
	)
	return msgs, nil
}

// HandleReply consumes the result of a delegated deployment and
// finalizes the registration the reply tag correlates to. It returns
// the deployed token address.
func (r *Registry) HandleReply(
	ctx context.Context,
	db database.KeyValueReaderWriterDeleter,
	reply *host.Reply,
) (string, error) {
	if reply.Err != "" {
		return "", &DeploymentFailedError{Reason: reply.Err}
	}

	symbol, ok, err := storage.GetPendingDeploy(ctx, db, reply.Tag)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: tag %d", ErrUnknownContinuation, reply.Tag)
	}

	addr := host.DeployedAddress(reply.Events)
	if addr == "" {
		return "", ErrMissingDeployAddress
	}

	record, found, err := storage.GetToken(ctx, db, symbol)
	if err != nil {
		return "", err
	}
	if !found || record.Deployed {
		return "", fmt.Errorf("%w: pending record for %q", storage.ErrCorruptState, symbol)
	}
	record.Deployed = true
	record.Address = addr
	if err := storage.SetToken(ctx, db, record); err != nil {
		return "", err
	}
	if err := storage.DeletePendingDeploy(ctx, db, reply.Tag); err != nil {
		return "", err
	}
	count, err := storage.IncTokenCount(ctx, db)
	if err != nil {
		return "", err
	}

	r.metrics.finalized.Inc()
	r.log.Info("token finalized",
		zap.String("symbol", symbol),
		zap.String("address", addr),
		zap.Uint64("totalTokens", count),
	)
	return addr, nil
}

// Config returns the current configuration snapshot.
func (*Registry) Config(ctx context.Context, db database.KeyValueReader) (*storage.Config, error) {
	return storage.GetConfig(ctx, db)
}

// Token returns the record for [symbol], pending records included.
func (*Registry) Token(
	ctx context.Context,
	db database.KeyValueReader,
	symbol string,
) (*storage.TokenRecord, error) {
	record, found, err := storage.GetToken(ctx, db, symbol)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", storage.ErrTokenNotFound, symbol)
	}
	return record, nil
}

// Tokens lists records in ascending symbol order, strictly after
// [startAfter] when non-empty. A zero limit selects the default.
func (*Registry) Tokens(
	ctx context.Context,
	db database.Iteratee,
	startAfter string,
	limit int,
) ([]*storage.TokenRecord, error) {
	if limit <= 0 {
		limit = DefaultTokenListLimit
	}
	if limit > MaxTokenListLimit {
		limit = MaxTokenListLimit
	}
	return storage.ListTokens(ctx, db, startAfter, limit)
}

// Stats returns the number of finalized registrations.
func (*Registry) Stats(ctx context.Context, db database.KeyValueReader) (uint64, error) {
	return storage.GetTokenCount(ctx, db)
}
