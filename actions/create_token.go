// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/AlphyonAlephium/memeprotocol/consts"
	"github.com/AlphyonAlephium/memeprotocol/host"
	"github.com/AlphyonAlephium/memeprotocol/storage"
	"github.com/AlphyonAlephium/memeprotocol/utils"
)

var _ Action = (*CreateToken)(nil)

// CreateToken registers a new symbol, charges the creation fee, and
// delegates deployment of the token itself to the configured template.
// ImageURL and Description ride along for off-chain consumers; the
// registry neither validates nor persists them.
type CreateToken struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	TotalSupply uint64 `json:"totalSupply"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

func (*CreateToken) GetTypeID() uint8 {
	return createTokenID
}

func (c *CreateToken) Execute(
	ctx context.Context,
	db database.KeyValueReaderWriter,
	t int64,
	actor string,
	funds []host.Coin,
) ([]host.Instruction, error) {
	if err := utils.ParseAddress(actor); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCaller, actor)
	}
	cfg, err := storage.GetConfig(ctx, db)
	if err != nil {
		return nil, err
	}

	// Exactly one fund entry must be attached. Zero entries and
	// multiple entries are the same shape error.
	expected := strconv.FormatUint(cfg.CreationFee, 10)
	if len(funds) != 1 {
		return nil, &InvalidPaymentError{Expected: expected, Received: "0"}
	}
	payment := funds[0]
	if payment.Denom != consts.FeeDenom {
		return nil, ErrWrongDenom
	}
	if payment.Amount != cfg.CreationFee {
		return nil, &InvalidPaymentError{
			Expected: expected,
			Received: strconv.FormatUint(payment.Amount, 10),
		}
	}

	exists, err := storage.HasToken(ctx, db, c.Symbol)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSymbolExists
	}

	if strings.TrimSpace(c.Name) == "" ||
		strings.TrimSpace(c.Symbol) == "" ||
		c.TotalSupply == 0 {
		return nil, ErrInvalidTokenParams
	}

	if err := utils.ParseAddress(cfg.Owner); err != nil {
		return nil, fmt.Errorf("%w: config owner %q", storage.ErrCorruptState, cfg.Owner)
	}

	// Record the registration before the deployment result is known.
	if err := storage.SetToken(ctx, db, &storage.TokenRecord{
		Symbol:    c.Symbol,
		Name:      c.Name,
		Creator:   actor,
		CreatedAt: t,
	}); err != nil {
		return nil, err
	}
	seq, err := storage.NextDeploySeq(ctx, db)
	if err != nil {
		return nil, err
	}
	if err := storage.SetPendingDeploy(ctx, db, seq, c.Symbol); err != nil {
		return nil, err
	}

	payload, err := (&host.TokenInstantiate{
		Name:     c.Name,
		Symbol:   c.Symbol,
		Decimals: consts.TokenDecimals,
		InitialBalances: []host.InitialBalance{{
			Address: actor,
			Amount:  c.TotalSupply,
		}},
		Mint: &host.Minter{Minter: actor},
	}).Bytes()
	if err != nil {
		return nil, err
	}

	return []host.Instruction{
		&host.SendMsg{
			To:     cfg.Owner,
			Denom:  consts.FeeDenom,
			Amount: payment.Amount,
		},
		&host.InstantiateMsg{
			CodeID:   cfg.TemplateCodeID,
			Admin:    actor,
			Label:    labelPrefix + c.Symbol,
			Payload:  payload,
			ReplyTag: seq,
		},
	}, nil
}

func (c *CreateToken) Marshal(p *wrappers.Packer) {
	p.PackStr(c.Name)
	p.PackStr(c.Symbol)
	p.PackLong(c.TotalSupply)
	p.PackStr(c.ImageURL)
	p.PackStr(c.Description)
}

func UnmarshalCreateToken(p *wrappers.Packer) (Action, error) {
	var create CreateToken
	create.Name = p.UnpackStr()
	create.Symbol = p.UnpackStr()
	create.TotalSupply = p.UnpackLong()
	create.ImageURL = p.UnpackStr()
	create.Description = p.UnpackStr()
	return &create, p.Err
}
