// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/AlphyonAlephium/memeprotocol/host"
	"github.com/AlphyonAlephium/memeprotocol/storage"
	"github.com/AlphyonAlephium/memeprotocol/utils"
)

var _ Action = (*UpdateConfig)(nil)

// UpdateConfig overwrites any subset of the registry configuration.
// Only the current owner may call it. Absent fields are left unchanged;
// a zero fee is allowed.
type UpdateConfig struct {
	Owner          *string `json:"owner,omitempty"`
	TemplateCodeID *uint64 `json:"templateCodeId,omitempty"`
	CreationFee    *uint64 `json:"creationFee,omitempty"`
}

func (*UpdateConfig) GetTypeID() uint8 {
	return updateConfigID
}

func (u *UpdateConfig) Execute(
	ctx context.Context,
	db database.KeyValueReaderWriter,
	_ int64,
	actor string,
	_ []host.Coin,
) ([]host.Instruction, error) {
	cfg, err := storage.GetConfig(ctx, db)
	if err != nil {
		return nil, err
	}
	if actor != cfg.Owner {
		return nil, ErrUnauthorized
	}

	if u.Owner != nil {
		if err := utils.ParseAddress(*u.Owner); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidNewOwner, *u.Owner)
		}
		cfg.Owner = *u.Owner
	}
	if u.TemplateCodeID != nil {
		cfg.TemplateCodeID = *u.TemplateCodeID
	}
	if u.CreationFee != nil {
		cfg.CreationFee = *u.CreationFee
	}
	return nil, storage.SetConfig(ctx, db, cfg)
}

func (u *UpdateConfig) Marshal(p *wrappers.Packer) {
	p.PackBool(u.Owner != nil)
	if u.Owner != nil {
		p.PackStr(*u.Owner)
	}
	p.PackBool(u.TemplateCodeID != nil)
	if u.TemplateCodeID != nil {
		p.PackLong(*u.TemplateCodeID)
	}
	p.PackBool(u.CreationFee != nil)
	if u.CreationFee != nil {
		p.PackLong(*u.CreationFee)
	}
}

func UnmarshalUpdateConfig(p *wrappers.Packer) (Action, error) {
	var update UpdateConfig
	if p.UnpackBool() {
		owner := p.UnpackStr()
		update.Owner = &owner
	}
	if p.UnpackBool() {
		codeID := p.UnpackLong()
		update.TemplateCodeID = &codeID
	}
	if p.UnpackBool() {
		fee := p.UnpackLong()
		update.CreationFee = &fee
	}
	return &update, p.Err
}
