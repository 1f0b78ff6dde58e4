// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/AlphyonAlephium/memeprotocol/host"
)

// Action is a single registry operation submitted by an external
// account. Execute applies it to [db] and returns the instructions the
// host must run afterwards. Any error aborts the call with no state
// retained; the host discards every write made since the call began.
type Action interface {
	GetTypeID() uint8
	Marshal(p *wrappers.Packer)
	Execute(
		ctx context.Context,
		db database.KeyValueReaderWriter,
		t int64,
		actor string,
		funds []host.Coin,
	) ([]host.Instruction, error)
}

// Marshal prepends the action's type ID so its bytes are
// self-describing.
func Marshal(a Action) ([]byte, error) {
	p := wrappers.Packer{Bytes: make([]byte, 0, 256), MaxSize: maxActionSize}
	p.PackByte(a.GetTypeID())
	a.Marshal(&p)
	return p.Bytes, p.Err
}

func Unmarshal(b []byte) (Action, error) {
	p := wrappers.Packer{Bytes: b}
	typeID := p.UnpackByte()
	if p.Err != nil {
		return nil, p.Err
	}
	switch typeID {
	case createTokenID:
		return UnmarshalCreateToken(&p)
	case updateConfigID:
		return UnmarshalUpdateConfig(&p)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownActionType, typeID)
	}
}
