// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

// Action type IDs are part of the wire format and must never be
// reassigned.
const (
	createTokenID  uint8 = 0
	updateConfigID uint8 = 1
)

const (
	// labelPrefix names deployed template instances after their symbol.
	labelPrefix = "meme-token-"

	// maxActionSize bounds the packer used when marshaling any action.
	maxActionSize = 256 * 1024
)
