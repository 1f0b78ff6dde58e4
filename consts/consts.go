// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import "github.com/ava-labs/avalanchego/version"

const (
	// HRP is the bech32 prefix of every account and token address handled
	// by the registry.
	HRP  = "sei"
	Name = "memeprotocol"

	// FeeDenom is the only denomination accepted for the creation fee.
	FeeDenom = "usei"

	// TokenDecimals is the fixed precision every deployed token is
	// instantiated with.
	TokenDecimals = 6
)

var Version = &version.Semantic{
	Major: 0,
	Minor: 0,
	Patch: 1,
}
