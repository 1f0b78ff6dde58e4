// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"strings"

	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/AlphyonAlephium/memeprotocol/consts"
)

// Address encodes the hash of [msg] as a bech32 account string.
func Address(msg []byte) (string, error) {
	converted, err := bech32.ConvertBits(hashing.ComputeHash256(msg), 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(consts.HRP, converted)
}

// ParseAddress checks that [s] is a well-formed bech32 account string
// for this chain.
func ParseAddress(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyAddress
	}
	hrp, _, err := bech32.Decode(s)
	if err != nil {
		return err
	}
	if hrp != consts.HRP {
		return ErrWrongHRP
	}
	return nil
}

// ValidAddress is a convenience wrapper for callers that only care
// whether [s] parses.
func ValidAddress(s string) bool {
	return ParseAddress(s) == nil
}
