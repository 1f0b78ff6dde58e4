// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlphyonAlephium/memeprotocol/consts"
)

func TestAddress(t *testing.T) {
	require := require.New(t)

	addr, err := Address([]byte("hello"))
	require.NoError(err)
	require.True(strings.HasPrefix(addr, consts.HRP+"1"))
	require.NoError(ParseAddress(addr))

	// Derivation is deterministic.
	again, err := Address([]byte("hello"))
	require.NoError(err)
	require.Equal(addr, again)

	other, err := Address([]byte("world"))
	require.NoError(err)
	require.NotEqual(addr, other)
}

func TestParseAddress(t *testing.T) {
	valid, err := Address([]byte("account"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		addr    string
		wantErr error
	}{
		{"valid", valid, nil},
		{"empty", "", ErrEmptyAddress},
		{"whitespace", "  \t", ErrEmptyAddress},
		{"garbage", "not-an-address", nil},
		{"mangledChecksum", valid + "x", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			err := ParseAddress(tt.addr)
			if tt.name == "valid" {
				require.NoError(err)
				require.True(ValidAddress(tt.addr))
				return
			}
			require.Error(err)
			require.False(ValidAddress(tt.addr))
			if tt.wantErr != nil {
				require.ErrorIs(err, tt.wantErr)
			}
		})
	}
}

func TestParseAddressWrongHRP(t *testing.T) {
	require := require.New(t)

	// A valid bech32 string under a foreign prefix is rejected.
	require.ErrorIs(
		ParseAddress("bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"),
		ErrWrongHRP,
	)
}
