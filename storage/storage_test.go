// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/stretchr/testify/require"
)

func TestConfigRoundTrip(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db := memdb.New()

	_, err := GetConfig(ctx, db)
	require.Error(err)

	cfg := &Config{
		Owner:          "sei1owner",
		TemplateCodeID: 42,
		CreationFee:    1_000_000,
	}
	require.NoError(SetConfig(ctx, db, cfg))

	got, err := GetConfig(ctx, db)
	require.NoError(err)
	require.Equal(cfg, got)
}

func TestTokenRoundTrip(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db := memdb.New()

	got, found, err := GetToken(ctx, db, "DEMO")
	require.NoError(err)
	require.False(found)
	require.Nil(got)

	record := &TokenRecord{
		Symbol:    "DEMO",
		Name:      "Demo",
		Creator:   "sei1creator",
		CreatedAt: 1_700_000_000,
	}
	require.NoError(SetToken(ctx, db, record))

	got, found, err = GetToken(ctx, db, "DEMO")
	require.NoError(err)
	require.True(found)
	require.Equal(record, got)
	require.False(got.Deployed)

	has, err := HasToken(ctx, db, "DEMO")
	require.NoError(err)
	require.True(has)

	// Finalize and read back.
	record.Deployed = true
	record.Address = "sei1token"
	require.NoError(SetToken(ctx, db, record))
	got, found, err = GetToken(ctx, db, "DEMO")
	require.NoError(err)
	require.True(found)
	require.True(got.Deployed)
	require.Equal("sei1token", got.Address)
}

func TestTokenCount(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db := memdb.New()

	count, err := GetTokenCount(ctx, db)
	require.NoError(err)
	require.Zero(count)

	require.NoError(SetTokenCount(ctx, db, 0))
	for i := uint64(1); i <= 3; i++ {
		count, err = IncTokenCount(ctx, db)
		require.NoError(err)
		require.Equal(i, count)
	}
	count, err = GetTokenCount(ctx, db)
	require.NoError(err)
	require.Equal(uint64(3), count)
}

func TestDeploySeq(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db := memdb.New()

	for want := uint64(1); want <= 5; want++ {
		seq, err := NextDeploySeq(ctx, db)
		require.NoError(err)
		require.Equal(want, seq)
	}
}

func TestPendingDeploys(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db := memdb.New()

	_, found, err := GetPendingDeploy(ctx, db, 7)
	require.NoError(err)
	require.False(found)

	require.NoError(SetPendingDeploy(ctx, db, 7, "DEMO"))
	symbol, found, err := GetPendingDeploy(ctx, db, 7)
	require.NoError(err)
	require.True(found)
	require.Equal("DEMO", symbol)

	require.NoError(DeletePendingDeploy(ctx, db, 7))
	_, found, err = GetPendingDeploy(ctx, db, 7)
	require.NoError(err)
	require.False(found)
}

func TestListTokens(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db := memdb.New()

	symbols := []string{"AAA", "BBB", "CCC", "DDD", "EEE"}
	for i, symbol := range symbols {
		require.NoError(SetToken(ctx, db, &TokenRecord{
			Symbol:    symbol,
			Name:      fmt.Sprintf("Token %d", i),
			Creator:   "sei1creator",
			CreatedAt: int64(i),
		}))
	}
	// Unrelated state must not leak into the listing.
	require.NoError(SetTokenCount(ctx, db, 3))
	require.NoError(SetPendingDeploy(ctx, db, 1, "AAA"))

	tests := []struct {
		name       string
		startAfter string
		limit      int
		want       []string
	}{
		{"all", "", 10, symbols},
		{"limited", "", 2, []string{"AAA", "BBB"}},
		{"afterMarker", "BBB", 10, []string{"CCC", "DDD", "EEE"}},
		{"afterMarkerLimited", "AAA", 2, []string{"BBB", "CCC"}},
		{"afterMissingMarker", "BBC", 10, []string{"CCC", "DDD", "EEE"}},
		{"afterLast", "EEE", 10, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := ListTokens(ctx, db, tt.startAfter, tt.limit)
			require.NoError(err)
			got := make([]string, 0, len(tokens))
			for _, record := range tokens {
				got = append(got, record.Symbol)
			}
			if tt.want == nil {
				require.Empty(got)
				return
			}
			require.Equal(tt.want, got)
		})
	}
}

func TestListTokensIsContinuation(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db := memdb.New()

	symbols := []string{"ALPHA", "BETA", "DELTA", "GAMMA", "OMEGA"}
	for _, symbol := range symbols {
		require.NoError(SetToken(ctx, db, &TokenRecord{Symbol: symbol, Name: symbol}))
	}

	var (
		got    []string
		marker string
	)
	for {
		page, err := ListTokens(ctx, db, marker, 2)
		require.NoError(err)
		if len(page) == 0 {
			break
		}
		for _, record := range page {
			got = append(got, record.Symbol)
		}
		marker = page[len(page)-1].Symbol
	}
	require.Equal(symbols, got)
}
