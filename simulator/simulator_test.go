// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package simulator

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/AlphyonAlephium/memeprotocol/actions"
	"github.com/AlphyonAlephium/memeprotocol/consts"
	"github.com/AlphyonAlephium/memeprotocol/genesis"
	"github.com/AlphyonAlephium/memeprotocol/host"
	"github.com/AlphyonAlephium/memeprotocol/registry"
	"github.com/AlphyonAlephium/memeprotocol/storage"
	"github.com/AlphyonAlephium/memeprotocol/utils"
)

func testAddress(t *testing.T, seed string) string {
	t.Helper()
	addr, err := utils.Address([]byte(seed))
	require.NoError(t, err)
	return addr
}

func newTestSimulator(t *testing.T, owner string) *Simulator {
	t.Helper()
	reg, err := registry.New(nil, prometheus.NewRegistry())
	require.NoError(t, err)
	sim := New(memdb.New(), reg, nil)
	require.NoError(t, sim.Init(context.Background(), owner, &genesis.Genesis{
		TemplateCodeID: 42,
		CreationFee:    1_000_000,
	}))
	return sim
}

func feeFunds(amount uint64) []host.Coin {
	return []host.Coin{{Denom: consts.FeeDenom, Amount: amount}}
}

func TestCreateTokenEndToEnd(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	owner := testAddress(t, "owner")
	creator := testAddress(t, "creator")
	sim := newTestSimulator(t, owner)
	reg, err := registry.New(nil, prometheus.NewRegistry())
	require.NoError(err)

	result, err := sim.Call(ctx, 1_700_000_000, creator, feeFunds(1_000_000), &actions.CreateToken{
		Name:        "Demo Token",
		Symbol:      "DEMO",
		TotalSupply: 1_000_000_000,
	})
	require.NoError(err)

	// The creation fee lands with the config owner.
	require.Len(result.Transfers, 1)
	require.Equal(owner, result.Transfers[0].To)
	require.Equal(consts.FeeDenom, result.Transfers[0].Denom)
	require.Equal(uint64(1_000_000), result.Transfers[0].Amount)
	require.Len(result.Deployed, 1)

	record, err := reg.Token(ctx, sim.DB(), "DEMO")
	require.NoError(err)
	require.True(record.Deployed)
	require.Equal(result.Deployed[0], record.Address)
	require.Equal(creator, record.Creator)
	require.Equal(int64(1_700_000_000), record.CreatedAt)

	count, err := reg.Stats(ctx, sim.DB())
	require.NoError(err)
	require.Equal(uint64(1), count)

	// No pending entry survives a completed call.
	_, found, err := storage.GetPendingDeploy(ctx, sim.DB(), 1)
	require.NoError(err)
	require.False(found)
}

func TestCreateTokenUnderpaidLeavesNoTrace(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	owner := testAddress(t, "owner")
	sim := newTestSimulator(t, owner)
	reg, err := registry.New(nil, prometheus.NewRegistry())
	require.NoError(err)

	_, err = sim.Call(ctx, 0, testAddress(t, "creator"), feeFunds(500_000), &actions.CreateToken{
		Name:        "Demo Token",
		Symbol:      "DEMO",
		TotalSupply: 1_000_000_000,
	})
	require.ErrorIs(err, &actions.InvalidPaymentError{Expected: "1000000", Received: "500000"})

	_, found, getErr := storage.GetToken(ctx, sim.DB(), "DEMO")
	require.NoError(getErr)
	require.False(found)

	count, err := reg.Stats(ctx, sim.DB())
	require.NoError(err)
	require.Zero(count)
}

func TestDeploymentFailureRevertsRegistration(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	owner := testAddress(t, "owner")
	creator := testAddress(t, "creator")
	sim := newTestSimulator(t, owner)
	sim.DeployErr = "out of gas"

	_, err := sim.Call(ctx, 0, creator, feeFunds(1_000_000), &actions.CreateToken{
		Name:        "Demo Token",
		Symbol:      "DEMO",
		TotalSupply: 1_000_000_000,
	})
	var failed *registry.DeploymentFailedError
	require.ErrorAs(err, &failed)
	require.Equal("out of gas", failed.Reason)

	// The aborted call leaves neither the record nor the pending entry,
	// so the symbol is immediately reusable.
	_, found, err := storage.GetToken(ctx, sim.DB(), "DEMO")
	require.NoError(err)
	require.False(found)

	sim.DeployErr = ""
	result, err := sim.Call(ctx, 0, creator, feeFunds(1_000_000), &actions.CreateToken{
		Name:        "Demo Token",
		Symbol:      "DEMO",
		TotalSupply: 1_000_000_000,
	})
	require.NoError(err)
	require.Len(result.Deployed, 1)
}

func TestDuplicateSymbolRejected(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	sim := newTestSimulator(t, testAddress(t, "owner"))
	creator := testAddress(t, "creator")
	create := &actions.CreateToken{Name: "Demo Token", Symbol: "DEMO", TotalSupply: 1}

	_, err := sim.Call(ctx, 0, creator, feeFunds(1_000_000), create)
	require.NoError(err)

	_, err = sim.Call(ctx, 0, testAddress(t, "someone-else"), feeFunds(1_000_000), create)
	require.ErrorIs(err, actions.ErrSymbolExists)
}

func TestFeeUpdateTakesEffect(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	owner := testAddress(t, "owner")
	creator := testAddress(t, "creator")
	sim := newTestSimulator(t, owner)

	newFee := uint64(2_500_000)
	_, err := sim.Call(ctx, 0, owner, nil, &actions.UpdateConfig{CreationFee: &newFee})
	require.NoError(err)

	_, err = sim.Call(ctx, 0, creator, feeFunds(1_000_000), &actions.CreateToken{
		Name: "Demo Token", Symbol: "DEMO", TotalSupply: 1,
	})
	require.ErrorIs(err, &actions.InvalidPaymentError{Expected: "2500000", Received: "1000000"})

	result, err := sim.Call(ctx, 0, creator, feeFunds(2_500_000), &actions.CreateToken{
		Name: "Demo Token", Symbol: "DEMO", TotalSupply: 1,
	})
	require.NoError(err)
	require.Equal(uint64(2_500_000), result.Transfers[0].Amount)
}

func TestDeployAddressesAreDistinct(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	sim := newTestSimulator(t, testAddress(t, "owner"))
	creator := testAddress(t, "creator")

	seen := make(map[string]struct{})
	for _, symbol := range []string{"AAA", "BBB", "CCC"} {
		result, err := sim.Call(ctx, 0, creator, feeFunds(1_000_000), &actions.CreateToken{
			Name: symbol + " Token", Symbol: symbol, TotalSupply: 1,
		})
		require.NoError(err)
		require.Len(result.Deployed, 1)
		addr := result.Deployed[0]
		require.NoError(utils.ParseAddress(addr))
		_, dup := seen[addr]
		require.False(dup)
		seen[addr] = struct{}{}
	}
}
