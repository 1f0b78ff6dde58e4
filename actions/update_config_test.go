// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlphyonAlephium/memeprotocol/storage"
)

func ptrTo[T any](v T) *T {
	return &v
}

func TestUpdateConfig(t *testing.T) {
	tests := []struct {
		name     string
		byOwner  bool
		action   *UpdateConfig
		wantErr error
		wantCfg func(owner, newOwner string) *storage.Config
	}{
		{
			name:    "unauthorized",
			byOwner: false,
			action:  &UpdateConfig{CreationFee: ptrTo(uint64(5))},
			wantErr: ErrUnauthorized,
		},
		{
			name:    "noFields",
			byOwner: true,
			action:  &UpdateConfig{},
			wantCfg: func(owner, _ string) *storage.Config {
				return &storage.Config{Owner: owner, TemplateCodeID: 42, CreationFee: 1_000_000}
			},
		},
		{
			name:    "feeOnly",
			byOwner: true,
			action:  &UpdateConfig{CreationFee: ptrTo(uint64(2_000_000))},
			wantCfg: func(owner, _ string) *storage.Config {
				return &storage.Config{Owner: owner, TemplateCodeID: 42, CreationFee: 2_000_000}
			},
		},
		{
			name:    "zeroFee",
			byOwner: true,
			action:  &UpdateConfig{CreationFee: ptrTo(uint64(0))},
			wantCfg: func(owner, _ string) *storage.Config {
				return &storage.Config{Owner: owner, TemplateCodeID: 42, CreationFee: 0}
			},
		},
		{
			name:    "codeIDOnly",
			byOwner: true,
			action:  &UpdateConfig{TemplateCodeID: ptrTo(uint64(77))},
			wantCfg: func(owner, _ string) *storage.Config {
				return &storage.Config{Owner: owner, TemplateCodeID: 77, CreationFee: 1_000_000}
			},
		},
		{
			name:    "invalidNewOwner",
			byOwner: true,
			action:  &UpdateConfig{Owner: ptrTo("not-an-address")},
			wantErr: ErrInvalidNewOwner,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			ctx := context.Background()

			owner := testAddress(t, "owner")
			newOwner := testAddress(t, "successor")
			db := newTestState(t, owner)

			actor := owner
			if !tt.byOwner {
				actor = testAddress(t, "stranger")
			}

			instructions, err := tt.action.Execute(ctx, db, 0, actor, nil)
			if tt.wantErr != nil {
				require.ErrorIs(err, tt.wantErr)
				return
			}
			require.NoError(err)
			require.Empty(instructions)

			cfg, err := storage.GetConfig(ctx, db)
			require.NoError(err)
			require.Equal(tt.wantCfg(owner, newOwner), cfg)
		})
	}
}

func TestUpdateConfigOwnerHandover(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	owner := testAddress(t, "owner")
	successor := testAddress(t, "successor")
	db := newTestState(t, owner)

	_, err := (&UpdateConfig{Owner: ptrTo(successor)}).Execute(ctx, db, 0, owner, nil)
	require.NoError(err)

	// The previous owner is locked out once the handover commits.
	_, err = (&UpdateConfig{CreationFee: ptrTo(uint64(5))}).Execute(ctx, db, 0, owner, nil)
	require.ErrorIs(err, ErrUnauthorized)

	_, err = (&UpdateConfig{CreationFee: ptrTo(uint64(5))}).Execute(ctx, db, 0, successor, nil)
	require.NoError(err)

	cfg, err := storage.GetConfig(ctx, db)
	require.NoError(err)
	require.Equal(successor, cfg.Owner)
	require.Equal(uint64(5), cfg.CreationFee)
}

func TestUpdateConfigFailedUpdateLeavesConfigUntouched(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	owner := testAddress(t, "owner")
	db := newTestState(t, owner)

	_, err := (&UpdateConfig{
		Owner:       ptrTo("mangled"),
		CreationFee: ptrTo(uint64(9)),
	}).Execute(ctx, db, 0, owner, nil)
	require.ErrorIs(err, ErrInvalidNewOwner)

	cfg, err := storage.GetConfig(ctx, db)
	require.NoError(err)
	require.Equal(owner, cfg.Owner)
	require.Equal(uint64(1_000_000), cfg.CreationFee)
}
