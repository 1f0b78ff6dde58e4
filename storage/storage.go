// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/wrappers"
)

// State
// 0x0/ (config)
//   -> owner|templateCodeID|creationFee
// 0x1/ (tokens)
//   -> [symbol] => deployed|address|symbol|name|creator|createdAt
// 0x2/ (finalized token count)
// 0x3/ (deploy sequence)
// 0x4/ (pending deploys)
//   -> [seq] => symbol

const (
	configPrefix  = 0x0
	tokenPrefix   = 0x1
	countPrefix   = 0x2
	seqPrefix     = 0x3
	pendingPrefix = 0x4

	// maxRecordSize bounds the packer used for any single value.
	maxRecordSize = 256 * 1024
)

var (
	configKey = []byte{configPrefix}
	countKey  = []byte{countPrefix}
	seqKey    = []byte{seqPrefix}
)

// Config is the registry's singleton configuration. It exists from Init
// onward and is only replaced, never deleted.
type Config struct {
	Owner          string `json:"owner"`
	TemplateCodeID uint64 `json:"templateCodeId"`
	CreationFee    uint64 `json:"creationFee"`
}

// TokenRecord tracks one registration. Deployed is false while the
// delegated deployment is outstanding; Address is only meaningful once
// Deployed is true.
type TokenRecord struct {
	Deployed  bool   `json:"deployed"`
	Address   string `json:"address"`
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	Creator   string `json:"creator"`
	CreatedAt int64  `json:"createdAt"`
}

func ConfigKey() (k []byte) {
	return configKey
}

func SetConfig(_ context.Context, db database.KeyValueWriter, cfg *Config) error {
	p := wrappers.Packer{Bytes: make([]byte, 0, 128), MaxSize: maxRecordSize}
	p.PackStr(cfg.Owner)
	p.PackLong(cfg.TemplateCodeID)
	p.PackLong(cfg.CreationFee)
	if p.Err != nil {
		return p.Err
	}
	return db.Put(ConfigKey(), p.Bytes)
}

func GetConfig(_ context.Context, db database.KeyValueReader) (*Config, error) {
	v, err := db.Get(ConfigKey())
	if err != nil {
		return nil, fmt.Errorf("%w: config missing", err)
	}
	p := wrappers.Packer{Bytes: v}
	cfg := &Config{
		Owner:          p.UnpackStr(),
		TemplateCodeID: p.UnpackLong(),
		CreationFee:    p.UnpackLong(),
	}
	if p.Err != nil {
		return nil, p.Err
	}
	return cfg, nil
}

// [tokenPrefix] + [symbol]
func TokenKey(symbol string) (k []byte) {
	k = make([]byte, 1+len(symbol))
	k[0] = tokenPrefix
	copy(k[1:], symbol)
	return
}

func packToken(t *TokenRecord) ([]byte, error) {
	p := wrappers.Packer{Bytes: make([]byte, 0, 256), MaxSize: maxRecordSize}
	p.PackBool(t.Deployed)
	p.PackStr(t.Address)
	p.PackStr(t.Symbol)
	p.PackStr(t.Name)
	p.PackStr(t.Creator)
	p.PackLong(uint64(t.CreatedAt))
	return p.Bytes, p.Err
}

func unpackToken(v []byte) (*TokenRecord, error) {
	p := wrappers.Packer{Bytes: v}
	t := &TokenRecord{
		Deployed:  p.UnpackBool(),
		Address:   p.UnpackStr(),
		Symbol:    p.UnpackStr(),
		Name:      p.UnpackStr(),
		Creator:   p.UnpackStr(),
		CreatedAt: int64(p.UnpackLong()),
	}
	if p.Err != nil {
		return nil, p.Err
	}
	return t, nil
}

func SetToken(_ context.Context, db database.KeyValueWriter, t *TokenRecord) error {
	v, err := packToken(t)
	if err != nil {
		return err
	}
	return db.Put(TokenKey(t.Symbol), v)
}

func GetToken(
	_ context.Context,
	db database.KeyValueReader,
	symbol string,
) (*TokenRecord, bool, error) {
	v, err := db.Get(TokenKey(symbol))
	if errors.Is(err, database.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	t, err := unpackToken(v)
	if err != nil {
		return nil, false, err
	}
	return t, true, nil
}

func HasToken(_ context.Context, db database.KeyValueReader, symbol string) (bool, error) {
	return db.Has(TokenKey(symbol))
}

// ListTokens returns up to [limit] records in ascending symbol order,
// strictly after [startAfter] when it is non-empty.
func ListTokens(
	_ context.Context,
	db database.Iteratee,
	startAfter string,
	limit int,
) ([]*TokenRecord, error) {
	var start []byte
	if startAfter != "" {
		// Smallest key strictly greater than the marker.
		start = append(TokenKey(startAfter), 0x00)
	}
	it := db.NewIteratorWithStartAndPrefix(start, []byte{tokenPrefix})
	defer it.Release()

	tokens := make([]*TokenRecord, 0, limit)
	for len(tokens) < limit && it.Next() {
		t, err := unpackToken(it.Value())
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	if err := it.Error(); err != nil {
		return nil, err
	}
	return tokens, nil
}

func CountKey() (k []byte) {
	return countKey
}

func GetTokenCount(_ context.Context, db database.KeyValueReader) (uint64, error) {
	v, err := db.Get(CountKey())
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	p := wrappers.Packer{Bytes: v}
	count := p.UnpackLong()
	return count, p.Err
}

func SetTokenCount(_ context.Context, db database.KeyValueWriter, count uint64) error {
	p := wrappers.Packer{Bytes: make([]byte, 0, wrappers.LongLen), MaxSize: wrappers.LongLen}
	p.PackLong(count)
	if p.Err != nil {
		return p.Err
	}
	return db.Put(CountKey(), p.Bytes)
}

// IncTokenCount bumps the finalized-registration counter by one.
func IncTokenCount(ctx context.Context, db database.KeyValueReaderWriter) (uint64, error) {
	count, err := GetTokenCount(ctx, db)
	if err != nil {
		return 0, err
	}
	count++
	return count, SetTokenCount(ctx, db, count)
}

func SeqKey() (k []byte) {
	return seqKey
}

// NextDeploySeq allocates the next correlation tag. Tags start at 1 so
// the zero value never collides with a real request.
func NextDeploySeq(_ context.Context, db database.KeyValueReaderWriter) (uint64, error) {
	var seq uint64
	v, err := db.Get(SeqKey())
	switch {
	case errors.Is(err, database.ErrNotFound):
	case err != nil:
		return 0, err
	default:
		p := wrappers.Packer{Bytes: v}
		seq = p.UnpackLong()
		if p.Err != nil {
			return 0, p.Err
		}
	}
	seq++
	p := wrappers.Packer{Bytes: make([]byte, 0, wrappers.LongLen), MaxSize: wrappers.LongLen}
	p.PackLong(seq)
	if p.Err != nil {
		return 0, p.Err
	}
	return seq, db.Put(SeqKey(), p.Bytes)
}

// [pendingPrefix] + [seq]
func PendingKey(seq uint64) (k []byte) {
	k = make([]byte, 1+wrappers.LongLen)
	k[0] = pendingPrefix
	binary.BigEndian.PutUint64(k[1:], seq)
	return
}

func SetPendingDeploy(
	_ context.Context,
	db database.KeyValueWriter,
	seq uint64,
	symbol string,
) error {
	return db.Put(PendingKey(seq), []byte(symbol))
}

func GetPendingDeploy(
	_ context.Context,
	db database.KeyValueReader,
	seq uint64,
) (string, bool, error) {
	v, err := db.Get(PendingKey(seq))
	if errors.Is(err, database.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(v), true, nil
}

func DeletePendingDeploy(_ context.Context, db database.KeyValueDeleter, seq uint64) error {
	return db.Delete(PendingKey(seq))
}
