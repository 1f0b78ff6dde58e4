// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"slices"

	"github.com/ava-labs/avalanchego/database"
)

type batchOp struct {
	key    []byte
	value  []byte
	delete bool
}

type batch struct {
	db   *Database
	ops  []batchOp
	size int
}

func (db *Database) NewBatch() database.Batch {
	return &batch{db: db}
}

func (b *batch) Put(key, value []byte) error {
	b.ops = append(b.ops, batchOp{
		key:   slices.Clone(key),
		value: slices.Clone(value),
	})
	b.size += len(key) + len(value)
	return nil
}

func (b *batch) Delete(key []byte) error {
	b.ops = append(b.ops, batchOp{
		key:    slices.Clone(key),
		delete: true,
	})
	b.size += len(key)
	return nil
}

func (b *batch) Size() int {
	return b.size
}

func (b *batch) Write() error {
	b.db.lock.RLock()
	defer b.db.lock.RUnlock()

	if b.db.closed {
		return database.ErrClosed
	}
	wb := b.db.db.NewBatch()
	defer func() {
		_ = wb.Close()
	}()
	for _, op := range b.ops {
		if op.delete {
			if err := wb.Delete(op.key, nil); err != nil {
				return err
			}
			continue
		}
		if err := wb.Set(op.key, op.value, nil); err != nil {
			return err
		}
	}
	return wb.Commit(b.db.writeOptions())
}

func (b *batch) Reset() {
	b.ops = b.ops[:0]
	b.size = 0
}

func (b *batch) Replay(w database.KeyValueWriterDeleter) error {
	for _, op := range b.ops {
		if op.delete {
			if err := w.Delete(op.key); err != nil {
				return err
			}
			continue
		}
		if err := w.Put(op.key, op.value); err != nil {
			return err
		}
	}
	return nil
}

func (b *batch) Inner() database.Batch {
	return b
}
