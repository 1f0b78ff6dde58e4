// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"bytes"
	"slices"

	"github.com/ava-labs/avalanchego/database"
	"github.com/cockroachdb/pebble"
)

type iter struct {
	db   *Database
	iter *pebble.Iterator

	initialized bool
	valid       bool
	err         error

	key   []byte
	value []byte
}

func (db *Database) NewIterator() database.Iterator {
	return db.newIterator(nil, nil)
}

func (db *Database) NewIteratorWithStart(start []byte) database.Iterator {
	return db.newIterator(start, nil)
}

func (db *Database) NewIteratorWithPrefix(prefix []byte) database.Iterator {
	return db.newIterator(nil, prefix)
}

func (db *Database) NewIteratorWithStartAndPrefix(start, prefix []byte) database.Iterator {
	return db.newIterator(start, prefix)
}

func (db *Database) newIterator(start, prefix []byte) database.Iterator {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return &iter{db: db, err: database.ErrClosed}
	}

	opts := &pebble.IterOptions{}
	if len(prefix) > 0 {
		opts.LowerBound = prefix
		opts.UpperBound = prefixUpperBound(prefix)
	}
	if len(start) > 0 && bytes.Compare(start, opts.LowerBound) > 0 {
		opts.LowerBound = start
	}
	it, err := db.db.NewIter(opts)
	if err != nil {
		return &iter{db: db, err: err}
	}
	return &iter{db: db, iter: it}
}

// prefixUpperBound returns the smallest key greater than every key with
// [prefix], or nil if no such key exists.
func prefixUpperBound(prefix []byte) []byte {
	bound := slices.Clone(prefix)
	for i := len(bound) - 1; i >= 0; i-- {
		if bound[i] == 0xff {
			bound = bound[:i]
			continue
		}
		bound[i]++
		return bound
	}
	return nil
}

func (it *iter) Next() bool {
	if it.iter == nil || it.err != nil {
		it.valid = false
		return false
	}
	if !it.initialized {
		it.valid = it.iter.First()
		it.initialized = true
	} else {
		it.valid = it.iter.Next()
	}
	if !it.valid {
		it.key = nil
		it.value = nil
		return false
	}
	// Key/Value are only valid until the next positioning call.
	it.key = slices.Clone(it.iter.Key())
	it.value = slices.Clone(it.iter.Value())
	return true
}

func (it *iter) Error() error {
	if it.err != nil {
		return it.err
	}
	if it.iter == nil {
		return nil
	}
	return it.iter.Error()
}

func (it *iter) Key() []byte {
	return it.key
}

func (it *iter) Value() []byte {
	return it.value
}

func (it *iter) Release() {
	if it.iter == nil {
		return
	}
	it.err = firstError(it.err, it.iter.Close())
	it.iter = nil
	it.valid = false
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
