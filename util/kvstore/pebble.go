// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package kvstore

import (
	"errors"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/bloom"
	"github.com/cockroachdb/pebble/vfs"
)

func init() {
	kvImpls["pebble"] = pebbleFactory{}
	kvImpls["pebbledb"] = pebbleFactory{}
}

type pebbleFactory struct{}

// New opens the pebble store at dbdir.pebbledb. The ledger holds a few
// small records per account, so table and cache sizes are modest.
func (pebbleFactory) New(dbdir string, inMem bool) (KVStore, error) {
	cache := pebble.NewCache(16 << 20)
	defer cache.Unref()
	opts := &pebble.Options{
		Cache:        cache,
		MemTableSize: 4 << 20,
		Levels:       make([]pebble.LevelOptions, 7),
	}
	for i := range opts.Levels {
		l := &opts.Levels[i]
		l.FilterPolicy = bloom.FilterPolicy(10)
		l.FilterType = pebble.TableFilter
		l.EnsureDefaults()
	}
	if inMem {
		opts.FS = vfs.NewMem()
	}
	db, err := pebble.Open(dbdir+".pebbledb", opts)
	if err != nil {
		return nil, err
	}
	return &pebbleStore{db: db, sync: &pebble.WriteOptions{Sync: !inMem}}, nil
}

type pebbleStore struct {
	db   *pebble.DB
	sync *pebble.WriteOptions
}

func (s *pebbleStore) Close() error { return s.db.Close() }

func (s *pebbleStore) Get(key []byte) ([]byte, error) {
	value, closer, err := s.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return append([]byte(nil), value...), nil
}

func (s *pebbleStore) NewBatch() BatchWriter {
	return &pebbleBatch{batch: s.db.NewBatch(), sync: s.sync}
}

type pebbleBatch struct {
	batch *pebble.Batch
	sync  *pebble.WriteOptions
}

func (b *pebbleBatch) Set(key, value []byte) error { return b.batch.Set(key, value, nil) }
func (b *pebbleBatch) Delete(key []byte) error     { return b.batch.Delete(key, nil) }
func (b *pebbleBatch) Cancel()                     { b.batch.Close() }

func (b *pebbleBatch) Commit() error {
	defer b.batch.Close()
	return b.batch.Commit(b.sync)
}

func (s *pebbleStore) NewIterator(start, end []byte) Iterator {
	iter := s.db.NewIter(&pebble.IterOptions{LowerBound: start, UpperBound: end})
	iter.First()
	return pebbleIterator{iter}
}

type pebbleIterator struct {
	iter *pebble.Iterator
}

func (i pebbleIterator) Next()       { i.iter.Next() }
func (i pebbleIterator) Valid() bool { return i.iter.Valid() }
func (i pebbleIterator) Close()      { i.iter.Close() }
func (i pebbleIterator) Key() []byte { return append([]byte(nil), i.iter.Key()...) }

func (i pebbleIterator) Value() ([]byte, error) {
	return append([]byte(nil), i.iter.Value()...), nil
}
