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
	"bytes"
	"errors"

	"github.com/dgraph-io/badger/v3"
)

func init() {
	kvImpls["badger"] = badgerFactory{}
	kvImpls["badgerdb"] = badgerFactory{}
}

type badgerFactory struct{}

// New opens the badger store at dbdir.badgerdb. In-memory stores ignore
// dbdir.
func (badgerFactory) New(dbdir string, inMem bool) (KVStore, error) {
	opts := badger.DefaultOptions(dbdir + ".badgerdb").WithSyncWrites(true)
	if inMem {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	db, err := badger.Open(opts.WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, err
	}
	return &badgerStore{db: db}, nil
}

type badgerStore struct {
	db *badger.DB
}

func (s *badgerStore) Close() error { return s.db.Close() }

func (s *badgerStore) Get(key []byte) (value []byte, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	return value, err
}

// A batch is a read-write badger transaction, so it commits atomically.
func (s *badgerStore) NewBatch() BatchWriter {
	return badgerBatch{s.db.NewTransaction(true)}
}

type badgerBatch struct {
	txn *badger.Txn
}

func (b badgerBatch) Set(key, value []byte) error { return b.txn.Set(key, value) }
func (b badgerBatch) Delete(key []byte) error     { return b.txn.Delete(key) }
func (b badgerBatch) Commit() error               { return b.txn.Commit() }
func (b badgerBatch) Cancel()                     { b.txn.Discard() }

func (s *badgerStore) NewIterator(start, end []byte) Iterator {
	txn := s.db.NewTransaction(false)
	iter := txn.NewIterator(badger.DefaultIteratorOptions)
	iter.Seek(start)
	return &badgerIterator{txn: txn, iter: iter, end: end}
}

type badgerIterator struct {
	txn  *badger.Txn
	iter *badger.Iterator
	end  []byte
}

func (i *badgerIterator) Next()                  { i.iter.Next() }
func (i *badgerIterator) Key() []byte            { return i.iter.Item().KeyCopy(nil) }
func (i *badgerIterator) Value() ([]byte, error) { return i.iter.Item().ValueCopy(nil) }

func (i *badgerIterator) Valid() bool {
	if !i.iter.Valid() {
		return false
	}
	return len(i.end) == 0 || bytes.Compare(i.iter.Item().Key(), i.end) < 0
}

func (i *badgerIterator) Close() {
	i.iter.Close()
	i.txn.Discard()
}
