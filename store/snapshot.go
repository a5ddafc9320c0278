// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/aatree/aatree"
	"github.com/bitmark-inc/aatree/fault"
	"github.com/bitmark-inc/aatree/item"
)

// Save - write every entry to the database in a single batch
// values must be strings or byte slices
func (s *Store) Save(db *leveldb.DB) (int, error) {
	batch := new(leveldb.Batch)

	var err error
	s.RLock()
	s.tree.Walk(func(key aatree.Item, value interface{}, level int, depth int) bool {
		var data []byte
		switch v := value.(type) {
		case []byte:
			data = v
		case string:
			data = []byte(v)
		default:
			s.log.Errorf("save: key: %v has value of type: %T", key, value)
			err = fault.ErrValueNotStorable
			return false
		}
		batch.Put(key.(item.Key).Bytes(), data)
		return true
	})
	s.RUnlock()

	if nil != err {
		return 0, err
	}

	if err := db.Write(batch, nil); nil != err {
		s.log.Errorf("save: write error: %s", err)
		return 0, err
	}

	n := batch.Len()
	s.stats.saved.add(uint64(n))
	s.log.Infof("saved: %d entries", n)
	return n, nil
}

// Load - insert every record in the range into the store, a nil range
// reads the whole database; values are loaded as byte slices
func (s *Store) Load(db *leveldb.DB, searchRange *ldb_util.Range) (int, error) {
	iter := db.NewIterator(searchRange, nil)
	defer iter.Release()

	s.Lock()
	defer s.Unlock()

	n := 0
	for iter.Next() {

		// contents of the returned slices must not be modified, and are
		// only valid until the next call to Next
		key, err := item.FromBytes(s.kind, iter.Key())
		if nil != err {
			s.log.Errorf("load: key: %x  error: %s", iter.Key(), err)
			return n, err
		}
		value := make([]byte, len(iter.Value()))
		copy(value, iter.Value())

		if _, replaced := s.tree.Insert(key, value); replaced {
			s.stats.replaces.increment()
		} else {
			s.stats.inserts.increment()
		}
		n += 1
	}
	if err := iter.Error(); nil != err {
		s.log.Errorf("load: iterator error: %s", err)
		return n, err
	}

	s.stats.loaded.add(uint64(n))
	s.log.Infof("loaded: %d entries  total: %d", n, s.tree.Count())
	return n, nil
}
