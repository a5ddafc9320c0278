// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"io"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/aatree/aatree"
	"github.com/bitmark-inc/aatree/fault"
	"github.com/bitmark-inc/aatree/item"
)

// Store - a tree with its lock and statistics
type Store struct {
	sync.RWMutex // to allow locking

	log  *logger.L
	tree *aatree.Tree
	kind string

	stats statistics
}

// New - create an empty store for keys of one kind
func New(kind string, log *logger.L) (*Store, error) {
	if !item.ValidKind(kind) {
		return nil, fault.ErrInvalidKeyType
	}
	if nil == log {
		return nil, fault.ErrNotInitialised
	}

	log.Infof("new store for %s keys", kind)

	return &Store{
		log:  log,
		tree: aatree.New(),
		kind: kind,
	}, nil
}

// Kind - the key kind accepted by this store
func (s *Store) Kind() string {
	return s.kind
}

// Insert - add or overwrite a key/value pair
// returns the previous value and true if the key already existed
func (s *Store) Insert(key item.Key, value interface{}) (interface{}, bool) {
	s.Lock()
	previous, replaced := s.tree.Insert(key, value)
	s.Unlock()

	if replaced {
		s.stats.replaces.increment()
		s.log.Debugf("replace: %v", key)
	} else {
		s.stats.inserts.increment()
		s.log.Debugf("insert: %v", key)
	}
	return previous, replaced
}

// Search - fetch the value for a key
func (s *Store) Search(key item.Key) (interface{}, bool) {
	s.RLock()
	value, found := s.tree.Search(key)
	s.RUnlock()

	s.stats.searches.increment()
	if found {
		s.stats.hits.increment()
	}
	return value, found
}

// Count - number of keys in the store
func (s *Store) Count() int {
	s.RLock()
	defer s.RUnlock()
	return s.tree.Count()
}

// Height - height of the underlying tree
func (s *Store) Height() int {
	s.RLock()
	defer s.RUnlock()
	return s.tree.Height()
}

// Walk - visit all entries in key order while holding the read lock
//
// the visitor must not call back into the store's Insert or Load
func (s *Store) Walk(f aatree.Visitor) {
	s.RLock()
	defer s.RUnlock()
	s.tree.Walk(f)
}

// Print - draw the tree
func (s *Store) Print(w io.Writer, printData bool) int {
	s.RLock()
	defer s.RUnlock()
	return s.tree.Print(w, printData)
}

// Check - verify the tree invariants, logging any failure
func (s *Store) Check() error {
	s.RLock()
	err := s.tree.Check()
	count := s.tree.Count()
	s.RUnlock()

	if nil != err {
		s.log.Errorf("check: %d nodes  error: %s", count, err)
		return err
	}
	s.log.Debugf("check: %d nodes ok", count)
	return nil
}
