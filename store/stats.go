// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"sync/atomic"
)

// a counter that can be read without holding the store lock
type counter uint64

func (c *counter) increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

func (c *counter) add(n uint64) uint64 {
	return atomic.AddUint64((*uint64)(c), n)
}

func (c *counter) value() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

type statistics struct {
	inserts  counter
	replaces counter
	searches counter
	hits     counter
	saved    counter
	loaded   counter
}

// Stats - snapshot of the operation counters
type Stats struct {
	Inserts  uint64 `json:"inserts"`
	Replaces uint64 `json:"replaces"`
	Searches uint64 `json:"searches"`
	Hits     uint64 `json:"hits"`
	Saved    uint64 `json:"saved"`
	Loaded   uint64 `json:"loaded"`
}

// Stats - read the counters
func (s *Store) Stats() Stats {
	return Stats{
		Inserts:  s.stats.inserts.value(),
		Replaces: s.stats.replaces.value(),
		Searches: s.stats.searches.value(),
		Hits:     s.stats.hits.value(),
		Saved:    s.stats.saved.value(),
		Loaded:   s.stats.loaded.value(),
	}
}
