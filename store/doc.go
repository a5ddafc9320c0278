// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package store - an AA tree guarded by a rwmutex
//
// inserts and loads take the write lock, everything else shares the
// read lock.  The tree can be saved to and restored from a LevelDB
// database, one record per entry with the key bytes in key order.
package store
