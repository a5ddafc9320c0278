// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package aatree - an AA balanced tree (Arne Andersson's simplified
// red-black tree) holding one value per key
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use the store package which wraps
//       a tree with a rwmutex.
//
// Balance is kept by an integer level on each node instead of a
// colour.  Insert descends recursively and each stack frame applies
// skew then split to its own node as the recursion unwinds, returning
// the possibly new sub-tree root to its caller.
//
// An insert with an existing key overwrites both the value and the
// key, so the last supplied key instance is the one retained.
//
// There is no delete.
package aatree
