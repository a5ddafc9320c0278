// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// Search - find the value stored for a key
// returns false if the key is not in the tree
func (tree *Tree) Search(key Item) (interface{}, bool) {
	p := tree.root
	for nil != p {
		switch p.key.Compare(key) {
		case +1: // p.key > key
			p = p.left
		case -1: // p.key < key
			p = p.right
		default:
			return p.value, true
		}
	}
	return nil, false
}
