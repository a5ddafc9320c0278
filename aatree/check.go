// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

import (
	"github.com/bitmark-inc/aatree/fault"
)

// Check - verify all the tree invariants
// returns the error for the first one found to be broken
func (tree *Tree) Check() error {
	if !tree.CheckBST() {
		return fault.ErrTreeOrder
	}
	if !tree.CheckAA() {
		return fault.ErrTreeBalance
	}
	if !tree.CheckCount() {
		return fault.ErrTreeCount
	}
	return nil
}

// CheckBST - true if every key of a left sub-tree is less than its
// parent's key and every key of a right sub-tree is greater
func (tree *Tree) CheckBST() bool {
	_, _, ok := checkOrder(tree.root)
	return ok
}

// internal: returns the minimum and maximum node of the sub-tree
func checkOrder(p *Node) (*Node, *Node, bool) {
	if nil == p {
		return nil, nil, true
	}
	minimum := p
	maximum := p
	if nil != p.left {
		lmin, lmax, ok := checkOrder(p.left)
		if !ok || -1 != lmax.key.Compare(p.key) {
			return nil, nil, false
		}
		minimum = lmin
	}
	if nil != p.right {
		rmin, rmax, ok := checkOrder(p.right)
		if !ok || +1 != rmin.key.Compare(p.key) {
			return nil, nil, false
		}
		maximum = rmax
	}
	return minimum, maximum, true
}

// CheckAA - true if the tree is ordered and every node satisfies the
// level rules:
//
//   a left child is exactly one level below its parent
//   a right child is on its parent's level or one below
//   a right grandchild is strictly below its grandparent
//
// nil children are at level zero, so leaves must be at level one
func (tree *Tree) CheckAA() bool {
	return tree.CheckBST() && checkLevels(tree.root)
}

func checkLevels(p *Node) bool {
	if nil == p {
		return true
	}
	if p.level < 1 {
		return false
	}
	if level(p.left) != p.level-1 {
		return false
	}
	rl := level(p.right)
	if rl != p.level && rl != p.level-1 {
		return false
	}
	if nil != p.right && level(p.right.right) >= p.level {
		return false
	}
	return checkLevels(p.left) && checkLevels(p.right)
}

// CheckCount - true if the number of reachable nodes matches the count
func (tree *Tree) CheckCount() bool {
	return countNodes(tree.root) == tree.count
}

func countNodes(p *Node) int {
	if nil == p {
		return 0
	}
	return 1 + countNodes(p.left) + countNodes(p.right)
}
