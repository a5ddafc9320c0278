// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// Visitor - called for each node during a walk, depth of the root is
// zero; return false to stop the walk
type Visitor func(key Item, value interface{}, level int, depth int) bool

// Walk - visit all nodes in ascending key order
func (tree *Tree) Walk(f Visitor) {
	walk(tree.root, 0, f)
}

func walk(p *Node, depth int, f Visitor) bool {
	if nil == p {
		return true
	}
	if !walk(p.left, depth+1, f) {
		return false
	}
	if !f(p.key, p.value, p.level, depth) {
		return false
	}
	return walk(p.right, depth+1, f)
}

// WalkLevels - visit all nodes breadth first, the root then each
// depth from left to right
func (tree *Tree) WalkLevels(f Visitor) {
	if nil == tree.root {
		return
	}
	depth := 0
	current := []*Node{tree.root}
	for len(current) > 0 {
		next := make([]*Node, 0, 2*len(current))
		for _, p := range current {
			if !f(p.key, p.value, p.level, depth) {
				return
			}
			if nil != p.left {
				next = append(next, p.left)
			}
			if nil != p.right {
				next = append(next, p.right)
			}
		}
		current = next
		depth += 1
	}
}
