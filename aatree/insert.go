// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// Insert - add a key/value pair to the tree
//
// if the key was already present its value and key are overwritten
// and the previous value is returned with true, otherwise the result
// is nil, false and the count increases by one
func (tree *Tree) Insert(key Item, value interface{}) (interface{}, bool) {
	var previous interface{}
	replaced := false
	tree.root, previous, replaced = insert(key, value, tree.root)
	if !replaced {
		tree.count += 1
	}
	return previous, replaced
}

// internal routine for insert
// returns the new root of the sub-tree
func insert(key Item, value interface{}, p *Node) (*Node, interface{}, bool) {
	if nil == p {
		return &Node{
			key:   key,
			value: value,
			level: 1,
		}, nil, false
	}

	var previous interface{}
	replaced := false

	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, previous, replaced = insert(key, value, p.left)
	case -1: // p.key < key
		p.right, previous, replaced = insert(key, value, p.right)
	default:
		// shape is unchanged so no rebalancing is needed
		previous = p.value
		p.key = key
		p.value = value
		return p, previous, true
	}

	return split(skew(p)), previous, replaced
}

// remove a left horizontal link by rotating right
//
//        p      l
//       /        \
//      l    =>    p
//       \        /
//        c      c
//
// only when p and l are on the same level
func skew(p *Node) *Node {
	if nil == p || nil == p.left {
		return p
	}
	if p.left.level != p.level {
		return p
	}
	l := p.left
	p.left = l.right
	l.right = p
	return l
}

// remove two consecutive right horizontal links by rotating left
// and raising the level of the new sub-tree root
//
//      p            r
//       \          / \
//        r    =>  p   x
//       / \        \
//      c   x        c
//
// only when p and x are on the same level
func split(p *Node) *Node {
	if nil == p || nil == p.right || nil == p.right.right {
		return p
	}
	if p.right.right.level != p.level {
		return p
	}
	r := p.right
	p.right = r.left
	r.left = p
	r.level += 1
	return r
}
