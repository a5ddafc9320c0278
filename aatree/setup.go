// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree

// Item - a key item must implement the Compare function
//
// Compare returns -1, 0, +1 for receiver <, ==, > argument and must
// define a total order, the argument is always of the same type as
// the receiver
type Item interface {
	Compare(interface{}) int
}

// Node - a node in the tree
type Node struct {
	left  *Node       // left sub-tree
	right *Node       // right sub-tree
	key   Item        // key part for ordering
	value interface{} // value part for data storage
	level int         // 1 for a leaf, nil children count as zero
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - number of nodes on the longest root to leaf path
func (tree *Tree) Height() int {
	return height(tree.root)
}

func height(p *Node) int {
	if nil == p {
		return 0
	}
	l := height(p.left)
	r := height(p.right)
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Level - read the balance level of a node, zero for nil
func (p *Node) Level() int {
	return level(p)
}

// Left - the left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// nil nodes are at level zero
func level(p *Node) int {
	if nil == p {
		return 0
	}
	return p.level
}
