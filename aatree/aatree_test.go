// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package aatree_test

import (
	"bytes"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/aatree/aatree"
	"github.com/bitmark-inc/aatree/item"
)

// key that only compares on name, so that the stored instance can be
// distinguished after an overwrite
type taggedItem struct {
	name string
	tag  int
}

func (k taggedItem) Compare(x interface{}) int {
	return strings.Compare(k.name, x.(taggedItem).name)
}

func TestEmpty(t *testing.T) {
	tree := aatree.New()

	v, found := tree.Search(item.String("b"))
	assert.False(t, found, "found in empty tree")
	assert.Nil(t, v, "value from empty tree")
	assert.True(t, tree.IsEmpty(), "not empty")
	assert.Equal(t, 0, tree.Count(), "count")
	assert.Equal(t, 0, tree.Height(), "height")
	assert.Nil(t, tree.Root(), "root")
	assert.True(t, tree.CheckBST(), "bst")
	assert.True(t, tree.CheckAA(), "aa")
	assert.Nil(t, tree.Check(), "check")
}

func TestSingle(t *testing.T) {
	tree := aatree.New()

	previous, replaced := tree.Insert(item.String("e"), 5)
	assert.False(t, replaced, "new key replaced")
	assert.Nil(t, previous, "previous for new key")

	v, found := tree.Search(item.String("e"))
	assert.True(t, found, "not found")
	assert.Equal(t, 5, v, "value")
	assert.True(t, tree.CheckAA(), "aa")
	assert.Equal(t, 1, tree.Count(), "count")
	assert.Equal(t, 1, tree.Root().Level(), "root level")
}

func TestThreeLetters(t *testing.T) {
	tree := aatree.New()
	tree.Insert(item.String("e"), 5)
	tree.Insert(item.String("b"), 88)
	tree.Insert(item.String("d"), 11)

	assert.True(t, tree.CheckBST(), "bst")
	assert.True(t, tree.CheckAA(), "aa")

	v, found := tree.Search(item.String("b"))
	assert.True(t, found, "b not found")
	assert.Equal(t, 88, v, "b value")

	v, found = tree.Search(item.String("d"))
	assert.True(t, found, "d not found")
	assert.Equal(t, 11, v, "d value")

	_, found = tree.Search(item.String("a"))
	assert.False(t, found, "a found")

	// e, b, d ends as a balanced three node tree rooted at d
	root := tree.Root()
	assert.Equal(t, item.String("d"), root.Key(), "root key")
	assert.Equal(t, 2, root.Level(), "root level")
	assert.Equal(t, item.String("b"), root.Left().Key(), "left key")
	assert.Equal(t, item.String("e"), root.Right().Key(), "right key")
}

// 7, 8, 9 needs a split, then 6 goes below the new root
func TestAscendingThenDip(t *testing.T) {
	tree := aatree.New()
	for _, n := range []int64{7, 8, 9, 6} {
		tree.Insert(item.Integer(n), n*10)
		if !tree.CheckAA() {
			buffer := &bytes.Buffer{}
			tree.Print(buffer, true)
			t.Fatalf("after insert: %d not AA:\n%s", n, buffer.String())
		}
	}
	assert.Equal(t, item.Integer(8), tree.Root().Key(), "root after split")
	assert.Equal(t, 2, tree.Root().Level(), "root level after split")
	assert.Equal(t, 4, tree.Count(), "count")
}

func TestReplace(t *testing.T) {
	tree := aatree.New()
	for i, k := range []string{"m", "c", "x", "a", "e"} {
		tree.Insert(item.String(k), i)
	}

	previous, replaced := tree.Insert(item.String("c"), "new")
	assert.True(t, replaced, "existing key not replaced")
	assert.Equal(t, 1, previous, "previous value")
	assert.Equal(t, 5, tree.Count(), "count changed on replace")

	v, found := tree.Search(item.String("c"))
	assert.True(t, found, "c not found")
	assert.Equal(t, "new", v, "replaced value")

	previous, replaced = tree.Insert(item.String("q"), 9)
	assert.False(t, replaced, "new key replaced")
	assert.Nil(t, previous, "previous for new key")
	assert.Equal(t, 6, tree.Count(), "count after new key")
}

// the key instance supplied last is the one kept
func TestReplaceKeepsLatestKey(t *testing.T) {
	tree := aatree.New()
	tree.Insert(taggedItem{"k", 1}, "one")
	tree.Insert(taggedItem{"j", 1}, "jay")
	tree.Insert(taggedItem{"k", 2}, "two")

	tags := map[string]int{}
	tree.Walk(func(key aatree.Item, value interface{}, level int, depth int) bool {
		k := key.(taggedItem)
		tags[k.name] = k.tag
		return true
	})
	assert.Equal(t, 2, tags["k"], "key instance not overwritten")
	assert.Equal(t, 1, tags["j"], "other key changed")
}

// the same pair twice gives the same shape as once
func TestIdempotentInsert(t *testing.T) {
	tree := aatree.New()
	for _, n := range []int64{4, 2, 9, 1, 7, 3, 8} {
		tree.Insert(item.Integer(n), n)
	}
	before := &bytes.Buffer{}
	tree.Print(before, true)

	previous, replaced := tree.Insert(item.Integer(7), int64(7))
	assert.True(t, replaced, "not replaced")
	assert.Equal(t, int64(7), previous, "previous")

	after := &bytes.Buffer{}
	tree.Print(after, true)
	assert.Equal(t, before.String(), after.String(), "shape changed")
	assert.Equal(t, 7, tree.Count(), "count")
}

func TestWalkOrder(t *testing.T) {
	addList := []string{"8133", "2136", "9651", "4079", "1042", "3579", "3630", "1427", "2136", "1042"}

	tree := aatree.New()
	unique := make(map[string]struct{})
	for _, k := range addList {
		unique[k] = struct{}{}
		tree.Insert(item.String(k), "data:"+k)
	}

	expected := make([]string, 0, len(unique))
	for k := range unique {
		expected = append(expected, k)
	}
	sort.Strings(expected)

	actual := make([]string, 0, len(unique))
	tree.Walk(func(key aatree.Item, value interface{}, level int, depth int) bool {
		s := string(key.(item.String))
		assert.Equal(t, "data:"+s, value, "walk value")
		actual = append(actual, s)
		return true
	})
	assert.Equal(t, expected, actual, "walk order")
	assert.Equal(t, len(expected), tree.Count(), "count")

	// early stop
	n := 0
	tree.Walk(func(key aatree.Item, value interface{}, level int, depth int) bool {
		n += 1
		return n < 3
	})
	assert.Equal(t, 3, n, "walk did not stop")
}

func TestWalkLevels(t *testing.T) {
	tree := aatree.New()
	for _, n := range []int64{1, 2, 3, 4, 5, 6, 7} {
		tree.Insert(item.Integer(n), nil)
	}

	depths := []int{}
	first := true
	tree.WalkLevels(func(key aatree.Item, value interface{}, level int, depth int) bool {
		if first {
			assert.Equal(t, tree.Root().Key(), key, "root not first")
			assert.Equal(t, 0, depth, "root depth")
			first = false
		}
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, 7, len(depths), "visited")
	assert.True(t, sort.IntsAreSorted(depths), "depths not in order: %v", depths)
	assert.Equal(t, tree.Height()-1, depths[len(depths)-1], "last depth")
}

func TestPrint(t *testing.T) {
	tree := aatree.New()
	tree.Insert(item.String("e"), 5)
	tree.Insert(item.String("b"), 88)
	tree.Insert(item.String("d"), 11)

	buffer := &bytes.Buffer{}
	depth := tree.Print(buffer, true)
	assert.Equal(t, 2, depth, "depth")

	lines := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
	assert.Equal(t, 3, len(lines), "lines: %q", lines)
	assert.Contains(t, lines[0], "/------+ e → 5 L1", "right branch")
	assert.Contains(t, lines[1], "|------+ d → 11 L2", "root")
	assert.Contains(t, lines[2], "\\------+ b → 88 L1", "left branch")

	buffer.Reset()
	tree.Print(buffer, false)
	assert.NotContains(t, buffer.String(), "→", "data printed")
}

// check after every insert for sorted and reverse sorted inputs,
// the worst cases for an unbalanced tree
func TestSequential(t *testing.T) {
	const n = 1000

	ascending := aatree.New()
	descending := aatree.New()
	for i := 0; i < n; i += 1 {
		ascending.Insert(item.Integer(i), i)
		descending.Insert(item.Integer(n-i), i)
		if !ascending.CheckAA() {
			t.Fatalf("ascending: not AA after: %d", i)
		}
		if !descending.CheckAA() {
			t.Fatalf("descending: not AA after: %d", i)
		}
	}
	assert.Nil(t, ascending.Check(), "ascending check")
	assert.Nil(t, descending.Check(), "descending check")

	// AA height is at most 2·log2(n+1)
	assert.True(t, ascending.Height() <= 20, "ascending height: %d", ascending.Height())
	assert.True(t, descending.Height() <= 20, "descending height: %d", descending.Height())

	for i := 0; i < n; i += 1 {
		v, found := ascending.Search(item.Integer(i))
		if !found || i != v {
			t.Fatalf("ascending: search: %d  found: %v  value: %v", i, found, v)
		}
	}
}

// many small random trees, with a wide range to avoid collisions and
// a narrow range to force many duplicates
func TestRandomTrials(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for _, keyRange := range []int64{1000000, 10} {
		for trial := 0; trial < 300; trial += 1 {
			doRandom(t, r, 20, keyRange)
		}
	}
}

func doRandom(t *testing.T, r *rand.Rand, count int, keyRange int64) {
	tree := aatree.New()
	expected := make(map[int64]int)
	for i := 0; i < count; i += 1 {
		k := r.Int63n(keyRange)
		_, existed := expected[k]
		_, replaced := tree.Insert(item.Integer(k), i)
		if existed != replaced {
			t.Fatalf("key: %d  existed: %v  replaced: %v", k, existed, replaced)
		}
		expected[k] = i
		if !tree.CheckAA() {
			buffer := &bytes.Buffer{}
			tree.Print(buffer, false)
			t.Fatalf("range: %d  not AA after inserting: %d\n%s", keyRange, k, buffer.String())
		}
	}

	if len(expected) != tree.Count() {
		t.Fatalf("count: actual: %d  expected: %d", tree.Count(), len(expected))
	}
	for k, i := range expected {
		v, found := tree.Search(item.Integer(k))
		if !found || i != v {
			t.Fatalf("search: %d  found: %v  value: %v  expected: %d", k, found, v, i)
		}
	}
	if _, found := tree.Search(item.Integer(-1)); found {
		t.Fatalf("found key never inserted")
	}
}
