// Copyright 2019 The Bitalostored author and other contributors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package phfwd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkTrie verifies the structure below root: parent links, degree counts
// and that no non-root node is left without a redirect or children. It
// returns the number of reachable nodes.
func checkTrie(t *testing.T, tr *trie) int {
	t.Helper()
	count := 0
	stack := []nodeID{tr.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		n := tr.node(id)
		degree := 0
		for sym, child := range n.children {
			if child == nilNode {
				continue
			}
			degree++
			c := tr.node(child)
			require.Equal(t, id, c.parent)
			require.Equal(t, int8(sym), c.symbol)
			stack = append(stack, child)
		}
		require.Equal(t, degree, int(n.degree))
		if id != tr.root {
			require.False(t, n.empty(), "dangling node %d", id)
		}
	}
	return count
}

func checkRegistry(t *testing.T, pf *PhoneForward) {
	t.Helper()
	nodes := checkTrie(t, pf.forward) + checkTrie(t, pf.reverse)
	require.Equal(t, pf.arena.inuse, nodes)

	rules := 0
	stack := []nodeID{pf.forward.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := pf.forward.node(id)
		if n.target != "" {
			rules++
			require.NotEqual(t, nilNode, n.mirror)
			_, ok := pf.reverse.node(n.mirror).sources[id]
			require.True(t, ok, "mirror of node %d lost", id)
		}
		for _, child := range n.children {
			if child != nilNode {
				stack = append(stack, child)
			}
		}
	}
	require.Equal(t, pf.rules, rules)
}

func newTestTrie(t *testing.T, limit int) *trie {
	tr, err := newTrie(newArena(limit))
	require.NoError(t, err)
	return tr
}

func setTarget(t *testing.T, tr *trie, path, target string) nodeID {
	id, err := tr.insert(path)
	require.NoError(t, err)
	tr.node(id).target = target
	return id
}

func TestTrieInsertFind(t *testing.T) {
	tr := newTestTrie(t, 0)
	id := setTarget(t, tr, "123", "9")
	assert.Equal(t, id, tr.find("123"))
	assert.NotEqual(t, nilNode, tr.find("12"))
	assert.Equal(t, nilNode, tr.find("1234"))
	assert.Equal(t, nilNode, tr.find("2"))
	assert.Equal(t, 4, tr.arena.inuse)

	again, err := tr.insert("123")
	require.NoError(t, err)
	assert.Equal(t, id, again)
	assert.Equal(t, 4, tr.arena.inuse)
	assert.Equal(t, 4, checkTrie(t, tr))
}

func TestTrieLongestMatch(t *testing.T) {
	tr := newTestTrie(t, 0)
	short := setTarget(t, tr, "22", "44")
	long := setTarget(t, tr, "22123", "55")

	id, depth := tr.longestMatch("22123999")
	assert.Equal(t, long, id)
	assert.Equal(t, 5, depth)

	id, depth = tr.longestMatch("2212")
	assert.Equal(t, short, id)
	assert.Equal(t, 2, depth)

	id, depth = tr.longestMatch("2")
	assert.Equal(t, nilNode, id)
	assert.Equal(t, 0, depth)

	id, _ = tr.longestMatch("3")
	assert.Equal(t, nilNode, id)
}

func TestTrieWalk(t *testing.T) {
	tr := newTestTrie(t, 0)
	setTarget(t, tr, "1", "a")
	setTarget(t, tr, "123", "b")
	setTarget(t, tr, "1234", "c")
	setTarget(t, tr, "13", "d")

	var seen []string
	var depths []int
	tr.walk("12345", func(n *node, depth int) {
		seen = append(seen, n.target)
		depths = append(depths, depth)
	})
	assert.Equal(t, []string{"a", "b", "c"}, seen)
	assert.Equal(t, []int{1, 3, 4}, depths)
}

func TestTrieRemoveSubtree(t *testing.T) {
	tr := newTestTrie(t, 0)
	setTarget(t, tr, "5", "x")
	setTarget(t, tr, "5123", "x")
	setTarget(t, tr, "5124", "x")
	setTarget(t, tr, "51", "x")
	setTarget(t, tr, "6", "x")

	var visited int
	tr.removeSubtree(tr.find("51"), func(nodeID) { visited++ })
	assert.Equal(t, 4, visited)
	assert.Equal(t, nilNode, tr.find("51"))
	assert.NotEqual(t, nilNode, tr.find("5"))
	assert.Equal(t, 3, checkTrie(t, tr))
	assert.Equal(t, 3, tr.arena.inuse)
}

func TestTrieRemovePrunesAncestors(t *testing.T) {
	tr := newTestTrie(t, 0)
	setTarget(t, tr, "123456", "x")
	setTarget(t, tr, "7", "x")
	tr.removeSubtree(tr.find("123456"), nil)
	assert.Equal(t, nilNode, tr.find("1"))
	assert.Equal(t, 2, tr.arena.inuse)
	assert.Equal(t, 2, checkTrie(t, tr))
}

func TestTrieRemoveDeep(t *testing.T) {
	tr := newTestTrie(t, 0)
	path := make([]byte, 100000)
	for i := range path {
		path[i] = SymbolChar(i % AlphabetSize)
	}
	setTarget(t, tr, string(path), "1")
	require.Equal(t, len(path)+1, tr.arena.inuse)

	tr.removeSubtree(tr.find(string(path[:1])), nil)
	assert.Equal(t, 1, tr.arena.inuse)
}

func TestTrieInsertUnwind(t *testing.T) {
	tr := newTestTrie(t, 4)
	setTarget(t, tr, "1", "x")
	require.Equal(t, 2, tr.arena.inuse)

	_, err := tr.insert("1234")
	require.Error(t, err)
	assert.True(t, IsAllocation(err))
	assert.Equal(t, 2, tr.arena.inuse)
	assert.Equal(t, nilNode, tr.find("12"))
	assert.Equal(t, 2, checkTrie(t, tr))

	_, err = tr.insert("567")
	require.Error(t, err)
	assert.Equal(t, 2, tr.arena.inuse)
	assert.Equal(t, nilNode, tr.find("5"))
}

func TestArenaReuse(t *testing.T) {
	a := newArena(0)
	first, err := a.alloc(nilNode, -1)
	require.NoError(t, err)
	second, err := a.alloc(first, 3)
	require.NoError(t, err)
	assert.NotEqual(t, nilNode, first)
	assert.NotEqual(t, first, second)

	a.release(second)
	assert.Equal(t, 1, a.inuse)
	third, err := a.alloc(first, 4)
	require.NoError(t, err)
	assert.Equal(t, second, third)
	assert.Equal(t, int8(4), a.nodes[third].symbol)
	assert.Equal(t, 3, len(a.nodes))
}
