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
	"github.com/zuoyebang/bitalosfwd/butils/list2"
)

// trie is a prefix tree over the phone alphabet whose nodes live in a shared
// arena. Every non-root node carries a redirect or has a descendant that does.
// Paths passed in must already be validated.
type trie struct {
	arena *arena
	root  nodeID
	work  *list2.IntStack
}

func newTrie(a *arena) (*trie, error) {
	root, err := a.alloc(nilNode, -1)
	if err != nil {
		return nil, err
	}
	return &trie{
		arena: a,
		root:  root,
		work:  list2.NewIntStack(32),
	}, nil
}

func (t *trie) node(id nodeID) *node {
	return &t.arena.nodes[id]
}

// find returns the node spelling path exactly, or nilNode.
func (t *trie) find(path string) nodeID {
	id := t.root
	for i := 0; i < len(path) && id != nilNode; i++ {
		id = t.arena.nodes[id].children[SymbolIndex(path[i])]
	}
	return id
}

// insert returns the node spelling path, creating missing nodes on the way.
// When the arena runs out, the nodes created by this call are released
// before the error is returned.
func (t *trie) insert(path string) (nodeID, error) {
	id := t.root
	for i := 0; i < len(path); i++ {
		sym := SymbolIndex(path[i])
		next := t.arena.nodes[id].children[sym]
		if next == nilNode {
			var err error
			if next, err = t.arena.alloc(id, sym); err != nil {
				t.prune(id)
				return nilNode, err
			}
			p := t.node(id)
			p.children[sym] = next
			p.degree++
		}
		id = next
	}
	return id, nil
}

// longestMatch returns the deepest node along path holding a redirect and
// the number of symbols consumed to reach it.
func (t *trie) longestMatch(path string) (nodeID, int) {
	match, depth := nilNode, 0
	id := t.root
	for i := 0; i < len(path); i++ {
		if id = t.arena.nodes[id].children[SymbolIndex(path[i])]; id == nilNode {
			break
		}
		if t.arena.nodes[id].hasRedirect() {
			match, depth = id, i+1
		}
	}
	return match, depth
}

// walk calls fn for every node along path that holds a redirect, shallowest
// first. fn must not modify the trie.
func (t *trie) walk(path string, fn func(n *node, depth int)) {
	id := t.root
	for i := 0; i < len(path); i++ {
		if id = t.arena.nodes[id].children[SymbolIndex(path[i])]; id == nilNode {
			return
		}
		if n := t.node(id); n.hasRedirect() {
			fn(n, i+1)
		}
	}
}

// prune releases id and then its ancestors for as long as they hold neither
// children nor a redirect. The root is never released.
func (t *trie) prune(id nodeID) {
	for id != t.root && id != nilNode {
		n := t.node(id)
		if !n.empty() {
			return
		}
		parent, sym := n.parent, n.symbol
		p := t.node(parent)
		p.children[sym] = nilNode
		p.degree--
		t.arena.release(id)
		id = parent
	}
}

// removeSubtree detaches id from its parent, releases every node below it
// (visit sees each one right before release) and prunes the ancestors left
// empty.
func (t *trie) removeSubtree(id nodeID, visit func(nodeID)) {
	n := t.node(id)
	parent, sym := n.parent, n.symbol
	p := t.node(parent)
	p.children[sym] = nilNode
	p.degree--

	t.work.Reset()
	t.work.Push(int32(id))
	for !t.work.Empty() {
		v, _ := t.work.Pop()
		cur := nodeID(v)
		for _, child := range t.node(cur).children {
			if child != nilNode {
				t.work.Push(int32(child))
			}
		}
		if visit != nil {
			visit(cur)
		}
		t.arena.release(cur)
	}

	t.prune(parent)
}

// clear removes every node below the root.
func (t *trie) clear(visit func(nodeID)) {
	for _, child := range t.node(t.root).children {
		if child != nilNode {
			t.removeSubtree(child, visit)
		}
	}
}
