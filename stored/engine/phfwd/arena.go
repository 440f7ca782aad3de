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
	"github.com/cockroachdb/errors"
	"github.com/zuoyebang/bitalosfwd/butils/list2"
)

type nodeID int32

const nilNode nodeID = 0

type node struct {
	children [AlphabetSize]nodeID
	parent   nodeID
	symbol   int8
	degree   uint8

	// forward side: redirect target and the reverse node mirroring it
	target string
	mirror nodeID

	// reverse side: mirrored source numbers keyed by their forward node
	sources map[nodeID]string
}

func (n *node) hasRedirect() bool {
	return len(n.target) > 0 || len(n.sources) > 0
}

func (n *node) empty() bool {
	return n.degree == 0 && !n.hasRedirect()
}

// arena holds the nodes of both tries. Slot 0 is never handed out so that a
// zero nodeID always means "no node". Pointers into nodes are only valid
// until the next alloc.
type arena struct {
	nodes []node
	free  *list2.IntStack
	limit int
	inuse int
}

func newArena(limit int) *arena {
	return &arena{
		nodes: make([]node, 1, 64),
		free:  list2.NewIntStack(64),
		limit: limit,
	}
}

func (a *arena) alloc(parent nodeID, symbol int) (nodeID, error) {
	if a.limit > 0 && a.inuse >= a.limit {
		return nilNode, errors.Wrapf(ErrAllocation, "node limit %d reached", a.limit)
	}

	var id nodeID
	if v, ok := a.free.Pop(); ok {
		id = nodeID(v)
	} else {
		a.nodes = append(a.nodes, node{})
		id = nodeID(len(a.nodes) - 1)
	}
	a.nodes[id] = node{parent: parent, symbol: int8(symbol)}
	a.inuse++
	return id, nil
}

func (a *arena) release(id nodeID) {
	a.nodes[id] = node{}
	a.free.Push(int32(id))
	a.inuse--
}
