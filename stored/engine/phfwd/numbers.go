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
	"strings"

	rbtree "github.com/emirpasic/gods/trees/redblacktree"
)

// Numbers is an ordered, duplicate free list of phone numbers handed out by
// registry queries. It does not reference the registry that produced it.
type Numbers struct {
	tree *rbtree.Tree
	list []string
}

func numberComparator(x, y interface{}) int {
	return Compare(x.(string), y.(string))
}

func newNumbers() *Numbers {
	return &Numbers{
		tree: rbtree.NewWith(numberComparator),
	}
}

func singleNumber(num string) *Numbers {
	ns := newNumbers()
	ns.insert(num)
	return ns
}

// insert adds num at its sorted position; it reports false when num is
// already present.
func (ns *Numbers) insert(num string) bool {
	if _, found := ns.tree.Get(num); found {
		return false
	}
	ns.tree.Put(num, struct{}{})
	ns.list = nil
	return true
}

func (ns *Numbers) remove(num string) {
	ns.tree.Remove(num)
	ns.list = nil
}

func (ns *Numbers) materialize() []string {
	if ns.list == nil {
		ns.list = make([]string, 0, ns.tree.Size())
		it := ns.tree.Iterator()
		for it.Next() {
			ns.list = append(ns.list, it.Key().(string))
		}
	}
	return ns.list
}

// Get returns the idx-th number in order, or false when idx is out of range.
func (ns *Numbers) Get(idx int) (string, bool) {
	if ns == nil || idx < 0 || idx >= ns.tree.Size() {
		return "", false
	}
	return ns.materialize()[idx], true
}

func (ns *Numbers) Len() int {
	if ns == nil {
		return 0
	}
	return ns.tree.Size()
}

func (ns *Numbers) Empty() bool {
	return ns.Len() == 0
}

func (ns *Numbers) Contains(num string) bool {
	if ns == nil {
		return false
	}
	_, found := ns.tree.Get(num)
	return found
}

// All returns a copy of the numbers in order.
func (ns *Numbers) All() []string {
	if ns == nil {
		return nil
	}
	list := ns.materialize()
	res := make([]string, len(list))
	copy(res, list)
	return res
}

func (ns *Numbers) String() string {
	return "[" + strings.Join(ns.materialize(), " ") + "]"
}
