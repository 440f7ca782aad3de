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
)

type Options struct {
	// MaxNodes caps the nodes held by both tries together, roots included.
	// Zero means no limit.
	MaxNodes int
}

// PhoneForward is a registry of prefix redirections. It keeps a forward trie
// (source prefix -> target prefix) and a reverse trie mirroring every rule
// (target prefix -> source prefixes).
//
// PhoneForward does no locking; callers sharing one across goroutines must
// serialize mutations against everything else.
type PhoneForward struct {
	opts    Options
	arena   *arena
	forward *trie
	reverse *trie
	rules   int
}

func New(opts *Options) (*PhoneForward, error) {
	pf := &PhoneForward{}
	if opts != nil {
		pf.opts = *opts
	}
	if err := pf.init(); err != nil {
		return nil, err
	}
	return pf, nil
}

func (pf *PhoneForward) init() error {
	a := newArena(pf.opts.MaxNodes)
	forward, err := newTrie(a)
	if err != nil {
		return errors.Wrap(err, "new forward trie")
	}
	reverse, err := newTrie(a)
	if err != nil {
		return errors.Wrap(err, "new reverse trie")
	}
	pf.arena = a
	pf.forward = forward
	pf.reverse = reverse
	pf.rules = 0
	return nil
}

// Add stores the rule "numbers starting with num1 start with num2 instead",
// replacing any rule previously stored for num1. The two tries are updated
// together: on failure neither of them changes.
func (pf *PhoneForward) Add(num1, num2 string) error {
	if err := Validate(num1); err != nil {
		return err
	}
	if err := Validate(num2); err != nil {
		return err
	}
	if Compare(num1, num2) == 0 {
		return errors.Wrapf(ErrInvalidArgument, "number %q redirects to itself", num1)
	}

	if id := pf.forward.find(num1); id != nilNode && Compare(pf.forward.node(id).target, num2) == 0 {
		return nil
	}

	fid, err := pf.forward.insert(num1)
	if err != nil {
		return errors.Wrapf(err, "add %s -> %s", num1, num2)
	}
	rid, err := pf.reverse.insert(num2)
	if err != nil {
		pf.forward.prune(fid)
		return errors.Wrapf(err, "add %s -> %s", num1, num2)
	}

	// attach the new mirror before dropping the old one, which may prune
	// reverse nodes up to (but never including) a node holding sources
	rn := pf.reverse.node(rid)
	if rn.sources == nil {
		rn.sources = make(map[nodeID]string, 1)
	}
	rn.sources[fid] = num1

	fn := pf.forward.node(fid)
	if fn.target == "" {
		pf.rules++
	} else {
		pf.detachMirror(fid)
	}
	fn.target = num2
	fn.mirror = rid
	return nil
}

func (pf *PhoneForward) detachMirror(fid nodeID) {
	fn := pf.forward.node(fid)
	rid := fn.mirror
	if rid == nilNode {
		return
	}
	fn.mirror = nilNode
	delete(pf.reverse.node(rid).sources, fid)
	pf.reverse.prune(rid)
}

// Remove drops every rule whose source starts with num. Nothing matching is
// not an error.
func (pf *PhoneForward) Remove(num string) error {
	if err := Validate(num); err != nil {
		return err
	}

	id := pf.forward.find(num)
	if id == nilNode {
		return nil
	}
	pf.forward.removeSubtree(id, pf.dropRule)
	return nil
}

func (pf *PhoneForward) dropRule(fid nodeID) {
	if pf.forward.node(fid).target == "" {
		return
	}
	pf.detachMirror(fid)
	pf.rules--
}

// Get returns the single number num is redirected to: the target of the
// longest stored prefix of num followed by the rest of num, or num itself.
func (pf *PhoneForward) Get(num string) (*Numbers, error) {
	if err := Validate(num); err != nil {
		return nil, err
	}
	return singleNumber(pf.redirect(num)), nil
}

func (pf *PhoneForward) redirect(num string) string {
	id, depth := pf.forward.longestMatch(num)
	if id == nilNode {
		return num
	}
	return pf.forward.node(id).target + num[depth:]
}

// Reverse returns num together with every number some rule could rewrite
// into num, without checking that a longer rule does not win instead.
func (pf *PhoneForward) Reverse(num string) (*Numbers, error) {
	if err := Validate(num); err != nil {
		return nil, err
	}

	res := singleNumber(num)
	pf.reverse.walk(num, func(n *node, depth int) {
		suffix := num[depth:]
		for _, source := range n.sources {
			res.insert(source + suffix)
		}
	})
	return res, nil
}

// GetReverse returns the numbers x with Get(x) == num. The result is empty,
// not nil, when num is itself redirected and no rule produces it.
func (pf *PhoneForward) GetReverse(num string) (*Numbers, error) {
	res, err := pf.Reverse(num)
	if err != nil {
		return nil, err
	}
	for _, candidate := range res.All() {
		if pf.redirect(candidate) != num {
			res.remove(candidate)
		}
	}
	return res, nil
}

// Rules returns the number of stored redirections.
func (pf *PhoneForward) Rules() int {
	return pf.rules
}

// Nodes returns the number of arena nodes in use, both roots included.
func (pf *PhoneForward) Nodes() int {
	return pf.arena.inuse
}

// Reset removes every rule, releasing all nodes but the two roots.
func (pf *PhoneForward) Reset() {
	pf.forward.clear(pf.dropRule)
	pf.reverse.clear(nil)
}
