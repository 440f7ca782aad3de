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

package server

import (
	"github.com/zuoyebang/bitalosfwd/stored/engine/phfwd"
	"github.com/zuoyebang/bitalosfwd/stored/internal/dostats"
	"github.com/zuoyebang/bitalosfwd/stored/internal/errn"
)

// allowWrite takes one token from the write qps bucket.
func (s *Server) allowWrite() bool {
	if s.writeLimiter == nil {
		return true
	}
	return s.writeLimiter.TakeAvailable(1) > 0
}

func (s *Server) publishRegistrySize() {
	dostats.SetRegistrySize(s.registry.Rules(), s.registry.Nodes())
}

func (s *Server) Add(num1, num2 string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.publishRegistrySize()
	return s.registry.Add(num1, num2)
}

func (s *Server) Remove(num string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.publishRegistrySize()
	return s.registry.Remove(num)
}

func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry.Reset()
	s.publishRegistrySize()
}

func (s *Server) Get(num string) (*phfwd.Numbers, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.Get(num)
}

func (s *Server) Reverse(num string) (*phfwd.Numbers, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.Reverse(num)
}

func (s *Server) GetReverse(num string) (*phfwd.Numbers, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.GetReverse(num)
}

// Size returns the rule and node counts under one read lock.
func (s *Server) Size() (rules int, nodes int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.Rules(), s.registry.Nodes()
}

func registryErr(err error) error {
	switch {
	case phfwd.IsInvalidArgument(err):
		return errn.RegistryErr(phfwd.ErrInvalidArgument, err)
	case phfwd.IsAllocation(err):
		return errn.RegistryErr(phfwd.ErrAllocation, err)
	default:
		return errn.RegistryErr(err, err)
	}
}
