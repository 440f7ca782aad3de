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

package list2

import "math/bits"

// IntStack is a LIFO of int32 backed by a growable slice. Popped slots are
// kept for reuse, so a stack that is drained and refilled does not allocate.
type IntStack struct {
	data []int32
}

func NewIntStack(size uint32) *IntStack {
	return &IntStack{data: make([]int32, 0, calcBitsSize(int(size)))}
}

func (s *IntStack) Push(value int32) {
	s.data = append(s.data, value)
}

func (s *IntStack) Peak() (int32, bool) {
	if len(s.data) == 0 {
		return 0, false
	}
	return s.data[len(s.data)-1], true
}

func (s *IntStack) Pop() (int32, bool) {
	n := len(s.data)
	if n == 0 {
		return 0, false
	}
	value := s.data[n-1]
	s.data = s.data[:n-1]
	return value, true
}

func (s *IntStack) Reset() {
	s.data = s.data[:0]
}

func (s *IntStack) Empty() bool {
	return len(s.data) == 0
}

func (s *IntStack) Len() int {
	return len(s.data)
}

func calcBitsSize(sz int) int {
	return 1 << bits.Len(uint(sz))
}
