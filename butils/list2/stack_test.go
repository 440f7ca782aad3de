// Copyright 2019-2024 Xu Ruibo (hustxurb@163.com) and Contributors
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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntStack(t *testing.T) {
	stack := NewIntStack(4)
	require.True(t, stack.Empty())
	for i := int32(1); i <= 10; i++ {
		stack.Push(i)
	}
	require.Equal(t, 10, stack.Len())

	value, ok := stack.Peak()
	require.True(t, ok)
	require.Equal(t, int32(10), value)

	for i := int32(10); i >= 1; i-- {
		value, ok = stack.Pop()
		require.True(t, ok)
		require.Equal(t, i, value)
	}
	require.True(t, stack.Empty())

	_, ok = stack.Pop()
	require.False(t, ok)
	_, ok = stack.Peak()
	require.False(t, ok)

	stack.Push(7)
	stack.Reset()
	require.Equal(t, 0, stack.Len())
	require.True(t, stack.Empty())
}

func TestIntStackReuse(t *testing.T) {
	stack := NewIntStack(5)
	require.Equal(t, 8, cap(stack.data))

	for round := 0; round < 3; round++ {
		for i := int32(0); i < 20; i++ {
			stack.Push(i)
		}
		grown := cap(stack.data)
		for i := int32(19); i >= 0; i-- {
			value, ok := stack.Pop()
			require.True(t, ok)
			require.Equal(t, i, value)
		}
		require.True(t, stack.Empty())
		require.Equal(t, grown, cap(stack.data))
	}

	stack.Push(1)
	stack.Push(2)
	stack.Reset()
	stack.Push(3)
	value, ok := stack.Pop()
	require.True(t, ok)
	require.Equal(t, int32(3), value)
}
