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

func TestValidate(t *testing.T) {
	cases := []struct {
		num string
		ok  bool
	}{
		{"0", true},
		{"0123456789", true},
		{"*#", true},
		{"12*34#", true},
		{"", false},
		{"12a", false},
		{" 12", false},
		{"+48", false},
		{"12\x00", false},
	}
	for _, c := range cases {
		err := Validate(c.num)
		if c.ok {
			assert.NoError(t, err, c.num)
		} else {
			require.Error(t, err, c.num)
			assert.True(t, IsInvalidArgument(err), c.num)
		}
	}
}

func TestSymbolIndex(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, i, SymbolIndex(byte('0'+i)))
		assert.Equal(t, byte('0'+i), SymbolChar(i))
	}
	assert.Equal(t, 10, SymbolIndex('*'))
	assert.Equal(t, 11, SymbolIndex('#'))
	assert.Equal(t, -1, SymbolIndex('a'))
	assert.Equal(t, byte('#'), SymbolChar(11))
}

func TestCompare(t *testing.T) {
	ordered := []string{"0", "00", "01", "1", "12", "120", "2", "9", "9*", "*", "*0", "#", "##"}
	for i := range ordered {
		assert.Equal(t, 0, Compare(ordered[i], ordered[i]))
		for j := i + 1; j < len(ordered); j++ {
			assert.Less(t, Compare(ordered[i], ordered[j]), 0, "%s < %s", ordered[i], ordered[j])
			assert.Greater(t, Compare(ordered[j], ordered[i]), 0, "%s > %s", ordered[j], ordered[i])
		}
	}
}
