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

package json

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type stats struct {
	Rules int64  `json:"rules"`
	Addr  string `json:"addr"`
}

func TestMarshal(t *testing.T) {
	b, err := Marshal(&stats{Rules: 3, Addr: "127.0.0.1:8379"})
	require.NoError(t, err)
	require.Equal(t, `{"rules":3,"addr":"127.0.0.1:8379"}`, string(b))

	var s stats
	require.NoError(t, Unmarshal(b, &s))
	require.Equal(t, int64(3), s.Rules)

	b, err = MarshalIndent(map[string]int{"a": 1})
	require.NoError(t, err)
	require.Equal(t, "{\n    \"a\": 1\n}", string(b))
}
