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

package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zuoyebang/bitalosfwd/stored/engine/phfwd"

	"github.com/stretchr/testify/require"
)

const script = `
# redirect a whole exchange
ADD 600 112
add 6002 7
GET 6001
GET 6002345
   # indented comment
REVERSE 1121
GETREVERSE 1121
GETREVERSE 600
COUNT
DEL 600
COUNT
GET 6002
`

const scriptOutput = `1121
7345
1121
6001
1121
6001
2
0
6002
`

func runScript(t *testing.T, exec Executor, src string) (string, error) {
	var out bytes.Buffer
	err := New(exec, &out).Run(strings.NewReader(src))
	return out.String(), err
}

func TestLocalScript(t *testing.T) {
	exec, err := NewLocal(nil)
	require.NoError(t, err)
	defer exec.Close()

	out, err := runScript(t, exec, script)
	require.NoError(t, err)
	require.Equal(t, scriptOutput, out)
}

func TestSyntaxErrors(t *testing.T) {
	exec, err := NewLocal(nil)
	require.NoError(t, err)

	for _, tc := range []struct {
		src  string
		line string
	}{
		{"ADD 1\n", "line 1"},
		{"\n\nFOO 1 2\n", "line 3"},
		{"COUNT\nCOUNT 1\n", "line 2"},
	} {
		_, err := runScript(t, exec, tc.src)
		require.ErrorIs(t, err, ErrSyntax, tc.src)
		require.Contains(t, err.Error(), tc.line, tc.src)
	}
}

func TestStopsAtFirstFailure(t *testing.T) {
	exec, err := NewLocal(nil)
	require.NoError(t, err)

	out, err := runScript(t, exec, "ADD 1 2\nGET 15\nADD 3 x4\nADD 5 6\n")
	require.Error(t, err)
	require.True(t, phfwd.IsInvalidArgument(err))
	require.Contains(t, err.Error(), "line 3")
	require.Equal(t, "25\n", out)

	count, err := exec.Count()
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestLocalAllocation(t *testing.T) {
	exec, err := NewLocal(&phfwd.Options{MaxNodes: 4})
	require.NoError(t, err)

	_, err = runScript(t, exec, "ADD 1 2\nADD 3 4\n")
	require.True(t, phfwd.IsAllocation(err))
	require.Contains(t, err.Error(), "line 2")

	out, err := runScript(t, exec, "RESET\nADD 3 4\nGET 35\n")
	require.NoError(t, err)
	require.Equal(t, "45\n", out)
}

func TestEmptyGetReverse(t *testing.T) {
	exec, err := NewLocal(nil)
	require.NoError(t, err)

	out, err := runScript(t, exec, "ADD 7 8\nGETREVERSE 7\nREVERSE 7\n")
	require.NoError(t, err)
	require.Equal(t, "7\n", out)
}
