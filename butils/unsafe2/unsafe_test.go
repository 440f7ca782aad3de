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

package unsafe2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringByteSlice(t *testing.T) {
	require.Equal(t, "", String(nil))
	require.Equal(t, "0123*#", String([]byte("0123*#")))
	require.Equal(t, []byte("987"), ByteSlice("987"))
	require.Len(t, ByteSlice(""), 0)
}
