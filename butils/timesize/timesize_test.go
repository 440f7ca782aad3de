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

package timesize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for s, want := range map[string]time.Duration{
		"30":    30 * time.Second,
		"1.5":   1500 * time.Millisecond,
		"100ms": 100 * time.Millisecond,
		" 2h ":  2 * time.Hour,
	} {
		d, err := Parse(s)
		require.NoError(t, err, s)
		require.Equal(t, want, d, s)
	}
	for _, s := range []string{"ten seconds", "", "NaN", "+Inf", "5 parsecs"} {
		_, err := Parse(s)
		require.ErrorIs(t, err, ErrBadTimeSize, s)
	}
}

func TestDurationText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("90s")))
	require.Equal(t, 90*time.Second, d.Duration())
	b, err := d.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "90s", string(b))

	for want, d := range map[string]Duration{
		"0":     0,
		"2h":    Duration(2 * time.Hour),
		"-90s":  Duration(-90 * time.Second),
		"20ms":  Duration(20 * time.Millisecond),
		"150us": Duration(150 * time.Microsecond),
		"1.5µs": Duration(1500),
	} {
		b, err := d.MarshalText()
		require.NoError(t, err)
		require.Equal(t, want, string(b))
	}
}
