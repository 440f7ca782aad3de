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

package butils

import (
	"fmt"
	"time"
)

const (
	kb = 1 << 10
	mb = 1 << 20
	gb = 1 << 30
)

var sizeUnits = []string{"KB", "MB", "GB", "TB"}

// FmtSize renders a byte count with three decimal places, e.g. "1.221MB".
func FmtSize(size uint64) string {
	if size < kb {
		return fmt.Sprintf("%dB", size)
	}
	shift := uint(10)
	for i, unit := range sizeUnits {
		if size < 1<<(shift+10) || i == len(sizeUnits)-1 {
			return fmt.Sprintf("%d.%03d%s", size>>shift, (size>>(shift-10))%kb, unit)
		}
		shift += 10
	}
	return ""
}

var durationUnits = []struct {
	unit time.Duration
	name string
}{
	{time.Second, "s"},
	{time.Millisecond, "ms"},
	{time.Microsecond, "us"},
}

// FmtDuration renders a command cost for the logs, e.g. "3.001ms".
func FmtDuration(d time.Duration) string {
	for _, u := range durationUnits {
		if d > u.unit {
			return fmt.Sprintf("%d.%03d%s", d/u.unit, d%u.unit/(u.unit/1000), u.name)
		}
	}
	return fmt.Sprintf("%dns", d)
}
