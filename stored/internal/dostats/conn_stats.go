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

package dostats

import (
	"go.uber.org/atomic"
)

var connStats = struct {
	total *atomic.Int64
	alive *atomic.Int64
}{
	total: atomic.NewInt64(0),
	alive: atomic.NewInt64(0),
}

func IncrConns() int64 {
	connStats.total.Inc()
	return connStats.alive.Inc()
}

func DecrConns() {
	connStats.alive.Dec()
}

func ConnsTotal() int64 {
	return connStats.total.Load()
}

func ConnsAlive() int64 {
	return connStats.alive.Load()
}
