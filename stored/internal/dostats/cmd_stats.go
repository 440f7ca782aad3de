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
	"math"
	"sort"
	"sync"
	"time"

	"go.uber.org/atomic"
)

type OpStats struct {
	Opstr string
	Calls atomic.Int64
	Nsecs atomic.Int64
	Fails atomic.Int64
}

func (s *OpStats) OpStats() *CalOpStats {
	o := &CalOpStats{
		OpStr: s.Opstr,
		Calls: s.Calls.Load(),
		Usecs: s.Nsecs.Load() / 1e3,
		Fails: s.Fails.Load(),
	}
	if o.Calls != 0 {
		o.UsecsPercall = o.Usecs / o.Calls
	}
	return o
}

type CalOpStats struct {
	OpStr        string `json:"opstr"`
	Calls        int64  `json:"calls"`
	Usecs        int64  `json:"usecs"`
	UsecsPercall int64  `json:"usecs_percall"`
	Fails        int64  `json:"fails"`
}

var cmdStats = struct {
	sync.RWMutex
	opmap map[string]*OpStats
	total atomic.Int64
	fails atomic.Int64
	qps   atomic.Int64
}{
	opmap: make(map[string]*OpStats, 32),
}

func init() {
	go func() {
		for {
			total := cmdStats.total.Load()
			time.Sleep(time.Second * 2)
			delta := cmdStats.total.Load() - total
			normalized := math.Max(0, float64(delta)) + 0.5
			cmdStats.qps.Store(int64(normalized / 2))
		}
	}()
}

func OpTotal() int64 {
	return cmdStats.total.Load()
}

func OpFails() int64 {
	return cmdStats.fails.Load()
}

func OpQPS() int64 {
	return cmdStats.qps.Load()
}

func getOpStats(opstr string) *OpStats {
	cmdStats.RLock()
	s := cmdStats.opmap[opstr]
	cmdStats.RUnlock()
	if s != nil {
		return s
	}

	cmdStats.Lock()
	s = cmdStats.opmap[opstr]
	if s == nil {
		s = &OpStats{Opstr: opstr}
		cmdStats.opmap[opstr] = s
	}
	cmdStats.Unlock()
	return s
}

// IncrOpStats records one finished command. A non-nil err counts as a failure.
func IncrOpStats(opstr string, start time.Time, err error) {
	cost := time.Since(start)
	s := getOpStats(opstr)
	s.Calls.Inc()
	s.Nsecs.Add(int64(cost))
	cmdStats.total.Inc()
	callsCounter(opstr).Inc()
	if err != nil {
		s.Fails.Inc()
		cmdStats.fails.Inc()
		failsCounter(opstr).Inc()
	}
}

func GetOpStatsAll() []*CalOpStats {
	all := make([]*CalOpStats, 0, 32)
	cmdStats.RLock()
	for _, s := range cmdStats.opmap {
		all = append(all, s.OpStats())
	}
	cmdStats.RUnlock()
	sort.Slice(all, func(i, j int) bool {
		return all[i].OpStr < all[j].OpStr
	})
	return all
}

func ResetStats() {
	cmdStats.Lock()
	cmdStats.opmap = make(map[string]*OpStats, 32)
	cmdStats.Unlock()

	cmdStats.total.Store(0)
	cmdStats.fails.Store(0)
}
