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
	"fmt"
	"io"

	"github.com/VictoriaMetrics/metrics"
	"go.uber.org/atomic"
)

var registryStats = struct {
	rules *atomic.Int64
	nodes *atomic.Int64
}{
	rules: atomic.NewInt64(0),
	nodes: atomic.NewInt64(0),
}

func init() {
	metrics.NewGauge(`bitalosfwd_conns_alive`, func() float64 {
		return float64(ConnsAlive())
	})
	metrics.NewGauge(`bitalosfwd_conns_total`, func() float64 {
		return float64(ConnsTotal())
	})
	metrics.NewGauge(`bitalosfwd_registry_rules`, func() float64 {
		return float64(registryStats.rules.Load())
	})
	metrics.NewGauge(`bitalosfwd_registry_nodes`, func() float64 {
		return float64(registryStats.nodes.Load())
	})
}

func callsCounter(opstr string) *metrics.Counter {
	return metrics.GetOrCreateCounter(fmt.Sprintf(`bitalosfwd_cmd_calls_total{cmd=%q}`, opstr))
}

func failsCounter(opstr string) *metrics.Counter {
	return metrics.GetOrCreateCounter(fmt.Sprintf(`bitalosfwd_cmd_fails_total{cmd=%q}`, opstr))
}

// SetRegistrySize publishes the current rule and node counts of the registry.
func SetRegistrySize(rules, nodes int) {
	registryStats.rules.Store(int64(rules))
	registryStats.nodes.Store(int64(nodes))
}

func RegistryRules() int64 {
	return registryStats.rules.Load()
}

func RegistryNodes() int64 {
	return registryStats.nodes.Load()
}

func WritePrometheus(w io.Writer) {
	metrics.WritePrometheus(w, true)
}
