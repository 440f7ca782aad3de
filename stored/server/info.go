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

package server

import (
	"runtime"

	"github.com/zuoyebang/bitalosfwd/butils"
	"github.com/zuoyebang/bitalosfwd/butils/json"
	"github.com/zuoyebang/bitalosfwd/stored/internal/dostats"

	"github.com/cockroachdb/errors"
)

const (
	InfoServer   = "server"
	InfoClients  = "clients"
	InfoRegistry = "registry"
	InfoStats    = "stats"
	InfoRuntime  = "runtime"
	InfoCommands = "commands"
)

type SInfo struct {
	Server SinfoServer
}

func NewSinfo() *SInfo {
	return &SInfo{}
}

type SinfoServer struct {
	ProductName   string `json:"product_name"`
	MaxProcs      int    `json:"maxprocs"`
	ProcessId     int    `json:"process_id"`
	StartTime     string `json:"start_time"`
	ServerAddress string `json:"server_address"`
	MaxClient     int64  `json:"max_client"`
	MaxNodes      int    `json:"max_nodes"`
	GitVersion    string `json:"git_version"`
	Compile       string `json:"compile"`
	ConfigFile    string `json:"config_file"`
}

type SinfoClients struct {
	ClientTotal int64 `json:"client_total"`
	ClientAlive int64 `json:"client_alive"`
}

type SinfoRegistry struct {
	Rules int `json:"rules"`
	Nodes int `json:"nodes"`
}

type SinfoStats struct {
	TotalCmd  int64 `json:"total_cmd"`
	TotalFail int64 `json:"total_fail"`
	QPS       int64 `json:"qps"`
}

type SinfoRuntime struct {
	Goroutines  int    `json:"goroutines"`
	HeapAlloc   string `json:"heap_alloc"`
	HeapObjects uint64 `json:"heap_objects"`
	NumGC       uint32 `json:"num_gc"`
}

func (s *Server) infoSection(section string) (interface{}, bool) {
	switch section {
	case InfoServer:
		return s.Info.Server, true
	case InfoClients:
		return SinfoClients{
			ClientTotal: dostats.ConnsTotal(),
			ClientAlive: dostats.ConnsAlive(),
		}, true
	case InfoRegistry:
		rules, nodes := s.Size()
		return SinfoRegistry{Rules: rules, Nodes: nodes}, true
	case InfoStats:
		return SinfoStats{
			TotalCmd:  dostats.OpTotal(),
			TotalFail: dostats.OpFails(),
			QPS:       dostats.OpQPS(),
		}, true
	case InfoRuntime:
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return SinfoRuntime{
			Goroutines:  runtime.NumGoroutine(),
			HeapAlloc:   butils.FmtSize(ms.HeapAlloc),
			HeapObjects: ms.HeapObjects,
			NumGC:       ms.NumGC,
		}, true
	case InfoCommands:
		return dostats.GetOpStatsAll(), true
	default:
		return nil, false
	}
}

// MarshalInfo renders the named sections as one JSON object, or every section
// when none is named.
func (s *Server) MarshalInfo(sections ...string) ([]byte, error) {
	if len(sections) == 0 {
		sections = []string{InfoServer, InfoClients, InfoRegistry, InfoStats, InfoRuntime, InfoCommands}
	}
	out := make(map[string]interface{}, len(sections))
	for _, name := range sections {
		v, ok := s.infoSection(name)
		if !ok {
			return nil, errors.Newf("ERR unknown info section '%s'", name)
		}
		out[name] = v
	}
	return json.Marshal(out)
}
