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

package gops

import (
	"github.com/zuoyebang/bitalosfwd/stored/internal/config"
	"github.com/zuoyebang/bitalosfwd/stored/internal/log"
	"github.com/zuoyebang/bitalosfwd/stored/server"

	"github.com/google/gops/agent"
)

func Init() {
	if !config.GlobalConfig.Plugin.OpenGoPs {
		return
	}

	server.AddPlugin(&server.Proc{
		Name: "gops",
		Start: func(s *server.Server) {
			addr := config.GlobalConfig.Plugin.GoPsAddr
			if err := agent.Listen(agent.Options{Addr: addr, ShutdownCleanup: false}); err != nil {
				log.Errorf("gops agent listen addr:%s err:%v", addr, err)
				return
			}
			log.Infof("gops agent addr:%s", addr)
		},
		Stop: func(s *server.Server, e interface{}) {
			agent.Close()
		},
	})
}
