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
	"fmt"
)

type CmdHandler func(*Client) error

type Cmd struct {
	Name    string
	Handler CmdHandler
	// Write marks commands that mutate the registry. Only these are
	// subject to the write qps limit.
	Write bool
}

var commands = make(map[string]*Cmd, 16)

func AddCommand(cmds map[string]*Cmd) {
	for name, cmd := range cmds {
		if _, ok := commands[name]; ok {
			panic(fmt.Sprintf("command %s registered twice", name))
		}
		cmd.Name = name
		commands[name] = cmd
	}
}

func lookupCommand(name string) (*Cmd, bool) {
	cmd, ok := commands[name]
	return cmd, ok
}
