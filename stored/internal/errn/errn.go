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

package errn

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrProtocol               = errors.New("invalid request")
	ErrClientQuit             = errors.New("remote client quit")
	ErrWriteQpsLimit          = errors.New("ERR write qps too high")
	ErrInvalidBulkLength      = errors.New("ERR invalid bulk length")
	ErrInvalidMultiBulkLength = errors.New("ERR invalid multibulk length")
)

func CmdEmptyErr(cmd string) error {
	return fmt.Errorf("ERR empty command for '%s' command", cmd)
}

func CmdParamsErr(cmd string) error {
	return fmt.Errorf("ERR wrong number of arguments for '%s' command", cmd)
}

func CmdUnknownErr(cmd string) error {
	return fmt.Errorf("ERR unknown command '%s'", cmd)
}

// RegistryErr renders err, which wraps kind, as "ERR <kind>: <context>".
func RegistryErr(kind error, err error) error {
	detail := strings.TrimSuffix(err.Error(), ": "+kind.Error())
	if detail == kind.Error() {
		return fmt.Errorf("ERR %s", kind)
	}
	return fmt.Errorf("ERR %s: %s", kind, detail)
}
