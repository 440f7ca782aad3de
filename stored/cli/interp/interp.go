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

package interp

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

var ErrSyntax = errors.New("syntax error")

const (
	cmdAdd        = "ADD"
	cmdDel        = "DEL"
	cmdGet        = "GET"
	cmdReverse    = "REVERSE"
	cmdGetReverse = "GETREVERSE"
	cmdCount      = "COUNT"
	cmdReset      = "RESET"
)

var arity = map[string]int{
	cmdAdd:        2,
	cmdDel:        1,
	cmdGet:        1,
	cmdReverse:    1,
	cmdGetReverse: 1,
	cmdCount:      0,
	cmdReset:      0,
}

// Interpreter executes a script of registry commands, one per line, and
// prints query results to out.
type Interpreter struct {
	exec Executor
	out  io.Writer
}

func New(exec Executor, out io.Writer) *Interpreter {
	return &Interpreter{exec: exec, out: out}
}

// Run executes every line of r and stops at the first failing one. The
// returned error names its line number.
func (it *Interpreter) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	lineno := 0
	for sc.Scan() {
		lineno++
		if err := it.Exec(sc.Text()); err != nil {
			return errors.Wrapf(err, "line %d", lineno)
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrapf(err, "line %d", lineno+1)
	}
	return nil
}

// Exec executes one line. Blank lines and lines whose first non-blank
// character is '#' do nothing.
func (it *Interpreter) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	cmd := strings.ToUpper(fields[0])
	args := fields[1:]
	n, ok := arity[cmd]
	if !ok {
		return errors.Wrapf(ErrSyntax, "unknown command %q", fields[0])
	}
	if len(args) != n {
		return errors.Wrapf(ErrSyntax, "%s takes %d arguments, got %d", cmd, n, len(args))
	}

	switch cmd {
	case cmdAdd:
		return it.exec.Add(args[0], args[1])
	case cmdDel:
		return it.exec.Remove(args[0])
	case cmdReset:
		return it.exec.Reset()
	case cmdGet:
		num, err := it.exec.Get(args[0])
		if err != nil {
			return err
		}
		return it.println(num)
	case cmdReverse:
		nums, err := it.exec.Reverse(args[0])
		if err != nil {
			return err
		}
		return it.println(nums...)
	case cmdGetReverse:
		nums, err := it.exec.GetReverse(args[0])
		if err != nil {
			return err
		}
		return it.println(nums...)
	case cmdCount:
		count, err := it.exec.Count()
		if err != nil {
			return err
		}
		return it.println(fmt.Sprint(count))
	}
	return nil
}

func (it *Interpreter) println(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(it.out, line); err != nil {
			return err
		}
	}
	return nil
}
