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

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/zuoyebang/bitalosfwd/stored/cli/interp"
	"github.com/zuoyebang/bitalosfwd/stored/engine/phfwd"
	"github.com/zuoyebang/bitalosfwd/stored/internal/log"
	"github.com/zuoyebang/bitalosfwd/stored/internal/utils"

	"github.com/cockroachdb/errors"
	"github.com/docopt/docopt-go"
)

func main() {
	const usage = `
Usage:
	bitalosfwd-cli [--addr=ADDR] [--max-nodes=N] [--log=FILE] [FILE]
	bitalosfwd-cli --version

Options:
	-a ADDR, --addr=ADDR    run the script against a bitalosfwd server instead of an in-process registry.
	--max-nodes=N           node limit of the in-process registry, 0 means no limit [default: 0].
	-l FILE, --log=FILE     write logs to FILE, rotated daily.
`

	d, err := docopt.ParseArgs(usage, nil, "")
	if err != nil {
		fatalf("parse arguments failed: %v", err)
	}

	if v, _ := d["--version"].(bool); v {
		fmt.Println("version:", utils.Version)
		fmt.Println("compile:", utils.Compile)
		return
	}

	if s, ok := d["--log"].(string); ok && s != "" {
		log.NewLogger(&log.Options{LogPath: s, RotationTime: log.DailyRotate})
	}

	if err = run(d); err != nil {
		log.Errorf("run script failed: %v", err)
		log.CloseLog()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.CloseLog()
}

func run(d docopt.Opts) error {
	var exec interp.Executor
	if addr, ok := d["--addr"].(string); ok && addr != "" {
		exec = interp.NewRemote(addr, nil)
	} else {
		maxNodes := 0
		if s, ok := d["--max-nodes"].(string); ok {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				return errors.Newf("option --max-nodes = %s", s)
			}
			maxNodes = n
		}
		local, err := interp.NewLocal(&phfwd.Options{MaxNodes: maxNodes})
		if err != nil {
			return errors.Wrap(err, "create registry failed")
		}
		exec = local
	}
	defer exec.Close()

	var in io.Reader = os.Stdin
	if file, ok := d["FILE"].(string); ok && file != "" {
		f, err := os.Open(file)
		if err != nil {
			return errors.Wrap(err, "open script failed")
		}
		defer f.Close()
		in = f
	}

	return interp.New(exec, os.Stdout).Run(in)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
