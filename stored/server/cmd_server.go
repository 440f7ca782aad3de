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
	"bytes"
	"strings"

	"github.com/zuoyebang/bitalosfwd/butils/unsafe2"
	"github.com/zuoyebang/bitalosfwd/stored/internal/dostats"
	"github.com/zuoyebang/bitalosfwd/stored/internal/errn"
	"github.com/zuoyebang/bitalosfwd/stored/internal/resp"
)

func init() {
	AddCommand(map[string]*Cmd{
		resp.PING:    {Handler: pingCommand},
		resp.ECHO:    {Handler: echoCommand},
		resp.INFO:    {Handler: infoCommand},
		resp.METRICS: {Handler: metricsCommand},
	})
}

func pingCommand(c *Client) error {
	if len(c.Args) > 1 {
		return errn.CmdParamsErr(resp.PING)
	}
	if len(c.Args) == 1 {
		c.RespWriter.WriteBulk(c.Args[0])
		return nil
	}
	c.RespWriter.WriteStatus(resp.ReplyPONG)
	return nil
}

func echoCommand(c *Client) error {
	if len(c.Args) != 1 {
		return errn.CmdParamsErr(resp.ECHO)
	}

	c.RespWriter.WriteBulk(c.Args[0])
	return nil
}

func infoCommand(c *Client) error {
	sections := make([]string, 0, len(c.Args))
	for _, arg := range c.Args {
		sections = append(sections, strings.ToLower(unsafe2.String(arg)))
	}
	info, err := c.server.MarshalInfo(sections...)
	if err != nil {
		return err
	}
	c.RespWriter.WriteBulk(info)
	return nil
}

func metricsCommand(c *Client) error {
	if len(c.Args) != 0 {
		return errn.CmdParamsErr(resp.METRICS)
	}
	var buf bytes.Buffer
	dostats.WritePrometheus(&buf)
	c.RespWriter.WriteBulk(buf.Bytes())
	return nil
}
