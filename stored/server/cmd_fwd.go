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
	"github.com/zuoyebang/bitalosfwd/stored/internal/errn"
	"github.com/zuoyebang/bitalosfwd/stored/internal/resp"
)

func init() {
	AddCommand(map[string]*Cmd{
		resp.FWDADD:        {Handler: fwdAddCommand, Write: true},
		resp.FWDDEL:        {Handler: fwdDelCommand, Write: true},
		resp.FWDRESET:      {Handler: fwdResetCommand, Write: true},
		resp.FWDGET:        {Handler: fwdGetCommand},
		resp.FWDREVERSE:    {Handler: fwdReverseCommand},
		resp.FWDGETREVERSE: {Handler: fwdGetReverseCommand},
		resp.FWDCOUNT:      {Handler: fwdCountCommand},
	})
}

func fwdAddCommand(c *Client) error {
	if len(c.Args) != 2 {
		return errn.CmdParamsErr(resp.FWDADD)
	}
	if err := c.server.Add(string(c.Args[0]), string(c.Args[1])); err != nil {
		return registryErr(err)
	}
	c.RespWriter.WriteStatus(resp.ReplyOK)
	return nil
}

func fwdDelCommand(c *Client) error {
	if len(c.Args) != 1 {
		return errn.CmdParamsErr(resp.FWDDEL)
	}
	if err := c.server.Remove(string(c.Args[0])); err != nil {
		return registryErr(err)
	}
	c.RespWriter.WriteStatus(resp.ReplyOK)
	return nil
}

func fwdResetCommand(c *Client) error {
	if len(c.Args) != 0 {
		return errn.CmdParamsErr(resp.FWDRESET)
	}
	c.server.Reset()
	c.RespWriter.WriteStatus(resp.ReplyOK)
	return nil
}

func fwdGetCommand(c *Client) error {
	if len(c.Args) != 1 {
		return errn.CmdParamsErr(resp.FWDGET)
	}
	res, err := c.server.Get(string(c.Args[0]))
	if err != nil {
		return registryErr(err)
	}
	num, _ := res.Get(0)
	c.RespWriter.WriteBulkString(num)
	return nil
}

func fwdReverseCommand(c *Client) error {
	if len(c.Args) != 1 {
		return errn.CmdParamsErr(resp.FWDREVERSE)
	}
	res, err := c.server.Reverse(string(c.Args[0]))
	if err != nil {
		return registryErr(err)
	}
	c.RespWriter.WriteStringArray(res.All())
	return nil
}

func fwdGetReverseCommand(c *Client) error {
	if len(c.Args) != 1 {
		return errn.CmdParamsErr(resp.FWDGETREVERSE)
	}
	res, err := c.server.GetReverse(string(c.Args[0]))
	if err != nil {
		return registryErr(err)
	}
	c.RespWriter.WriteStringArray(res.All())
	return nil
}

func fwdCountCommand(c *Client) error {
	if len(c.Args) != 0 {
		return errn.CmdParamsErr(resp.FWDCOUNT)
	}
	rules, _ := c.server.Size()
	c.RespWriter.WriteInteger(int64(rules))
	return nil
}
