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
	"io"
	"net"
	"time"

	"github.com/zuoyebang/bitalosfwd/butils/unsafe2"
	"github.com/zuoyebang/bitalosfwd/stored/internal/dostats"
	"github.com/zuoyebang/bitalosfwd/stored/internal/errn"
	"github.com/zuoyebang/bitalosfwd/stored/internal/log"
	"github.com/zuoyebang/bitalosfwd/stored/internal/resp"

	"github.com/cockroachdb/errors"
	"go.uber.org/atomic"
)

type Client struct {
	*resp.Session

	QueryStartTime time.Time

	server *Server
	closed atomic.Bool
	conn   net.Conn
}

func NewClientRESP(conn net.Conn, s *Server) *Client {
	c := &Client{
		conn:    conn,
		server:  s,
		Session: resp.NewSession(conn, s.keepalive),
	}
	s.connWait.Add(1)
	s.addRespClient(c)
	return c
}

func (c *Client) Close() {
	if !c.closed.CAS(false, true) {
		return
	}
	c.Session.Close()
}

func (c *Client) run() {
	defer func() {
		c.Close()

		c.server.delRespClient(c)
		c.server.connWait.Done()
		runPluginDisconn(c.server, c, recover())
	}()

	runPluginConnect(c.server, c)

	for {
		c.Session.SetReadDeadline()

		c.Cmd = ""
		c.Args = nil
		reqData, err := c.RespReader.ParseRequest()
		if err != nil {
			if isProtocolErr(err) {
				c.RespWriter.WriteError(protocolReply(err))
				_, _ = c.RespWriter.FlushToWriterIO(c.conn)
			} else if err != io.EOF && !c.closed.Load() {
				log.Debugf("read request remote:%s err:%v", c.RemoteAddr(), err)
			}
			return
		}

		err = c.HandleRequest(reqData)
		if n, ferr := c.RespWriter.FlushToWriterIO(c.conn); ferr != nil {
			log.Errorf("FlushToWriterIO length:%d error:%v", n, ferr)
			return
		}
		if err == errn.ErrClientQuit {
			return
		}
	}
}

func isProtocolErr(err error) bool {
	return errors.Is(err, errn.ErrProtocol) ||
		errors.Is(err, errn.ErrInvalidBulkLength) ||
		errors.Is(err, errn.ErrInvalidMultiBulkLength)
}

func protocolReply(err error) error {
	if errors.Is(err, errn.ErrProtocol) {
		return errors.Newf("ERR Protocol error: %s", err.Error())
	}
	return err
}

func (c *Client) ResetQueryStartTime() {
	c.QueryStartTime = time.Now()
}

func (c *Client) FormatData(reqData [][]byte) {
	c.ResetQueryStartTime()
	c.Data = reqData
	if c.Cmd = ""; len(reqData) == 0 {
		c.Args = reqData[0:0]
	} else {
		c.Cmd = unsafe2.String(resp.LowerSlice(reqData[0]))
		c.Args = reqData[1:]
	}
}

// HandleRequest runs one command and leaves its reply in the session writer.
// Command failures are replied to the client and returned.
func (c *Client) HandleRequest(reqData [][]byte) (err error) {
	c.FormatData(reqData)
	if len(c.Cmd) == 0 {
		err = errn.CmdEmptyErr(c.Cmd)
		c.RespWriter.WriteError(err)
		return err
	}

	if c.server.isDebug {
		log.Debugf("command remote:%s data:%q", c.RemoteAddr(), reqData)
	}

	if c.Cmd == resp.QUIT {
		c.RespWriter.WriteStatus(resp.ReplyOK)
		return errn.ErrClientQuit
	}

	execCmd, ok := lookupCommand(c.Cmd)
	if !ok {
		err = errn.CmdUnknownErr(c.Cmd)
		c.RespWriter.WriteError(err)
		return err
	}

	if execCmd.Write && !c.server.allowWrite() {
		err = errn.ErrWriteQpsLimit
		c.RespWriter.WriteError(err)
		dostats.IncrOpStats(c.Cmd, c.QueryStartTime, err)
		return err
	}

	defer runPluginHandled(c, execCmd, c.Cmd)

	if err = execCmd.Handler(c); err != nil {
		c.RespWriter.WriteError(err)
	}

	dostats.IncrOpStats(c.Cmd, c.QueryStartTime, err)
	if cost := time.Since(c.QueryStartTime); cost >= c.server.slowTime {
		log.SlowLog(c.RemoteAddr(), cost.Microseconds(), reqData, err)
	}
	return err
}
