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

package resp

import (
	"net"
	"time"

	"github.com/zuoyebang/bitalosfwd/stored/internal/dostats"
	"github.com/zuoyebang/bitalosfwd/stored/internal/log"

	"go.uber.org/atomic"
)

type Session struct {
	Cmd        string
	Args       [][]byte
	Data       [][]byte
	ID         int64
	RespWriter *RespWriter
	RespReader *RespReader

	conn       net.Conn
	remoteAddr string
	keepalive  time.Duration
	closed     atomic.Bool
}

var (
	SessionId      = atomic.NewInt64(0)
	ConnBufferSize = 8 << 10
)

func NewSession(conn net.Conn, keepalive time.Duration) *Session {
	s := &Session{
		conn:       conn,
		keepalive:  keepalive,
		remoteAddr: conn.RemoteAddr().String(),
		RespReader: NewRespReader(conn, ConnBufferSize),
		RespWriter: NewRespWriter(ConnBufferSize),
		ID:         SessionId.Inc(),
	}
	dostats.IncrConns()
	return s
}

func (s *Session) RemoteAddr() string {
	return s.remoteAddr
}

func (s *Session) Conn() net.Conn {
	return s.conn
}

func (s *Session) SetReadDeadline() {
	if s.keepalive > 0 {
		_ = s.conn.SetReadDeadline(time.Now().Add(s.keepalive))
	}
}

func (s *Session) Close() {
	if !s.closed.CAS(false, true) {
		return
	}

	dostats.DecrConns()
	if err := s.conn.Close(); err != nil {
		log.Errorf("conn close err:%v", err)
	}
}
