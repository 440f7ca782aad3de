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
	"net"
	"testing"
	"time"

	"github.com/zuoyebang/bitalosfwd/stored/internal/config"
	"github.com/zuoyebang/bitalosfwd/stored/server"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) string {
	saved := *config.GlobalConfig
	config.GlobalConfig.Server.Address = "127.0.0.1:0"
	s, err := server.NewServer()
	*config.GlobalConfig = saved
	require.NoError(t, err)
	require.NoError(t, s.Listen())
	go s.Run()
	t.Cleanup(s.Close)
	return s.Addr().String()
}

func TestRemoteScript(t *testing.T) {
	exec := NewRemote(startServer(t), nil)
	defer exec.Close()

	out, err := runScript(t, exec, script)
	require.NoError(t, err)
	require.Equal(t, scriptOutput, out)
}

func TestRemoteReplyErrors(t *testing.T) {
	exec := NewRemote(startServer(t), &RemoteOptions{
		DialTimeout:        time.Second,
		BreakerMinRequests: 2,
		BreakerFailRate:    0.1,
		BreakerTimeout:     time.Minute,
	})
	defer exec.Close()

	for i := 0; i < 10; i++ {
		err := exec.Add("1", "1")
		require.Error(t, err)
		require.Contains(t, err.Error(), "ERR invalid phone number")
	}
	require.Equal(t, gobreaker.StateClosed, exec.State())

	_, err := runScript(t, exec, "ADD 5 6\nGET 1z\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 2")

	count, err := exec.Count()
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestRemoteBreakerOpens(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	exec := NewRemote(addr, &RemoteOptions{
		DialTimeout:        200 * time.Millisecond,
		BreakerMinRequests: 3,
		BreakerFailRate:    0.5,
		BreakerTimeout:     time.Minute,
	})
	defer exec.Close()

	for i := 0; i < 4; i++ {
		_, err = exec.Get("1")
		require.Error(t, err)
	}
	require.Equal(t, gobreaker.StateOpen, exec.State())

	_, err = exec.Get("1")
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
}
