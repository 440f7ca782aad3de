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
	"testing"
	"time"

	"github.com/zuoyebang/bitalosfwd/stored/internal/config"
	"github.com/zuoyebang/bitalosfwd/stored/server"

	"github.com/gomodule/redigo/redis"
	"github.com/stretchr/testify/require"
)

func TestGoPsPlugin(t *testing.T) {
	config.GlobalConfig.Server.Address = "127.0.0.1:0"
	config.GlobalConfig.Plugin.OpenGoPs = true
	config.GlobalConfig.Plugin.GoPsAddr = "127.0.0.1:0"
	Init()

	s, err := server.NewServer()
	require.NoError(t, err)
	require.NoError(t, s.Listen())
	go s.Run()

	require.Eventually(t, func() bool {
		return s.Status() == server.StatusRunning
	}, 5*time.Second, 10*time.Millisecond)

	c, err := redis.Dial("tcp", s.Addr().String())
	require.NoError(t, err)
	v, err := redis.String(c.Do("ping"))
	require.NoError(t, err)
	require.Equal(t, "PONG", v)
	c.Close()

	s.Close()
	require.True(t, s.GetIsClosed())
	require.Equal(t, int32(server.StatusExited), s.Status())
}
