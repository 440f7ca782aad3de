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
	"net"
	"os"
	"sync"
	"time"

	"github.com/zuoyebang/bitalosfwd/stored/engine/phfwd"
	"github.com/zuoyebang/bitalosfwd/stored/internal/config"
	"github.com/zuoyebang/bitalosfwd/stored/internal/log"
	"github.com/zuoyebang/bitalosfwd/stored/internal/utils"

	"github.com/cockroachdb/errors"
	"github.com/juju/ratelimit"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/atomic"
	"golang.org/x/net/netutil"
)

const (
	StatusPrepare = iota
	StatusStart
	StatusRunning
	StatusClose
	StatusExited
)

type Server struct {
	closed   atomic.Bool
	status   atomic.Int32
	quit     chan struct{}
	isDebug  bool
	address  string
	listener net.Listener
	connWait sync.WaitGroup
	rcm      sync.RWMutex
	rcs      map[*Client]struct{}
	pool     *ants.PoolWithFunc

	keepalive    time.Duration
	slowTime     time.Duration
	writeLimiter *ratelimit.Bucket

	mu       sync.RWMutex
	registry *phfwd.PhoneForward

	Info *SInfo
}

func (s *Server) addRespClient(c *Client) {
	s.rcm.Lock()
	s.rcs[c] = struct{}{}
	s.rcm.Unlock()
}

func (s *Server) delRespClient(c *Client) {
	s.rcm.Lock()
	delete(s.rcs, c)
	s.rcm.Unlock()
}

func (s *Server) closeAllRespClients() {
	s.rcm.Lock()
	for c := range s.rcs {
		c.Close()
	}
	s.rcm.Unlock()
}

// Listen binds the server address. Run calls it when the caller did not.
func (s *Server) Listen() error {
	if s.listener != nil {
		return nil
	}
	l, err := net.Listen("tcp", s.address)
	if err != nil {
		return errors.Wrapf(err, "listen %s", s.address)
	}
	maxClientNum := int(config.GlobalConfig.Server.Maxclient)
	s.listener = netutil.LimitListener(l, maxClientNum)
	s.Info.Server.ServerAddress = l.Addr().String()
	log.Infof("listen:%s maxClientNum:%d", s.Info.Server.ServerAddress, maxClientNum)
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Server) Status() int32 {
	return s.status.Load()
}

func (s *Server) Run() {
	if s.closed.Load() {
		return
	}
	if err := s.Listen(); err != nil {
		log.Errorf("net listen fail err:%s", err.Error())
		return
	}

	s.Info.Server.StartTime = utils.GetCurrentTimeString()
	s.status.Store(StatusStart)
	runPluginStart(s)
	s.status.Store(StatusRunning)

	defer func() {
		s.status.CAS(StatusRunning, StatusClose)
	}()

	for {
		c, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.quit:
				log.Info("bitalosfwd server receive quit signal")
				return
			default:
			}
			log.Errorf("accept err:%s", err.Error())
			continue
		}

		s.serveConn(c)
	}
}

func (s *Server) serveConn(c net.Conn) {
	client := NewClientRESP(c, s)
	if err := s.pool.Invoke(client); err != nil {
		log.Warnf("ants pool invoke failed remote:%s running:%d err:%s", client.RemoteAddr(), s.pool.Running(), err.Error())
		client.Close()
		s.delRespClient(client)
		s.connWait.Done()
	}
}

func (s *Server) Close() {
	if !s.closed.CAS(false, true) {
		return
	}

	close(s.quit)
	if s.listener != nil {
		_ = s.listener.Close()
	}
	s.closeAllRespClients()
	s.connWait.Wait()
	s.pool.Release()
	runPluginStop(s, recover())

	s.status.Store(StatusExited)
}

func (s *Server) GetIsClosed() bool {
	return s.closed.Load()
}

func NewServer() (*Server, error) {
	serverConf := config.GlobalConfig.Server
	s := &Server{
		address:   serverConf.Address,
		isDebug:   config.GlobalConfig.Log.IsDebug,
		quit:      make(chan struct{}),
		rcs:       make(map[*Client]struct{}, 128),
		keepalive: serverConf.Keepalive.Duration(),
		slowTime:  serverConf.SlowTime.Duration(),
		Info:      NewSinfo(),
	}
	s.status.Store(StatusPrepare)

	if serverConf.MaxWriteQPS > 0 {
		s.writeLimiter = ratelimit.NewBucketWithRate(float64(serverConf.MaxWriteQPS), serverConf.MaxWriteQPS)
	}

	registry, err := phfwd.New(&phfwd.Options{MaxNodes: config.GlobalConfig.Registry.MaxNodes})
	if err != nil {
		return nil, errors.Wrap(err, "new registry err")
	}
	s.registry = registry
	s.publishRegistrySize()

	pool, err := ants.NewPoolWithFunc(
		int(serverConf.Maxclient),
		func(i interface{}) {
			i.(*Client).run()
		},
		ants.WithExpiryDuration(60*time.Second))
	if err != nil {
		return nil, errors.Wrap(err, "new client pool err")
	}
	s.pool = pool

	s.Info.Server.ProductName = serverConf.ProductName
	s.Info.Server.ConfigFile = serverConf.ConfigFile
	s.Info.Server.MaxClient = serverConf.Maxclient
	s.Info.Server.MaxProcs = serverConf.Maxprocs
	s.Info.Server.MaxNodes = config.GlobalConfig.Registry.MaxNodes
	s.Info.Server.ProcessId = os.Getpid()
	s.Info.Server.GitVersion = utils.Version
	s.Info.Server.Compile = utils.Compile

	return s, nil
}
