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
	"time"

	"github.com/zuoyebang/bitalosfwd/stored/internal/log"
	"github.com/zuoyebang/bitalosfwd/stored/internal/resp"

	"github.com/cockroachdb/errors"
	"github.com/gomodule/redigo/redis"
	"github.com/sony/gobreaker"
)

type RemoteOptions struct {
	DialTimeout time.Duration
	// the breaker opens once more than BreakerMinRequests calls were made
	// in one interval and the failure rate exceeds BreakerFailRate
	BreakerMinRequests uint32
	BreakerFailRate    float64
	BreakerTimeout     time.Duration
}

func DefaultRemoteOptions() *RemoteOptions {
	return &RemoteOptions{
		DialTimeout:        time.Second,
		BreakerMinRequests: 10,
		BreakerFailRate:    0.5,
		BreakerTimeout:     5 * time.Second,
	}
}

// Remote runs commands against a server over RESP. Transport failures are
// counted by a circuit breaker; error replies from the server are not.
type Remote struct {
	addr string
	pool *redis.Pool
	cb   *gobreaker.CircuitBreaker
}

func NewRemote(addr string, opts *RemoteOptions) *Remote {
	if opts == nil {
		opts = DefaultRemoteOptions()
	}
	r := &Remote{addr: addr}
	r.pool = &redis.Pool{
		MaxIdle:     1,
		IdleTimeout: 60 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", addr, redis.DialConnectTimeout(opts.DialTimeout))
		},
	}
	r.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        addr,
		Timeout:     opts.BreakerTimeout,
		MaxRequests: 1,
		Interval:    time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests <= opts.BreakerMinRequests {
				return false
			}
			failureRate := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRate > opts.BreakerFailRate
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Infof("name:%s gobreaker State from %v to %v", name, from.String(), to.String())
		},
	})
	return r
}

func (r *Remote) do(cmd string, args ...interface{}) (interface{}, error) {
	v, err := r.cb.Execute(func() (interface{}, error) {
		c := r.pool.Get()
		defer c.Close()
		reply, err := c.Do(cmd, args...)
		if rerr, ok := err.(redis.Error); ok {
			return rerr, nil
		}
		return reply, err
	})
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", cmd, r.addr)
	}
	if rerr, ok := v.(redis.Error); ok {
		return nil, rerr
	}
	return v, nil
}

func (r *Remote) State() gobreaker.State {
	return r.cb.State()
}

func (r *Remote) Add(num1, num2 string) error {
	_, err := redis.String(r.do(resp.FWDADD, num1, num2))
	return err
}

func (r *Remote) Remove(num string) error {
	_, err := redis.String(r.do(resp.FWDDEL, num))
	return err
}

func (r *Remote) Get(num string) (string, error) {
	return redis.String(r.do(resp.FWDGET, num))
}

func (r *Remote) Reverse(num string) ([]string, error) {
	return redis.Strings(r.do(resp.FWDREVERSE, num))
}

func (r *Remote) GetReverse(num string) ([]string, error) {
	return redis.Strings(r.do(resp.FWDGETREVERSE, num))
}

func (r *Remote) Count() (int, error) {
	return redis.Int(r.do(resp.FWDCOUNT))
}

func (r *Remote) Reset() error {
	_, err := redis.String(r.do(resp.FWDRESET))
	return err
}

func (r *Remote) Close() error {
	return r.pool.Close()
}
