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

package config

import (
	"os"
	"path"
	"time"

	"github.com/zuoyebang/bitalosfwd/butils/timesize"
	"github.com/zuoyebang/bitalosfwd/stored/internal/log"

	"github.com/cockroachdb/errors"
)

func (c *Config) Validate() error {
	if err := c.checkServerConfig(); err != nil {
		return err
	}
	if err := c.checkLogConfig(); err != nil {
		return err
	}
	if err := c.checkRegistryConfig(); err != nil {
		return err
	}
	return c.checkPluginConfig()
}

func (c *Config) checkServerConfig() error {
	if c.Server.Address == "" {
		return errors.New("invalid server address")
	}

	if c.Server.DataPath == "" {
		return errors.New("invalid server data_path")
	} else if !path.IsAbs(c.Server.DataPath) {
		baseDir, _ := os.Getwd()
		c.Server.DataPath = path.Join(baseDir, c.Server.DataPath)
	}

	if c.Server.Keepalive <= 0 {
		c.Server.Keepalive = timesize.Duration(3600 * time.Second)
	}
	if c.Server.SlowTime <= 0 {
		c.Server.SlowTime = timesize.Duration(20 * time.Millisecond)
	}
	if c.Server.Maxclient <= 0 {
		c.Server.Maxclient = 5000
	}
	if c.Server.Maxprocs < 1 {
		c.Server.Maxprocs = 1
	}
	if c.Server.MaxWriteQPS < 0 {
		return errors.Newf("invalid server max_write_qps %d", c.Server.MaxWriteQPS)
	}

	return nil
}

func (c *Config) checkLogConfig() error {
	if !log.CheckRotation(c.Log.RotationTime) {
		c.Log.RotationTime = log.DailyRotate
	}
	return nil
}

func (c *Config) checkRegistryConfig() error {
	if c.Registry.MaxNodes < 0 {
		return errors.Newf("invalid registry max_nodes %d", c.Registry.MaxNodes)
	}
	return nil
}

func (c *Config) checkPluginConfig() error {
	if c.Plugin.OpenPprof && c.Plugin.PprofAddr == "" {
		return errors.New("pprof plugin needs pprof_addr")
	}
	if c.Plugin.OpenGoPs && c.Plugin.GoPsAddr == "" {
		return errors.New("gops plugin needs gops_addr")
	}
	return nil
}
