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
	"bytes"

	"github.com/zuoyebang/bitalosfwd/butils/timesize"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Log      LogConfig      `toml:"log"`
	Plugin   PluginConfig   `toml:"plugin"`
	Server   ServerConfig   `toml:"server"`
	Registry RegistryConfig `toml:"registry"`
}

var GlobalConfig = NewDefaultConfig()

func NewDefaultConfig() *Config {
	c := &Config{}
	if _, err := toml.Decode(DefaultConfig, c); err != nil {
		panic("decode default config failed: " + err.Error())
	}
	return c
}

// LoadFromFile decodes configFile over the defaults already held by c.
// A non-empty serverAddr wins over the file.
func (c *Config) LoadFromFile(configFile string, serverAddr string) error {
	if configFile != "" {
		if _, err := toml.DecodeFile(configFile, c); err != nil {
			return err
		}
		c.Server.ConfigFile = configFile
	}

	if serverAddr != "" {
		c.Server.Address = serverAddr
	}

	return c.Validate()
}

func (c *Config) String() string {
	var b bytes.Buffer
	e := toml.NewEncoder(&b)
	e.Indent = "    "
	_ = e.Encode(c)
	return b.String()
}

type LogConfig struct {
	IsDebug      bool   `toml:"is_debug"`
	RotationTime string `toml:"rotation_time"`
}

type ServerConfig struct {
	ProductName string            `toml:"product_name"`
	Address     string            `toml:"address"`
	Maxclient   int64             `toml:"max_client"`
	Keepalive   timesize.Duration `toml:"keep_alive"`
	Maxprocs    int               `toml:"max_procs"`
	ConfigFile  string            `toml:"config_file"`
	DataPath    string            `toml:"data_path"`
	SlowTime    timesize.Duration `toml:"slow_time"`
	MaxWriteQPS int64             `toml:"max_write_qps"`
}

type RegistryConfig struct {
	MaxNodes int `toml:"max_nodes"`
}

type PluginConfig struct {
	OpenPanic bool   `toml:"open_panic"`
	OpenPprof bool   `toml:"open_pprof"`
	PprofAddr string `toml:"pprof_addr"`
	OpenGoPs  bool   `toml:"open_gops"`
	GoPsAddr  string `toml:"gops_addr"`
}
