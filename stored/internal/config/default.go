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

const DefaultConfig = `
[server]
product_name = "bitalosfwd"
address = ":8379"
max_client = 5000
keep_alive = "3600s"
max_procs = 8
data_path = "bitalosfwd"
slow_time = "20ms"
max_write_qps = 0

[registry]
max_nodes = 0

[plugin]
open_panic = true
open_pprof = false
pprof_addr = ":26770"
open_gops = false
gops_addr = ":26771"

[log]
is_debug = false
rotation_time = "Daily"
`
