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

const (
	PING string = "ping"
	PONG string = "pong"
	ECHO string = "echo"
	INFO string = "info"
	QUIT string = "quit"

	METRICS string = "metrics"

	FWDADD        string = "fwdadd"
	FWDDEL        string = "fwddel"
	FWDGET        string = "fwdget"
	FWDREVERSE    string = "fwdreverse"
	FWDGETREVERSE string = "fwdgetreverse"
	FWDCOUNT      string = "fwdcount"
	FWDRESET      string = "fwdreset"
)

// LowerSlice lowercases ASCII letters of buf in place.
func LowerSlice(buf []byte) []byte {
	for i, r := range buf {
		if 'A' <= r && r <= 'Z' {
			buf[i] = r + ('a' - 'A')
		}
	}
	return buf
}
