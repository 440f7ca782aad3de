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
	"bytes"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/zuoyebang/bitalosfwd/stored/internal/dostats"
	"github.com/zuoyebang/bitalosfwd/stored/internal/errn"

	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	input := "*3\r\n$6\r\nFWDADD\r\n$3\r\n600\r\n$3\r\n112\r\n" +
		"\r\n" +
		"fwdget   6001\r\n" +
		"*0\r\n" +
		"*1\r\n$8\r\nFWDCOUNT\r\n"
	r := NewRespReader(strings.NewReader(input), 64)

	req, err := r.ParseRequest()
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("FWDADD"), []byte("600"), []byte("112")}, req)

	req, err = r.ParseRequest()
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("fwdget"), []byte("6001")}, req)

	req, err = r.ParseRequest()
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("FWDCOUNT")}, req)
}

func TestParseRequestErrors(t *testing.T) {
	for _, input := range []string{
		"*x\r\n",
		"*-1\r\n",
		"*1048577\r\n",
		"*536870912\r\n",
	} {
		_, err := NewRespReader(strings.NewReader(input), 64).ParseRequest()
		require.ErrorIs(t, err, errn.ErrInvalidMultiBulkLength, input)
	}

	_, err := NewRespReader(strings.NewReader("*1\r\n$-1\r\n"), 64).ParseRequest()
	require.ErrorIs(t, err, errn.ErrInvalidBulkLength)

	_, err = NewRespReader(strings.NewReader("*1\r\n:12\r\n"), 64).ParseRequest()
	require.ErrorIs(t, err, errn.ErrProtocol)

	_, err = NewRespReader(strings.NewReader("*1\n"), 64).ParseRequest()
	require.ErrorIs(t, err, errn.ErrProtocol)

	_, err = NewRespReader(strings.NewReader("*1\r\n$3\r\nabcd\r\n"), 64).ParseRequest()
	require.ErrorIs(t, err, errn.ErrProtocol)
}

func TestRespWriter(t *testing.T) {
	w := NewRespWriter(64)
	w.WriteStatus(ReplyOK)
	w.WriteError(errors.New("ERR registry is full"))
	w.WriteInteger(-3)
	w.WriteBulk(nil)
	w.WriteBulkString("112")
	w.WriteStringArray([]string{"0", "1*"})
	w.WriteStringArray(nil)
	require.Equal(t, "+OK\r\n-ERR registry is full\r\n:-3\r\n$-1\r\n$3\r\n112\r\n*2\r\n$1\r\n0\r\n$2\r\n1*\r\n*0\r\n", string(w.Bytes()))

	var out bytes.Buffer
	n, err := w.FlushToWriterIO(&out)
	require.NoError(t, err)
	require.Equal(t, out.Len(), n)
	require.Len(t, w.Bytes(), 0)
}

func TestSession(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()

	alive := dostats.ConnsAlive()
	s := NewSession(server, time.Second)
	require.Equal(t, alive+1, dostats.ConnsAlive())
	require.Equal(t, "pipe", s.RemoteAddr())
	s.SetReadDeadline()

	s.Close()
	s.Close()
	require.Equal(t, alive, dostats.ConnsAlive())
}

func TestLowerSlice(t *testing.T) {
	require.Equal(t, "fwdgetreverse", string(LowerSlice([]byte("FwdGetREVERSE"))))
}
