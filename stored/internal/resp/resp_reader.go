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
	"bufio"
	"bytes"
	"io"

	"github.com/zuoyebang/bitalosfwd/stored/internal/errn"

	"github.com/cockroachdb/errors"
)

const (
	maxBulkLen      = 512 << 20
	maxMultiBulkLen = 1024 * 1024
)

type RespReader struct {
	br *bufio.Reader
}

func NewRespReader(r io.Reader, size int) *RespReader {
	return &RespReader{br: bufio.NewReaderSize(r, size)}
}

// ParseRequest reads one command. Both multibulk requests and inline
// commands separated by blanks are accepted. Empty lines are skipped.
func (resp *RespReader) ParseRequest() ([][]byte, error) {
	for {
		line, err := readLine(resp.br)
		if err != nil {
			return nil, err
		}
		if len(line) == 0 {
			continue
		}
		if line[0] != '*' {
			if args := bytes.Fields(line); len(args) > 0 {
				return copyArgs(args), nil
			}
			continue
		}

		n, err := parseLen(line[1:])
		if err != nil || n < 0 || n > maxMultiBulkLen {
			return nil, errn.ErrInvalidMultiBulkLength
		}
		if n == 0 {
			continue
		}
		r := make([][]byte, n)
		for i := range r {
			r[i], err = parseBulk(resp.br)
			if err != nil {
				return nil, err
			}
		}
		return r, nil
	}
}

func copyArgs(args [][]byte) [][]byte {
	r := make([][]byte, len(args))
	for i, arg := range args {
		r[i] = append([]byte(nil), arg...)
	}
	return r
}

func readLine(br *bufio.Reader) ([]byte, error) {
	p, err := br.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		return nil, errors.Wrap(errn.ErrProtocol, "long resp line")
	}
	if err != nil {
		return nil, err
	}
	i := len(p) - 2
	if i < 0 || p[i] != '\r' {
		return nil, errors.Wrap(errn.ErrProtocol, "bad resp line terminator")
	}
	return p[:i], nil
}

func parseLen(p []byte) (int, error) {
	if len(p) == 0 {
		return -1, errors.Wrap(errn.ErrProtocol, "malformed length")
	}

	if p[0] == '-' && len(p) == 2 && p[1] == '1' {
		return -1, nil
	}

	var n int
	for _, b := range p {
		if b < '0' || b > '9' {
			return -1, errors.Wrap(errn.ErrProtocol, "illegal bytes in length")
		}
		n = n*10 + int(b-'0')
		if n > maxBulkLen {
			return -1, errors.Wrap(errn.ErrProtocol, "length too large")
		}
	}

	return n, nil
}

func parseBulk(br *bufio.Reader) ([]byte, error) {
	line, err := readLine(br)
	if err != nil {
		return nil, err
	} else if len(line) == 0 {
		return nil, errors.Wrap(errn.ErrProtocol, "short resp line")
	}

	if line[0] != '$' {
		return nil, errors.Wrapf(errn.ErrProtocol, "expect bulk string, got %q", line[0])
	}
	n, err := parseLen(line[1:])
	if err != nil || n < 0 {
		return nil, errn.ErrInvalidBulkLength
	}
	p := make([]byte, n)
	if _, err = io.ReadFull(br, p); err != nil {
		return nil, err
	}
	if line, err := readLine(br); err != nil {
		return nil, err
	} else if len(line) != 0 {
		return nil, errors.Wrap(errn.ErrProtocol, "bad bulk string format")
	}
	return p, nil
}
