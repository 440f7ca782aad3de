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
	"io"
	"strconv"

	"github.com/zuoyebang/bitalosfwd/butils/unsafe2"
)

var (
	respArray byte = '*'
	respInt   byte = ':'
	respErr   byte = '-'
	respMutil byte = '$'
	respSinge byte = '+'

	Delims   = []byte("\r\n")
	NullBulk = []byte("-1")

	ReplyOK   = "OK"
	ReplyPONG = "PONG"
)

type RespWriter struct {
	buff *bytes.Buffer
}

func NewRespWriter(size int) *RespWriter {
	return &RespWriter{
		buff: bytes.NewBuffer(make([]byte, 0, size)),
	}
}

func (w *RespWriter) WriteError(err error) {
	w.buff.WriteByte(respErr)
	if err != nil {
		w.buff.Write(unsafe2.ByteSlice(err.Error()))
	}
	w.buff.Write(Delims)
}

func (w *RespWriter) WriteStatus(status string) {
	w.buff.WriteByte(respSinge)
	w.buff.Write(unsafe2.ByteSlice(status))
	w.buff.Write(Delims)
}

func (w *RespWriter) WriteInteger(n int64) {
	w.buff.WriteByte(respInt)
	w.buff.Write(strconv.AppendInt(nil, n, 10))
	w.buff.Write(Delims)
}

func (w *RespWriter) WriteLen(n int) {
	w.buff.WriteByte(respArray)
	w.buff.Write(unsafe2.ByteSlice(strconv.Itoa(n)))
	w.buff.Write(Delims)
}

func (w *RespWriter) WriteBulk(b []byte) {
	w.buff.WriteByte(respMutil)
	if b == nil {
		w.buff.Write(NullBulk)
	} else {
		w.buff.Write(unsafe2.ByteSlice(strconv.Itoa(len(b))))
		w.buff.Write(Delims)
		w.buff.Write(b)
	}
	w.buff.Write(Delims)
}

func (w *RespWriter) WriteBulkString(s string) {
	w.WriteBulk(unsafe2.ByteSlice(s))
}

// WriteStringArray writes lst as an array of bulk strings. A nil or empty
// lst is written as an empty array.
func (w *RespWriter) WriteStringArray(lst []string) {
	w.WriteLen(len(lst))
	for i := range lst {
		w.WriteBulkString(lst[i])
	}
}

func (w *RespWriter) Bytes() []byte {
	return w.buff.Bytes()
}

func (w *RespWriter) Reset() {
	w.buff.Reset()
}

func (w *RespWriter) FlushToWriterIO(writer io.Writer) (int, error) {
	defer w.buff.Reset()
	return writer.Write(w.buff.Bytes())
}
