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

package log

import (
	"bytes"
	"fmt"
	"os"
)

var log = &Logger{}

func IsDebug() bool {
	return log.debug
}

func CloseLog() {
	log.CloseSync()
}

// SlowLog records a command that took longer than the configured slow time.
// The query is cut to 256 bytes.
func SlowLog(remoteAddr string, cost int64, request [][]byte, err error) {
	buffer := bytes.Buffer{}
	for i, arg := range request {
		buffer.Write(arg)
		if i != len(request)-1 {
			buffer.WriteByte(' ')
		}
		if buffer.Len() >= 256 {
			break
		}
	}

	query := buffer.Bytes()
	if len(query) > 256 {
		query = query[:256]
	}

	status := "OK"
	if err != nil {
		status = "FAIL"
	}

	log.outputf(TypeSlow, slowFormat, remoteAddr, cost, query, status)
}

func Info(arg ...interface{}) {
	log.output(TypeInfo, arg...)
}

func Warn(arg ...interface{}) {
	log.output(TypeWarn, arg...)
}

func Error(arg ...interface{}) {
	log.output(TypeError, arg...)
}

func Fatal(arg ...interface{}) {
	log.output(TypeFatal, arg...)
	log.CloseSync()
	os.Exit(1)
}

func Debug(arg ...interface{}) {
	log.output(TypeDebug, arg...)
}

func Infof(format string, arg ...interface{}) {
	log.outputf(TypeInfo, format, arg...)
}

func Warnf(format string, arg ...interface{}) {
	log.outputf(TypeWarn, format, arg...)
}

func Errorf(format string, arg ...interface{}) {
	log.outputf(TypeError, format, arg...)
}

func Fatalf(format string, arg ...interface{}) {
	log.outputf(TypeFatal, format, arg...)
	log.CloseSync()
	os.Exit(1)
}

func Debugf(format string, arg ...interface{}) {
	log.outputf(TypeDebug, format, arg...)
}

func Cost(arg ...interface{}) func() {
	begin := now()
	return func() {
		log.output(TypeInfo, fmt.Sprint(arg...), costString(begin))
	}
}
