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
	"fmt"
	"os"
	"path"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/zuoyebang/bitalosfwd/butils"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	TypeInfo  = "INFO"
	TypeWarn  = "WARN"
	TypeError = "ERROR"
	TypeFatal = "FATAL"
	TypeDebug = "DEBUG"
	TypeSlow  = "SLOW"
)

const (
	headerFormat = "%s.%06d %s [%s] "
	slowFormat   = "[remote:%s] [duration(us):%d] [query:%q] [status:%s]"
)

type Logger struct {
	debug      bool
	outLogger  *zap.Logger
	errLogger  *zap.Logger
	slowLogger *zap.Logger
}

func (l *Logger) CloseSync() {
	for _, zl := range []*zap.Logger{l.outLogger, l.errLogger, l.slowLogger} {
		if zl != nil {
			_ = zl.Sync()
		}
	}
}

func (l *Logger) formatHeader(level string) string {
	nowTime := time.Now()
	return fmt.Sprintf(headerFormat,
		nowTime.Format(time.DateTime), int64(nowTime.Nanosecond()/1000),
		FileLine(5, 2),
		level)
}

func (l *Logger) getWriteLogger(level string) *zap.Logger {
	switch level {
	case TypeError, TypeFatal:
		return l.errLogger
	case TypeSlow:
		return l.slowLogger
	default:
		return l.outLogger
	}
}

func (l *Logger) output(level string, arg ...interface{}) {
	if level == TypeDebug && !l.debug {
		return
	}
	if output := l.getWriteLogger(level); output != nil {
		output.Info(l.formatHeader(level) + fmt.Sprint(arg...))
	}
}

func (l *Logger) outputf(level string, ft string, arg ...interface{}) {
	if level == TypeDebug && !l.debug {
		return
	}
	if output := l.getWriteLogger(level); output != nil {
		output.Info(l.formatHeader(level) + fmt.Sprintf(ft, arg...))
	}
}

func (l *Logger) Info(arg ...interface{}) {
	l.output(TypeInfo, arg...)
}

func (l *Logger) Warn(arg ...interface{}) {
	l.output(TypeWarn, arg...)
}

func (l *Logger) Error(arg ...interface{}) {
	l.output(TypeError, arg...)
}

func (l *Logger) Debug(arg ...interface{}) {
	l.output(TypeDebug, arg...)
}

func (l *Logger) Infof(ft string, arg ...interface{}) {
	l.outputf(TypeInfo, ft, arg...)
}

func (l *Logger) Warnf(ft string, arg ...interface{}) {
	l.outputf(TypeWarn, ft, arg...)
}

func (l *Logger) Errorf(ft string, arg ...interface{}) {
	l.outputf(TypeError, ft, arg...)
}

func (l *Logger) Debugf(ft string, arg ...interface{}) {
	l.outputf(TypeDebug, ft, arg...)
}

type levelEnable struct{}

func (le levelEnable) Enabled(zapcore.Level) bool {
	return true
}

type Options struct {
	IsDebug      bool
	LogPath      string
	RotationTime string
}

// NewLogger opens LogPath.log, LogPath.log.err and LogPath.log.slow, each
// rotated per RotationTime, and installs the logger as the global one.
func NewLogger(opts *Options) *Logger {
	_ = os.MkdirAll(path.Dir(opts.LogPath), 0777)

	l := &Logger{debug: opts.IsDebug}
	l.outLogger = newZapLogger("out", opts.LogPath+".log", opts.RotationTime)
	l.errLogger = newZapLogger("err", opts.LogPath+".log.err", opts.RotationTime)
	l.slowLogger = newZapLogger("slow", opts.LogPath+".log.slow", opts.RotationTime)
	log = l
	return l
}

func GetLogger() *Logger {
	return log
}

func newZapLogger(key, logPath, rotation string) *zap.Logger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{MessageKey: key})
	return zap.New(zapcore.NewCore(encoder, getWriter(logPath, rotation), levelEnable{}))
}

func getWriter(logPath, rotation string) zapcore.WriteSyncer {
	_ = os.Remove(logPath)
	if rl := getRotateLogs(logPath, rotation); rl != nil {
		return zapcore.AddSync(rl)
	}
	return zapcore.AddSync(os.Stderr)
}

func now() time.Time {
	return time.Now()
}

func costString(begin time.Time) string {
	return " cost: " + butils.FmtDuration(now().Sub(begin))
}

func FileLine(caller interface{}, length int) string {
	var p uintptr
	switch caller := caller.(type) {
	case nil:
		p, _, _, _ = runtime.Caller(2)
	case int:
		p, _, _, _ = runtime.Caller(caller)
	default:
		p = reflect.ValueOf(caller).Pointer()
	}

	f := runtime.FuncForPC(p)
	if f == nil {
		return "???:0"
	}
	file, line := f.FileLine(p)
	ls := strings.Split(file, "/")
	if len(ls) > length {
		ls = ls[len(ls)-length:]
	}
	return fmt.Sprintf("%s:%d", strings.Join(ls, "/"), line)
}
