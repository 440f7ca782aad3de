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
	"github.com/zuoyebang/bitalosfwd/stored/engine/phfwd"
)

// Executor runs registry operations for the interpreter.
type Executor interface {
	Add(num1, num2 string) error
	Remove(num string) error
	Get(num string) (string, error)
	Reverse(num string) ([]string, error)
	GetReverse(num string) ([]string, error)
	Count() (int, error)
	Reset() error
	Close() error
}

// Local runs commands against an in-process registry.
type Local struct {
	pf *phfwd.PhoneForward
}

func NewLocal(opts *phfwd.Options) (*Local, error) {
	pf, err := phfwd.New(opts)
	if err != nil {
		return nil, err
	}
	return &Local{pf: pf}, nil
}

func (l *Local) Add(num1, num2 string) error {
	return l.pf.Add(num1, num2)
}

func (l *Local) Remove(num string) error {
	return l.pf.Remove(num)
}

func (l *Local) Get(num string) (string, error) {
	res, err := l.pf.Get(num)
	if err != nil {
		return "", err
	}
	v, _ := res.Get(0)
	return v, nil
}

func (l *Local) Reverse(num string) ([]string, error) {
	res, err := l.pf.Reverse(num)
	if err != nil {
		return nil, err
	}
	return res.All(), nil
}

func (l *Local) GetReverse(num string) ([]string, error) {
	res, err := l.pf.GetReverse(num)
	if err != nil {
		return nil, err
	}
	return res.All(), nil
}

func (l *Local) Count() (int, error) {
	return l.pf.Rules(), nil
}

func (l *Local) Reset() error {
	l.pf.Reset()
	return nil
}

func (l *Local) Close() error {
	return nil
}
