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

package phfwd

import (
	"github.com/cockroachdb/errors"
)

const AlphabetSize = 12

const symbols = "0123456789*#"

var symbolTable = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		t[symbols[i]] = int8(i)
	}
	return t
}()

// SymbolIndex returns the alphabet index of c, or -1 when c is not a symbol.
func SymbolIndex(c byte) int {
	return int(symbolTable[c])
}

func SymbolChar(idx int) byte {
	return symbols[idx]
}

// Validate reports ErrInvalidArgument for an empty number or one containing
// a character outside the alphabet.
func Validate(num string) error {
	if len(num) == 0 {
		return errors.Wrap(ErrInvalidArgument, "empty number")
	}
	for i := 0; i < len(num); i++ {
		if symbolTable[num[i]] < 0 {
			return errors.Wrapf(ErrInvalidArgument, "number %q has bad symbol %q at %d", num, num[i], i)
		}
	}
	return nil
}

// Compare orders numbers symbol by symbol using alphabet indices; a proper
// prefix sorts before any longer number it starts.
func Compare(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if d := int(symbolTable[a[i]]) - int(symbolTable[b[i]]); d != 0 {
			return d
		}
	}
	return len(a) - len(b)
}
