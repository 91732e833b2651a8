// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// ParseScriptString assembles a script from its human readable form. Words
// are separated by white space and each one is, in order of precedence:
//   0x<hex>      raw bytes copied verbatim, typically a push op and its data
//   [OP_]NAME    an op code, e.g. DUP or OP_DUP
//   <integer>    a decimal number pushed as a script number
//   '<string>'   the bytes of the string pushed as data
func ParseScriptString(s string) (*Script, error) {
	script := NewScript()
	for _, word := range strings.Fields(s) {
		if len(word) > 2 && strings.HasPrefix(word, "0x") {
			raw, err := hex.DecodeString(word[2:])
			if err != nil {
				return nil, fmt.Errorf("%v: bad hex word %q: %v", ErrInvalidScriptString, word, err)
			}
			*script = append(*script, raw...)
			continue
		}
		if op, ok := OpCodeFromName(word); ok {
			script.AddOpCode(op)
			continue
		}
		if n, ok := new(big.Int).SetString(word, 10); ok {
			script.AddOperand(scriptNumBytes(n))
			continue
		}
		if len(word) >= 2 && word[0] == '\'' && word[len(word)-1] == '\'' {
			script.AddOperand([]byte(word[1 : len(word)-1]))
			continue
		}
		return nil, fmt.Errorf("%v: could not parse word %q", ErrInvalidScriptString, word)
	}
	return script, nil
}
