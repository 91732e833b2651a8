// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"math/big"
)

// Numbers on the stack are little endian sign-magnitude integers of any
// length: the high bit of the last byte carries the sign and the empty byte
// slice is zero.

var bigOne = big.NewInt(1)

// makeScriptNum decodes a stack element into an integer.
func makeScriptNum(v []byte) *big.Int {
	n := new(big.Int)
	if len(v) == 0 {
		return n
	}

	// big.Int wants big endian magnitude
	mag := make([]byte, len(v))
	for i, b := range v {
		mag[len(v)-1-i] = b
	}
	negative := mag[0]&0x80 != 0
	mag[0] &= 0x7f
	n.SetBytes(mag)
	if negative {
		n.Neg(n)
	}
	return n
}

// scriptNumBytes returns the minimal encoding of n.
func scriptNumBytes(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{}
	}

	be := new(big.Int).Abs(n).Bytes()
	result := make([]byte, len(be), len(be)+1)
	for i, b := range be {
		result[len(be)-1-i] = b
	}

	// An extra byte holds the sign when the most significant byte already
	// uses its high bit.
	if result[len(result)-1]&0x80 != 0 {
		extra := byte(0x00)
		if n.Sign() < 0 {
			extra = 0x80
		}
		result = append(result, extra)
	} else if n.Sign() < 0 {
		result[len(result)-1] |= 0x80
	}
	return result
}

// scriptNumFromInt is a shortcut for small values.
func scriptNumFromInt(v int64) []byte {
	return scriptNumBytes(big.NewInt(v))
}

// castToBool interprets a stack element as a boolean. Any non zero byte makes
// it true, except negative zero: a sign bit alone in the last byte.
func castToBool(v []byte) bool {
	for i, b := range v {
		if b != 0 {
			if i == len(v)-1 && b == 0x80 {
				return false
			}
			return true
		}
	}
	return false
}

// fromBool encodes a boolean produced by a comparison as 1 or 0 byte.
func fromBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// numFromBool encodes a boolean as a script number: 1 or the empty vector.
func numFromBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{}
}
