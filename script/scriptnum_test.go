// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/facebookgo/ensure"
)

func TestScriptNumBytes(t *testing.T) {
	tests := []struct {
		n        int64
		expected string
	}{
		{0, ""},
		{1, "01"},
		{-1, "81"},
		{127, "7f"},
		{-127, "ff"},
		{128, "8000"},
		{-128, "8080"},
		{255, "ff00"},
		{256, "0001"},
		{-256, "0081"},
		{32767, "ff7f"},
		{32768, "008000"},
		{-32768, "008080"},
		{2147483647, "ffffff7f"},
		{-2147483648, "0000008080"},
	}
	for _, test := range tests {
		b := scriptNumFromInt(test.n)
		ensure.DeepEqual(t, hex.EncodeToString(b), test.expected)
		ensure.DeepEqual(t, makeScriptNum(b).Int64(), test.n)
	}
}

func TestMakeScriptNumNonMinimal(t *testing.T) {
	tests := []struct {
		encoded  string
		expected int64
	}{
		{"0100", 1},
		{"010080", -1},
		{"00", 0},
		{"80", 0},
		{"0080", 0},
		{"ffffffffff00", 0xffffffffff},
	}
	for _, test := range tests {
		n := makeScriptNum(mustDecodeHex(test.encoded))
		ensure.DeepEqual(t, n.Int64(), test.expected)
	}
}

func TestScriptNumBeyondInt64(t *testing.T) {
	n, ok := new(big.Int).SetString("-123456789012345678901234567890", 10)
	ensure.True(t, ok)
	ensure.DeepEqual(t, makeScriptNum(scriptNumBytes(n)).String(), n.String())
}

func TestBoolEncodings(t *testing.T) {
	ensure.DeepEqual(t, fromBool(true), []byte{1})
	ensure.DeepEqual(t, fromBool(false), []byte{0})
	ensure.DeepEqual(t, numFromBool(true), []byte{1})
	ensure.DeepEqual(t, numFromBool(false), []byte{})
	ensure.False(t, castToBool(fromBool(false)))
	ensure.False(t, castToBool(numFromBool(false)))
}
