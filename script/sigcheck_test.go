// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"strings"
	"testing"

	"github.com/facebookgo/ensure"
)

// makeDER assembles 0x30 <len> 0x02 <len R> R 0x02 <len S> S <hash type>.
func makeDER(r, s []byte, hashType byte) []byte {
	sig := []byte{0x30, byte(4 + len(r) + len(s)), 0x02, byte(len(r))}
	sig = append(sig, r...)
	sig = append(sig, 0x02, byte(len(s)))
	sig = append(sig, s...)
	return append(sig, hashType)
}

func TestCheckSignatureEncoding(t *testing.T) {
	r32 := bytes.Repeat([]byte{0x11}, 32)
	s32 := bytes.Repeat([]byte{0x22}, 32)
	// a high R needs exactly one zero byte of padding
	r33 := append([]byte{0x00}, bytes.Repeat([]byte{0x91}, 32)...)
	padded := append([]byte{0x00}, r32...)
	oddS := append(bytes.Repeat([]byte{0x22}, 31), 0x23)

	badType := makeDER(r32, s32, 0x01)
	badType[0] = 0x31
	badLen := makeDER(r32, s32, 0x01)
	badLen[1]++
	misplacedS := makeDER(r32, s32, 0x01)
	misplacedS[3] = 0x50
	badRTag := makeDER(r32, s32, 0x01)
	badRTag[2] = 0x03
	badSTag := makeDER(r32, s32, 0x01)
	badSTag[4+32] = 0x03
	sumMismatch := makeDER(r32, s32, 0x01)
	sumMismatch[4+32+1] = 0x1f

	tests := []struct {
		name  string
		sig   []byte
		evenS bool
		desc  string
	}{
		{"72 bytes ALL", makeDER(r33, s32, 0x01), false, ""},
		{"71 bytes SINGLE|ANYONECANPAY", makeDER(r32, s32, 0x83), false, ""},
		{"small values", makeDER([]byte{0x01}, []byte{0x01}, 0x02), false, ""},
		{"extra leading zero on R", makeDER(padded, s32, 0x01), false, "R value excessively padded"},
		{"extra leading zero on S", makeDER(r32, padded, 0x01), false, "S value excessively padded"},
		{"too short", bytes.Repeat([]byte{0x30}, 8), false, "too short"},
		{"too long", bytes.Repeat([]byte{0x30}, 74), false, "too long"},
		{"hash type 0", makeDER(r32, s32, 0x00), false, "unknown hash type byte"},
		{"hash type 4", makeDER(r32, s32, 0x84), false, "unknown hash type byte"},
		{"wrong type", badType, false, "wrong type"},
		{"wrong length", badLen, false, "wrong length marker"},
		{"S length misplaced", misplacedS, false, "S length misplaced"},
		{"R+S mismatch", sumMismatch, false, "R+S length mismatch"},
		{"R type", badRTag, false, "R value type mismatch"},
		{"S type", badSTag, false, "S value type mismatch"},
		{"empty R", makeDER(nil, s32, 0x01), false, "R length is zero"},
		{"empty S", makeDER(r32, nil, 0x01), false, "S length is zero"},
		{"negative R", makeDER(bytes.Repeat([]byte{0x91}, 32), s32, 0x01), false, "R value negative"},
		{"negative S", makeDER(r32, bytes.Repeat([]byte{0x91}, 32), 0x01), false, "S value negative"},
		{"odd S", makeDER(r32, oddS, 0x01), true, "S value odd"},
		{"odd S allowed", makeDER(r32, oddS, 0x01), false, ""},
		{"even S", makeDER(r32, s32, 0x01), true, ""},
	}
	for _, test := range tests {
		err := checkSignatureEncoding(test.sig, test.evenS)
		if test.desc == "" {
			ensure.Nil(t, err, test.name)
			continue
		}
		ensure.True(t, IsErrorCode(err, ErrNonCanonicalSignature), test.name)
		ensure.True(t, strings.HasSuffix(err.Error(), test.desc), test.name, err.Error())
	}
	ensure.DeepEqual(t, len(makeDER(r33, s32, 0x01)), 72)
}

func TestCheckSignatureEncodingRealSignature(t *testing.T) {
	tx := newSpendingTx(1, 1)
	subscript := PayToPubKeyHashScript(testKey1.pubKeyHash).Bytes()
	for _, hashType := range []SigHashType{SigHashAll, SigHashNone, SigHashSingle, SigHashAll | SigHashAnyOneCanPay} {
		sig := testKey1.sign(t, tx, 0, subscript, hashType)
		ensure.Nil(t, checkSignatureEncoding(sig, false))
	}
}
