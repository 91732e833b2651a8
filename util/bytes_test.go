// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package util

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/facebookgo/ensure"
)

func TestWriteVarInt(t *testing.T) {
	tests := []struct {
		name string
		v    uint64
		want []byte
	}{
		{"single byte", 0xfc, []byte{0xfc}},
		{"uint16", 0xfd, []byte{0xfd, 0xfd, 0x00}},
		{"uint16 max", 0xffff, []byte{0xfd, 0xff, 0xff}},
		{"uint32", 0x10000, []byte{0xfe, 0x00, 0x00, 0x01, 0x00}},
		{"uint64", 0x100000000, []byte{0xff, 0, 0, 0, 0, 1, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteVarInt(&buf, tt.v); err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(buf.Bytes(), tt.want) {
				t.Errorf("WriteVarInt(%d) = %x, want %x", tt.v, buf.Bytes(), tt.want)
			}
			if VarIntSerializeSize(tt.v) != len(tt.want) {
				t.Errorf("VarIntSerializeSize(%d) = %d, want %d", tt.v, VarIntSerializeSize(tt.v), len(tt.want))
			}
			got, err := ReadVarInt(bytes.NewReader(tt.want))
			if err != nil || got != tt.v {
				t.Errorf("ReadVarInt(%x) = %d, %v", tt.want, got, err)
			}
		})
	}
}

func TestVarBytes(t *testing.T) {
	var buf bytes.Buffer
	data := bytes.Repeat([]byte{0xab}, 300)
	ensure.Nil(t, WriteVarBytes(&buf, data))
	ensure.DeepEqual(t, buf.Bytes()[:3], []byte{0xfd, 0x2c, 0x01})

	got, err := ReadVarBytes(&buf)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, got, data)

	_, err = ReadVarBytes(bytes.NewReader([]byte{0x05, 0x01}))
	ensure.NotNil(t, err)
}

func TestLittleEndian(t *testing.T) {
	var buf bytes.Buffer
	ensure.Nil(t, WriteUint32(&buf, 0x01020304))
	ensure.Nil(t, WriteUint64(&buf, 0xffffffffffffffff))
	ensure.DeepEqual(t, buf.Bytes()[:4], []byte{0x04, 0x03, 0x02, 0x01})

	v32, err := ReadUint32(&buf)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, v32, uint32(0x01020304))
	v64, err := ReadUint64(&buf)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, v64, uint64(0xffffffffffffffff))

	_, err = ReadUint32(&buf)
	ensure.NotNil(t, err)
}

func TestReverseBytes(t *testing.T) {
	in := []byte{1, 2, 3}
	ensure.DeepEqual(t, ReverseBytes(in), []byte{3, 2, 1})
	ensure.DeepEqual(t, in, []byte{1, 2, 3})
	ensure.DeepEqual(t, ReverseBytes(nil), []byte{})
}
