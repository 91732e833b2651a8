// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"
	"encoding/hex"
	"io"

	"github.com/btcsuite/btcd/wire"
)

// all numeric fields on the wire are little endian
var defaultEndian = binary.LittleEndian

// protocol version handed to the wire varint codec, which ignores it
const pver = 0

// MaxVarBytesLen bounds a single variable length byte slice read from a reader.
const MaxVarBytesLen = 32 * 1024 * 1024

// Hex encodes []byte to Hex.
func Hex(data []byte) string {
	return hex.EncodeToString(data)
}

// FromHex decodes string from Hex.
func FromHex(data string) ([]byte, error) {
	return hex.DecodeString(data)
}

// Uint64 decodes a little endian uint64.
func Uint64(data []byte) uint64 {
	return defaultEndian.Uint64(data)
}

// FromUint64 encodes a uint64 as 8 little endian bytes.
func FromUint64(v uint64) []byte {
	b := make([]byte, 8)
	defaultEndian.PutUint64(b, v)
	return b
}

// Uint32 decodes a little endian uint32.
func Uint32(data []byte) uint32 {
	return defaultEndian.Uint32(data)
}

// FromUint32 encodes a uint32 as 4 little endian bytes.
func FromUint32(v uint32) []byte {
	b := make([]byte, 4)
	defaultEndian.PutUint32(b, v)
	return b
}

// Uint16 decodes a little endian uint16.
func Uint16(data []byte) uint16 {
	return defaultEndian.Uint16(data)
}

// FromUint16 encodes a uint16 as 2 little endian bytes.
func FromUint16(v uint16) []byte {
	b := make([]byte, 2)
	defaultEndian.PutUint16(b, v)
	return b
}

////////////////////////////////////////////////////////////////////////////////
// read/write via reader/writer

// ReadUint64 read uint64.
func ReadUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return defaultEndian.Uint64(buf[:]), nil
}

// WriteUint64 writes unit64 value.
func WriteUint64(w io.Writer, v uint64) error {
	_, err := w.Write(FromUint64(v))
	return err
}

// ReadUint32 reads uint32.
func ReadUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return defaultEndian.Uint32(buf[:]), nil
}

// WriteUint32 writes uint32.
func WriteUint32(w io.Writer, v uint32) error {
	_, err := w.Write(FromUint32(v))
	return err
}

// ReadBytes reads fix length of []byte via reader.
func ReadBytes(r io.Reader, data []byte) error {
	_, err := io.ReadFull(r, data)
	return err
}

// WriteBytes writes fix length of bytes.
func WriteBytes(w io.Writer, v []byte) error {
	_, err := w.Write(v)
	return err
}

// ReadVarInt reads a CompactSize encoded integer.
func ReadVarInt(r io.Reader) (uint64, error) {
	return wire.ReadVarInt(r, pver)
}

// WriteVarInt writes v in CompactSize encoding: one byte below 0xfd, otherwise
// a 0xfd/0xfe/0xff marker followed by 2/4/8 little endian bytes.
func WriteVarInt(w io.Writer, v uint64) error {
	return wire.WriteVarInt(w, pver, v)
}

// VarIntSerializeSize returns the number of bytes WriteVarInt uses for v.
func VarIntSerializeSize(v uint64) int {
	return wire.VarIntSerializeSize(v)
}

// ReadVarBytes reads a CompactSize length prefixed byte slice.
func ReadVarBytes(r io.Reader) ([]byte, error) {
	l, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	if l > MaxVarBytesLen {
		return nil, ErrVarBytesTooLong
	}
	buf := make([]byte, l)
	if err = ReadBytes(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteVarBytes writes a CompactSize length prefixed byte slice.
func WriteVarBytes(w io.Writer, v []byte) error {
	if err := WriteVarInt(w, uint64(len(v))); err != nil {
		return err
	}
	return WriteBytes(w, v)
}

// ReverseBytes returns a reversed copy of data.
func ReverseBytes(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[len(data)-1-i] = b
	}
	return out
}
