// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crypto

import (
	"bytes"

	"github.com/btcsuite/btcutil/base58"
)

const checksumLen = 4

// Base58CheckEncode calculates the 4 bytes checksum of input bytes,
// append checksum to the input bytes, and convert to base58 format
func Base58CheckEncode(in []byte) string {
	b := make([]byte, 0, len(in)+checksumLen)
	b = append(b, in...)
	cksum := Checksum(in)
	b = append(b, cksum[:]...)
	return base58.Encode(b)
}

// Base58CheckEncodeVersion prefixes payload with a one byte version before
// encoding, the layout used by legacy addresses.
func Base58CheckEncodeVersion(version byte, payload []byte) string {
	return Base58CheckEncode(append([]byte{version}, payload...))
}

// Checksum return input bytes checksum.
func Checksum(input []byte) (cksum [checksumLen]byte) {
	h := DoubleHashH(input)
	copy(cksum[:], h[:checksumLen])
	return
}

// Base58CheckDecode converts a base58 format string to byte array,
// checks the checksum and returns the wrapped byte array content
func Base58CheckDecode(in string) ([]byte, error) {
	rawBytes := base58.Decode(in)
	if len(rawBytes) == 0 {
		return nil, ErrInvalidBase58Encoding
	}
	if len(rawBytes) <= checksumLen {
		return nil, ErrInvalidBase58StringLength
	}
	sep := len(rawBytes) - checksumLen
	content := rawBytes[:sep:sep]
	cksum := Checksum(content)
	if !bytes.Equal(cksum[:], rawBytes[sep:]) {
		return nil, ErrInvalidBase58Checksum
	}
	return content, nil
}

// Base58CheckDecodeVersion splits a decoded Base58Check string into its
// version byte and payload.
func Base58CheckDecodeVersion(in string) (byte, []byte, error) {
	content, err := Base58CheckDecode(in)
	if err != nil {
		return 0, nil, err
	}
	return content[0], content[1:], nil
}
