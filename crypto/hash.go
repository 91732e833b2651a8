// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crypto

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/ripemd160"
)

const (
	// HashSize is length of digest
	HashSize = 32

	// Hash160Size is the length of a RIPEMD160(SHA256(x)) digest
	Hash160Size = ripemd160.Size
)

// HashType is renamed hash type
type HashType [HashSize]byte

// String returns the Hash as the hexadecimal string of the byte-reversed
// hash.
func (hash HashType) String() string {
	for i := 0; i < HashSize/2; i++ {
		hash[i], hash[HashSize-1-i] = hash[HashSize-1-i], hash[i]
	}
	return hex.EncodeToString(hash[:])
}

// SetString sets the hash from its byte-reversed hexadecimal form.
func (hash *HashType) SetString(str string) error {
	buf, err := hex.DecodeString(str)
	if err != nil {
		return err
	}
	if len(buf) != HashSize {
		return ErrInvalidHashLength
	}
	reverseBytes(buf)
	copy(hash[:], buf)
	return nil
}

// SetBytes convert type []byte to HashType
func (hash *HashType) SetBytes(hashBytes []byte) error {
	if len(hashBytes) != HashSize {
		return ErrInvalidHashLength
	}
	copy(hash[:], hashBytes)
	return nil
}

// IsEqual returns true if target is the same as hash.
func (hash *HashType) IsEqual(target *HashType) bool {
	if hash == nil && target == nil {
		return true
	}
	if hash == nil || target == nil {
		return false
	}
	return *hash == *target
}

// Ripemd160 calculates the RIPEMD160 digest of buf
func Ripemd160(buf []byte) []byte {
	hasher := ripemd160.New()
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// Sha1 calculates the SHA1 digest of buf
func Sha1(buf []byte) []byte {
	digest := sha1.Sum(buf)
	return digest[:]
}

// Sha256 calculates the sha256 digest of buf
func Sha256(buf []byte) []byte {
	digest := sha256.Sum256(buf)
	return digest[:]
}

// Hash160 calculates RIPEMD160(SHA256(buf)), the digest committed to by
// pay-to-pubkey-hash and pay-to-script-hash outputs.
func Hash160(buf []byte) []byte {
	return Ripemd160(Sha256(buf))
}

// DoubleSha256 calculates SHA256(SHA256(buf)).
func DoubleSha256(buf []byte) []byte {
	h := DoubleHashH(buf)
	return h[:]
}

// DoubleHashH calculates hash(hash(b)) and returns the resulting bytes as a hash.
func DoubleHashH(b []byte) HashType {
	first := sha256.Sum256(b)
	return HashType(sha256.Sum256(first[:]))
}

func reverseBytes(buf []byte) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
