// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crypto

import (
	"github.com/btcsuite/btcd/btcec"
)

// PublicKey is a btcec.PublicKey wrapper
type PublicKey btcec.PublicKey

// PublicKeyFromBytes parses a compressed, uncompressed or hybrid
// secp256k1 public key.
func PublicKeyFromBytes(pubKeyStr []byte) (*PublicKey, error) {
	pubKey, err := btcec.ParsePubKey(pubKeyStr, curve)
	if err != nil {
		return nil, err
	}
	return (*PublicKey)(pubKey), nil
}

// SerializeCompressed returns the 33 bytes compressed form of the key.
func (p *PublicKey) SerializeCompressed() []byte {
	return (*btcec.PublicKey)(p).SerializeCompressed()
}

// SerializeUncompressed returns the 65 bytes uncompressed form of the key.
func (p *PublicKey) SerializeUncompressed() []byte {
	return (*btcec.PublicKey)(p).SerializeUncompressed()
}
