// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/BOXFoundation/boxscript/crypto"
)

// Bounds of a DER signature with its trailing hash type byte.
const (
	minSigLen = 9
	maxSigLen = 73
)

func nonCanonical(desc string) error {
	return scriptError(ErrNonCanonicalSignature, "non-canonical signature: "+desc)
}

// checkSignatureEncoding enforces the strict encoding of sig:
// 0x30 <total len> 0x02 <len R> <R> 0x02 <len S> <S> <hash type>
// R and S must be non-negative and carry no excess leading zero byte.
func checkSignatureEncoding(sig []byte, verifyEvenS bool) error {
	l := len(sig)
	if l < minSigLen {
		return nonCanonical("too short")
	}
	if l > maxSigLen {
		return nonCanonical("too long")
	}

	hashType := SigHashType(sig[l-1]) &^ SigHashAnyOneCanPay
	if hashType < SigHashAll || hashType > SigHashSingle {
		return nonCanonical("unknown hash type byte")
	}

	if sig[0] != 0x30 {
		return nonCanonical("wrong type")
	}
	if int(sig[1]) != l-3 {
		return nonCanonical("wrong length marker")
	}

	lenR := int(sig[3])
	if 5+lenR >= l {
		return nonCanonical("S length misplaced")
	}
	lenS := int(sig[5+lenR])
	if lenR+lenS+7 != l {
		return nonCanonical("R+S length mismatch")
	}

	const rPos = 4
	if sig[rPos-2] != 0x02 {
		return nonCanonical("R value type mismatch")
	}
	if err := checkDERInteger("R", sig[rPos:rPos+lenR]); err != nil {
		return err
	}

	sPos := 6 + lenR
	if sig[sPos-2] != 0x02 {
		return nonCanonical("S value type mismatch")
	}
	s := sig[sPos : sPos+lenS]
	if err := checkDERInteger("S", s); err != nil {
		return err
	}

	if verifyEvenS && s[lenS-1]&1 != 0 {
		return nonCanonical("S value odd")
	}
	return nil
}

func checkDERInteger(name string, v []byte) error {
	if len(v) == 0 {
		return nonCanonical(name + " length is zero")
	}
	if v[0]&0x80 != 0 {
		return nonCanonical(name + " value negative")
	}
	if len(v) > 1 && v[0] == 0x00 && v[1]&0x80 == 0 {
		return nonCanonical(name + " value excessively padded")
	}
	return nil
}

// checkSig verifies sig, with its trailing hash type byte, by pubKey over the
// signature hash of subscript. Any failure along the way is reported as an
// invalid signature rather than an error.
func checkSig(sig, pubKey []byte, subscript []Chunk, tx *types.Transaction,
	txInIdx int, hashType SigHashType, sigCache *SigCache) bool {

	if len(sig) == 0 || tx == nil {
		return false
	}

	// a zero hash type is taken from the signature; a zero trailing byte
	// defers to the caller
	sigHashType := SigHashType(sig[len(sig)-1])
	switch {
	case hashType == 0:
		hashType = sigHashType
	case sigHashType == 0:
	case sigHashType != hashType:
		return false
	}
	sig = sig[:len(sig)-1]

	sigHash, err := calcSignatureHash(subscript, hashType, tx, txInIdx)
	if err != nil {
		logger.Debugf("calculate signature hash failed: %v", err)
		return false
	}

	if len(pubKey) == 0 {
		pubKey = []byte{0x00}
	}

	if sigCache != nil && sigCache.Exists(sigHash, sig, pubKey) {
		return true
	}

	signature, err := crypto.SigFromBytes(sig)
	if err != nil {
		logger.Debugf("Deserialize signature failed: %v", err)
		return false
	}
	publicKey, err := crypto.PublicKeyFromBytes(pubKey)
	if err != nil {
		logger.Debugf("Deserialize public key failed: %v", err)
		return false
	}

	if !signature.VerifySignature(publicKey, sigHash[:]) {
		return false
	}
	if sigCache != nil {
		sigCache.Add(sigHash, sig, pubKey)
	}
	return true
}
