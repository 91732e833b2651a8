// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/BOXFoundation/boxscript/crypto"
	"github.com/facebookgo/ensure"
)

type testKey struct {
	priv       *crypto.PrivateKey
	pubKey     []byte
	pubKeyHash []byte
}

// newTestKey derives a fixed key pair from seed so fixtures are stable.
func newTestKey(seed byte) *testKey {
	priv, pub, err := crypto.KeyPairFromBytes(bytes.Repeat([]byte{seed}, 32))
	if err != nil {
		panic(err)
	}
	pubKey := pub.SerializeCompressed()
	return &testKey{priv: priv, pubKey: pubKey, pubKeyHash: crypto.Hash160(pubKey)}
}

var (
	testKey1 = newTestKey(0x01)
	testKey2 = newTestKey(0x02)
	testKey3 = newTestKey(0x03)
)

// newSpendingTx returns a transaction with numIn inputs and numOut outputs.
func newSpendingTx(numIn, numOut int) *types.Transaction {
	tx := &types.Transaction{Version: 1}
	for i := 0; i < numIn; i++ {
		prevHash := crypto.HashType{byte(i + 1), 0xab}
		tx.Vin = append(tx.Vin, types.NewTxIn(types.NewOutPoint(&prevHash, uint32(i)), nil))
	}
	for i := 0; i < numOut; i++ {
		tx.Vout = append(tx.Vout, types.NewTxOut(int64(1000*(i+1)), PayToPubKeyHashScript(testKey1.pubKeyHash).Bytes()))
	}
	return tx
}

// sign signs input txInIdx of tx committing to subscript and appends the hash
// type byte.
func (k *testKey) sign(t *testing.T, tx *types.Transaction, txInIdx int, subscript []byte, hashType SigHashType) []byte {
	hash, err := CalcSignatureHash(subscript, hashType, tx, txInIdx)
	ensure.Nil(t, err)
	sig, err := crypto.Sign(k.priv, hash[:])
	ensure.Nil(t, err)
	return append(sig.Serialize(), byte(hashType))
}

func mustParseScript(t *testing.T, s string) []byte {
	script, err := ParseScriptString(s)
	ensure.Nil(t, err)
	return script.Bytes()
}

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func testConfig() VerificationConfig {
	return DefaultVerificationConfig()
}
