// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"bytes"
	"testing"

	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/BOXFoundation/boxscript/crypto"
	"github.com/BOXFoundation/boxscript/script"
	"github.com/facebookgo/ensure"
	"github.com/jbenet/goprocess"
)

var (
	privKey, pubKey, _ = crypto.KeyPairFromBytes(bytes.Repeat([]byte{0x07}, 32))
	pubKeyBytes        = pubKey.SerializeCompressed()
	scriptPubKey       = script.PayToPubKeyHashScript(crypto.Hash160(pubKeyBytes)).Bytes()
)

// fundedUtxoSet returns a set holding n P2PKH outputs of a single funding
// transaction, and a transaction spending all of them.
func fundedUtxoSet(t *testing.T, n int) (*UtxoSet, *types.Transaction) {
	fundingTx := types.NewTransaction(*types.NewOutPoint(&crypto.HashType{9}, 0), 0, nil)
	fundingTx.Vout = nil
	for i := 0; i < n; i++ {
		fundingTx.Vout = append(fundingTx.Vout, types.NewTxOut(int64(100*(i+1)), scriptPubKey))
	}
	utxoSet := NewUtxoSet()
	for i := range fundingTx.Vout {
		ensure.Nil(t, utxoSet.AddUtxo(fundingTx, uint32(i)))
	}

	fundingHash, err := fundingTx.TxHash()
	ensure.Nil(t, err)
	tx := &types.Transaction{Version: 1}
	for i := 0; i < n; i++ {
		tx.Vin = append(tx.Vin, types.NewTxIn(types.NewOutPoint(fundingHash, uint32(i)), nil))
	}
	tx.Vout = append(tx.Vout, types.NewTxOut(50, scriptPubKey))
	for i := range tx.Vin {
		signInput(t, tx, i)
	}
	return utxoSet, tx
}

func signInput(t *testing.T, tx *types.Transaction, txInIdx int) {
	hash, err := script.CalcSignatureHash(scriptPubKey, script.SigHashAll, tx, txInIdx)
	ensure.Nil(t, err)
	sig, err := crypto.Sign(privKey, hash[:])
	ensure.Nil(t, err)
	sigBytes := append(sig.Serialize(), byte(script.SigHashAll))
	tx.Vin[txInIdx].ScriptSig = script.SignatureScript(sigBytes, pubKeyBytes).Bytes()
}

func newTestValidator(t *testing.T, workers int, fetcher PrevOutputFetcher) *TxValidator {
	cfg := &ValidatorConfig{Workers: workers}
	v, err := NewTxValidator(cfg, script.DefaultVerificationConfig(), fetcher, nil)
	ensure.Nil(t, err)
	return v
}

func TestTxValidatorValid(t *testing.T) {
	utxoSet, tx := fundedUtxoSet(t, 5)
	for _, workers := range []int{1, 2, 0, 16} {
		v := newTestValidator(t, workers, utxoSet)
		ensure.Nil(t, v.Validate(tx), workers)
		ensure.Nil(t, v.Stop())
	}
}

func TestTxValidatorInvalidInput(t *testing.T) {
	utxoSet, tx := fundedUtxoSet(t, 5)
	// flip a byte inside the DER signature of input 3
	tx.Vin[3].ScriptSig[10] ^= 0x01

	v := newTestValidator(t, 2, utxoSet)
	defer v.Stop()

	err := v.Validate(tx)
	inputErr, ok := err.(*InputError)
	ensure.True(t, ok, err)
	ensure.DeepEqual(t, inputErr.TxInIdx, 3)
	ensure.True(t, script.IsErrorCode(inputErr.Err, script.ErrEvalFalse), inputErr.Err)
}

func TestTxValidatorMissingOutput(t *testing.T) {
	_, tx := fundedUtxoSet(t, 2)
	v := newTestValidator(t, 2, NewUtxoSet())
	defer v.Stop()

	err := v.Validate(tx)
	inputErr, ok := err.(*InputError)
	ensure.True(t, ok, err)
	ensure.DeepEqual(t, inputErr.Err, ErrMissingTxOut)
}

func TestTxValidatorSpecialTransactions(t *testing.T) {
	v := newTestValidator(t, 2, NewUtxoSet())
	defer v.Stop()

	coinbase := types.NewCoinbaseTransaction(50, []byte{0x01}, scriptPubKey)
	ensure.Nil(t, v.Validate(coinbase))

	ensure.DeepEqual(t, v.Validate(&types.Transaction{Version: 1}), ErrNoTxInputs)
}

func TestTxValidatorConfig(t *testing.T) {
	utxoSet := NewUtxoSet()

	_, err := NewTxValidator(&ValidatorConfig{Workers: -1}, script.DefaultVerificationConfig(), utxoSet, nil)
	ensure.DeepEqual(t, err, ErrInvalidWorkers)
	_, err = NewTxValidator(&ValidatorConfig{Workers: MaxValidatorWorkers + 1}, script.DefaultVerificationConfig(), utxoSet, nil)
	ensure.DeepEqual(t, err, ErrInvalidWorkers)

	_, err = NewTxValidator(&ValidatorConfig{}, script.VerificationConfig{}, utxoSet, nil)
	ensure.True(t, script.IsErrorCode(err, script.ErrInvalidConfig), err)

	cfg := DefaultValidatorConfig()
	v, err := NewTxValidator(&cfg, script.DefaultVerificationConfig(), utxoSet, goprocess.Background())
	ensure.Nil(t, err)
	ensure.DeepEqual(t, v.workers, DefaultValidatorWorkers)
	ensure.NotNil(t, v.cfg.SigCache)
	ensure.Nil(t, v.Stop())

	v = newTestValidator(t, 1, utxoSet)
	ensure.True(t, v.cfg.SigCache == nil)
	ensure.Nil(t, v.Stop())
}

func TestTxValidatorSigCache(t *testing.T) {
	utxoSet, tx := fundedUtxoSet(t, 3)
	cfg := &ValidatorConfig{Workers: 2, SigCacheSize: 10}
	v, err := NewTxValidator(cfg, script.DefaultVerificationConfig(), utxoSet, nil)
	ensure.Nil(t, err)
	defer v.Stop()

	ensure.Nil(t, v.Validate(tx))
	ensure.DeepEqual(t, v.cfg.SigCache.Len(), 3)
	ensure.Nil(t, v.Validate(tx))
	ensure.DeepEqual(t, v.cfg.SigCache.Len(), 3)
}

func TestTxValidatorStopped(t *testing.T) {
	utxoSet, tx := fundedUtxoSet(t, 2)
	parent := goprocess.WithParent(goprocess.Background())
	cfg := &ValidatorConfig{Workers: 2}
	v, err := NewTxValidator(cfg, script.DefaultVerificationConfig(), utxoSet, parent)
	ensure.Nil(t, err)
	ensure.Nil(t, v.Validate(tx))

	// closing the parent stops the validator too
	ensure.Nil(t, parent.Close())
	ensure.DeepEqual(t, v.Validate(tx), ErrValidatorClosed)
}

func TestInputError(t *testing.T) {
	err := &InputError{TxInIdx: 2, Err: ErrMissingTxOut}
	ensure.DeepEqual(t, err.Error(), "input 2: Referenced utxo does not exist")
}
