// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"time"

	"github.com/BOXFoundation/boxscript/core/types"
)

// Verify decides whether scriptSig unlocks scriptPubKey for input txInIdx of
// tx. Every failure yields false; the error then tells why.
//
// scriptSig runs first, and the stack it leaves is the input of scriptPubKey.
// When P2SH evaluation is enabled and scriptPubKey is pay-to-script-hash, the
// redeem script on top of the stack scriptSig left behind is evaluated as well.
func Verify(scriptSig, scriptPubKey []byte, tx *types.Transaction, txInIdx int,
	hashType SigHashType, cfg VerificationConfig) (bool, error) {

	start := time.Now()
	ok, err := verify(scriptSig, scriptPubKey, tx, txInIdx, hashType, cfg)
	metricsVerifyTimer.UpdateSince(start)
	if !ok {
		metricsVerifyFailureCounter.Inc(1)
		return false, err
	}
	metricsVerifySuccessCounter.Inc(1)
	return true, nil
}

func verify(scriptSig, scriptPubKey []byte, tx *types.Transaction, txInIdx int,
	hashType SigHashType, cfg VerificationConfig) (bool, error) {

	if err := cfg.Validate(); err != nil {
		return false, err
	}

	vm := NewInterpreter(tx, txInIdx, hashType, cfg)
	if err := vm.Execute(scriptSig); err != nil {
		return false, err
	}

	var snapshot *Stack
	if cfg.VerifyP2SH {
		snapshot = vm.stack.copy()
	}

	if err := vm.Execute(scriptPubKey); err != nil {
		return false, err
	}
	if err := vm.stack.validateTop(); err != nil {
		return false, err
	}

	if !cfg.VerifyP2SH || !NewScriptFromBytes(scriptPubKey).IsPayToScriptHash() {
		return true, nil
	}

	// Handle p2sh
	// scriptSig: <signatures...> <serialized redeemScript>
	if !NewScriptFromBytes(scriptSig).IsPushOnly() {
		return false, scriptError(ErrP2SHNotPushOnly,
			"signature script of a pay-to-script-hash spend is not push only")
	}
	redeemScript, err := snapshot.pop()
	if err != nil {
		return false, scriptError(ErrP2SHMissingRedeemScript,
			"pay-to-script-hash spend carries no redeem script")
	}
	vm.stack = snapshot
	if err := vm.Execute(redeemScript); err != nil {
		return false, err
	}
	if err := vm.stack.validateTop(); err != nil {
		return false, err
	}
	return true, nil
}

// VerifyInput verifies the scriptSig of input txInIdx of tx against the
// scriptPubKey of the output it spends. Signatures carry their own hash type.
func VerifyInput(tx *types.Transaction, txInIdx int, scriptPubKey []byte, cfg VerificationConfig) (bool, error) {
	if tx == nil {
		metricsVerifyFailureCounter.Inc(1)
		return false, scriptError(ErrSighashIndexOutOfRange, "no transaction to take the input from")
	}
	if txInIdx < 0 || txInIdx >= len(tx.Vin) {
		metricsVerifyFailureCounter.Inc(1)
		return false, scriptError(ErrSighashIndexOutOfRange,
			fmt.Sprintf("input index %d out of range for %d inputs", txInIdx, len(tx.Vin)))
	}
	return Verify(tx.Vin[txInIdx].ScriptSig, scriptPubKey, tx, txInIdx, 0, cfg)
}
