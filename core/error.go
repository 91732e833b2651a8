// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"errors"
	"fmt"
)

// error
var (
	//tx_validator.go
	ErrNoTxInputs      = errors.New("Transaction has no inputs")
	ErrMissingTxOut    = errors.New("Referenced utxo does not exist")
	ErrValidatorClosed = errors.New("Transaction validator is closed")
	ErrInvalidWorkers  = errors.New("Invalid number of validator workers")

	//utxoset.go
	ErrTxOutIndexOob   = errors.New("Transaction output index out of bound")
	ErrAddExistingUtxo = errors.New("Trying to add utxo already existed")
)

// InputError tells which input of a transaction failed validation.
type InputError struct {
	TxInIdx int
	Err     error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input %d: %v", e.TxInIdx, e.Err)
}
