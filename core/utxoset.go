// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"sync"

	"github.com/BOXFoundation/boxscript/core/types"
)

// UtxoEntry contains info about utxo
type UtxoEntry struct {
	output types.TxOut
	// is this utxo inside a coinbase tx
	IsCoinBase bool
}

// Value returns utxo amount
func (u *UtxoEntry) Value() int64 {
	return u.output.Value
}

// Output returns the transaction output of the entry.
func (u *UtxoEntry) Output() *types.TxOut {
	return &u.output
}

// UtxoSet is an in-memory set of spendable outputs. It serves as the
// PrevOutputFetcher of a TxValidator and is safe for concurrent use.
type UtxoSet struct {
	mtx     sync.RWMutex
	utxoMap map[types.OutPoint]*UtxoEntry
}

// NewUtxoSet returns an empty set.
func NewUtxoSet() *UtxoSet {
	return &UtxoSet{utxoMap: make(map[types.OutPoint]*UtxoEntry)}
}

// FindUtxo returns information about an outpoint.
// It returns nil if the outpoint does not exist, i.e, the output has been spent.
func (u *UtxoSet) FindUtxo(outPoint types.OutPoint) *UtxoEntry {
	u.mtx.RLock()
	defer u.mtx.RUnlock()
	return u.utxoMap[outPoint]
}

// FetchPrevOutput implements PrevOutputFetcher.
func (u *UtxoSet) FetchPrevOutput(outPoint *types.OutPoint) (*types.TxOut, error) {
	entry := u.FindUtxo(*outPoint)
	if entry == nil {
		return nil, ErrMissingTxOut
	}
	return entry.Output(), nil
}

// AddUtxo adds output txOutIdx of tx.
func (u *UtxoSet) AddUtxo(tx *types.Transaction, txOutIdx uint32) error {
	// Index out of bound
	if txOutIdx >= uint32(len(tx.Vout)) {
		return ErrTxOutIndexOob
	}

	txHash, err := tx.TxHash()
	if err != nil {
		return err
	}
	return u.AddOutput(types.OutPoint{Hash: *txHash, Index: txOutIdx}, tx.Vout[txOutIdx], tx.IsCoinBase())
}

// AddOutput adds txOut under outPoint directly, for outputs whose
// transaction is not at hand.
func (u *UtxoSet) AddOutput(outPoint types.OutPoint, txOut *types.TxOut, isCoinBase bool) error {
	u.mtx.Lock()
	defer u.mtx.Unlock()
	if utxoEntry := u.utxoMap[outPoint]; utxoEntry != nil {
		return ErrAddExistingUtxo
	}
	u.utxoMap[outPoint] = &UtxoEntry{*txOut, isCoinBase}
	return nil
}

// RemoveUtxo removes a utxo
func (u *UtxoSet) RemoveUtxo(outPoint types.OutPoint) {
	u.mtx.Lock()
	defer u.mtx.Unlock()
	delete(u.utxoMap, outPoint)
}

// Len returns the number of outputs in the set.
func (u *UtxoSet) Len() int {
	u.mtx.RLock()
	defer u.mtx.RUnlock()
	return len(u.utxoMap)
}

// ApplyTx updates utxos with the passed tx: adds all utxos in outputs and delete all utxos in inputs.
func (u *UtxoSet) ApplyTx(tx *types.Transaction) error {
	// Add new utxos
	for txOutIdx := range tx.Vout {
		if err := u.AddUtxo(tx, (uint32)(txOutIdx)); err != nil {
			return err
		}
	}

	// Coinbase transaction doesn't spend any utxo.
	if !tx.IsCoinBase() {
		// Spend the referenced utxos
		for _, txIn := range tx.Vin {
			u.RemoveUtxo(txIn.PrevOutPoint)
		}
	}

	return nil
}
