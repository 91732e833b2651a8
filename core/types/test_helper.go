// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package types

// NewCoinbaseTransaction generates a coinbase paying value to scriptPubKey.
func NewCoinbaseTransaction(value int64, coinbaseScript, scriptPubKey []byte) *Transaction {
	prevOutPoint := OutPoint{Index: MaxPrevOutIndex}
	return &Transaction{
		Version: 1,
		Vin:     []*TxIn{NewTxIn(&prevOutPoint, coinbaseScript)},
		Vout:    []*TxOut{NewTxOut(value, scriptPubKey)},
	}
}

// NewTransaction generates a transaction spending prevOutPoint and paying
// value to scriptPubKey. The input is left unsigned.
func NewTransaction(prevOutPoint OutPoint, value int64, scriptPubKey []byte) *Transaction {
	return &Transaction{
		Version: 1,
		Vin:     []*TxIn{NewTxIn(&prevOutPoint, nil)},
		Vout:    []*TxOut{NewTxOut(value, scriptPubKey)},
	}
}
