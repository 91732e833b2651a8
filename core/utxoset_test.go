// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"reflect"
	"testing"

	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/BOXFoundation/boxscript/crypto"
	"github.com/facebookgo/ensure"
)

func TestUtxoSet_FindUtxo(t *testing.T) {
	key := types.OutPoint{
		Hash:  crypto.HashType{0x0010},
		Index: 1,
	}
	value := &UtxoEntry{
		output: types.TxOut{
			Value:        100000000,
			ScriptPubKey: []byte{},
		},
		IsCoinBase: false,
	}
	type args struct {
		outPoint types.OutPoint
	}
	tests := []struct {
		name string
		args args
		want *UtxoEntry
	}{
		{
			"existing",
			args{outPoint: types.OutPoint{Hash: crypto.HashType{0x0010}, Index: 1}},
			&UtxoEntry{
				output: types.TxOut{
					Value:        100000000,
					ScriptPubKey: []byte{},
				},
				IsCoinBase: false,
			},
		},
		{
			"other index",
			args{outPoint: types.OutPoint{Hash: crypto.HashType{0x0010}, Index: 2}},
			nil,
		},
		{
			"other hash",
			args{outPoint: types.OutPoint{Hash: crypto.HashType{0x0011}, Index: 1}},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &UtxoSet{
				utxoMap: map[types.OutPoint]*UtxoEntry{key: value},
			}
			if got := u.FindUtxo(tt.args.outPoint); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UtxoSet.FindUtxo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUtxoSet_AddUtxo(t *testing.T) {
	prevOutPoint := types.OutPoint{
		Hash:  crypto.HashType{0x0010},
		Index: 12,
	}
	tx := types.NewTransaction(prevOutPoint, 1, []byte{0x51})

	type args struct {
		txOutIdx uint32
	}
	tests := []struct {
		name    string
		args    args
		wantErr error
	}{
		{"first output", args{txOutIdx: 0}, nil},
		{"index out of bound", args{txOutIdx: 1}, ErrTxOutIndexOob},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUtxoSet()
			err := u.AddUtxo(tx, tt.args.txOutIdx)
			if err != tt.wantErr {
				t.Errorf("UtxoSet.AddUtxo() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	u := NewUtxoSet()
	ensure.Nil(t, u.AddUtxo(tx, 0))
	ensure.DeepEqual(t, u.AddUtxo(tx, 0), ErrAddExistingUtxo)
	ensure.DeepEqual(t, u.Len(), 1)

	txHash, err := tx.TxHash()
	ensure.Nil(t, err)
	entry := u.FindUtxo(types.OutPoint{Hash: *txHash, Index: 0})
	ensure.NotNil(t, entry)
	ensure.DeepEqual(t, entry.Value(), int64(1))
	ensure.DeepEqual(t, entry.Output().ScriptPubKey, []byte{0x51})
	ensure.False(t, entry.IsCoinBase)
}

func TestUtxoSet_RemoveUtxo(t *testing.T) {
	key := types.OutPoint{
		Hash:  crypto.HashType{0x0010},
		Index: 1,
	}
	u := NewUtxoSet()
	ensure.Nil(t, u.AddOutput(key, types.NewTxOut(100000000, []byte{}), false))
	ensure.DeepEqual(t, u.Len(), 1)

	// removing an unknown outpoint is a no-op
	u.RemoveUtxo(types.OutPoint{Hash: crypto.HashType{0x0010}, Index: 2})
	ensure.DeepEqual(t, u.Len(), 1)

	u.RemoveUtxo(key)
	ensure.DeepEqual(t, u.Len(), 0)
	ensure.True(t, u.FindUtxo(key) == nil)
}

func TestUtxoSet_FetchPrevOutput(t *testing.T) {
	key := types.OutPoint{
		Hash:  crypto.HashType{0x0020},
		Index: 0,
	}
	u := NewUtxoSet()
	_, err := u.FetchPrevOutput(&key)
	ensure.DeepEqual(t, err, ErrMissingTxOut)

	ensure.Nil(t, u.AddOutput(key, types.NewTxOut(7, []byte{0x51}), true))
	txOut, err := u.FetchPrevOutput(&key)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, txOut.Value, int64(7))
	ensure.True(t, u.FindUtxo(key).IsCoinBase)
}

func TestUtxoSet_ApplyTx(t *testing.T) {
	u := NewUtxoSet()

	coinbase := types.NewCoinbaseTransaction(50, []byte{0x01, 0x02}, []byte{0x51})
	ensure.Nil(t, u.ApplyTx(coinbase))
	ensure.DeepEqual(t, u.Len(), 1)

	coinbaseHash, err := coinbase.TxHash()
	ensure.Nil(t, err)
	spent := types.OutPoint{Hash: *coinbaseHash, Index: 0}
	ensure.True(t, u.FindUtxo(spent).IsCoinBase)

	tx := types.NewTransaction(spent, 20, []byte{0x51})
	tx.Vout = append(tx.Vout, types.NewTxOut(30, []byte{0x52}))
	ensure.Nil(t, u.ApplyTx(tx))
	ensure.DeepEqual(t, u.Len(), 2)
	ensure.True(t, u.FindUtxo(spent) == nil)

	txHash, err := tx.TxHash()
	ensure.Nil(t, err)
	ensure.DeepEqual(t, u.FindUtxo(types.OutPoint{Hash: *txHash, Index: 1}).Value(), int64(30))

	// applying twice adds existing outputs
	ensure.DeepEqual(t, u.ApplyTx(tx), ErrAddExistingUtxo)
}
