// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package types

import (
	"bytes"
	"io"

	"github.com/BOXFoundation/boxscript/crypto"
	"github.com/BOXFoundation/boxscript/util"
	pool "github.com/libp2p/go-buffer-pool"
)

const (
	// outPointSize is the serialized size of an OutPoint: hash + index.
	outPointSize = crypto.HashSize + 4

	// minTxInSize is the smallest serialized input: outpoint, one byte
	// script length and sequence.
	minTxInSize = outPointSize + 1 + 4

	// minTxOutSize is the smallest serialized output: value and one byte
	// script length.
	minTxOutSize = 8 + 1

	// MaxTxSize bounds the number of bytes accepted when decoding a
	// transaction.
	MaxTxSize = 4 * 1024 * 1024
)

// Transaction defines a transaction.
type Transaction struct {
	Version  int32
	Vin      []*TxIn
	Vout     []*TxOut
	LockTime uint32
}

// TxOut defines a transaction output.
type TxOut struct {
	Value        int64
	ScriptPubKey []byte
}

// TxIn defines a transaction input.
type TxIn struct {
	PrevOutPoint OutPoint
	ScriptSig    []byte
	Sequence     uint32
}

// OutPoint defines a data type that is used to track previous transaction outputs.
type OutPoint struct {
	Hash  crypto.HashType
	Index uint32
}

// NewOutPoint returns a new transaction outpoint point with the provided hash and index.
func NewOutPoint(hash *crypto.HashType, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// NewTxIn returns a new transaction input spending prevOut with the provided
// scriptSig and the final sequence number.
func NewTxIn(prevOut *OutPoint, scriptSig []byte) *TxIn {
	return &TxIn{
		PrevOutPoint: *prevOut,
		ScriptSig:    scriptSig,
		Sequence:     MaxTxInSequenceNum,
	}
}

// NewTxOut returns a new transaction output.
func NewTxOut(value int64, scriptPubKey []byte) *TxOut {
	return &TxOut{
		Value:        value,
		ScriptPubKey: scriptPubKey,
	}
}

////////////////////////////////////////////////////////////////////////////////

func (op *OutPoint) serialize(w io.Writer) error {
	if err := util.WriteBytes(w, op.Hash[:]); err != nil {
		return err
	}
	return util.WriteUint32(w, op.Index)
}

func (op *OutPoint) deserialize(r io.Reader) error {
	if _, err := io.ReadFull(r, op.Hash[:]); err != nil {
		return err
	}
	index, err := util.ReadUint32(r)
	if err != nil {
		return err
	}
	op.Index = index
	return nil
}

// IsNull reports whether the outpoint is the null reference used by coinbase inputs.
func (op *OutPoint) IsNull() bool {
	return op.Index == MaxPrevOutIndex && op.Hash == zeroHash
}

////////////////////////////////////////////////////////////////////////////////

// Serialize writes the wire encoding of the input to w.
func (txin *TxIn) Serialize(w io.Writer) error {
	if err := txin.PrevOutPoint.serialize(w); err != nil {
		return err
	}
	if err := util.WriteVarBytes(w, txin.ScriptSig); err != nil {
		return err
	}
	return util.WriteUint32(w, txin.Sequence)
}

// Deserialize reads the wire encoding of an input from r.
func (txin *TxIn) Deserialize(r io.Reader) error {
	if err := txin.PrevOutPoint.deserialize(r); err != nil {
		return err
	}
	scriptSig, err := util.ReadVarBytes(r)
	if err != nil {
		return err
	}
	sequence, err := util.ReadUint32(r)
	if err != nil {
		return err
	}
	txin.ScriptSig = scriptSig
	txin.Sequence = sequence
	return nil
}

// SerializeSize returns the number of bytes Serialize writes.
func (txin *TxIn) SerializeSize() int {
	return outPointSize + util.VarIntSerializeSize(uint64(len(txin.ScriptSig))) +
		len(txin.ScriptSig) + 4
}

////////////////////////////////////////////////////////////////////////////////

// Serialize writes the wire encoding of the output to w.
func (txout *TxOut) Serialize(w io.Writer) error {
	if err := util.WriteUint64(w, uint64(txout.Value)); err != nil {
		return err
	}
	return util.WriteVarBytes(w, txout.ScriptPubKey)
}

// Deserialize reads the wire encoding of an output from r.
func (txout *TxOut) Deserialize(r io.Reader) error {
	value, err := util.ReadUint64(r)
	if err != nil {
		return err
	}
	scriptPubKey, err := util.ReadVarBytes(r)
	if err != nil {
		return err
	}
	txout.Value = int64(value)
	txout.ScriptPubKey = scriptPubKey
	return nil
}

// SerializeSize returns the number of bytes Serialize writes.
func (txout *TxOut) SerializeSize() int {
	return 8 + util.VarIntSerializeSize(uint64(len(txout.ScriptPubKey))) +
		len(txout.ScriptPubKey)
}

////////////////////////////////////////////////////////////////////////////////

// Serialize writes the wire encoding of the transaction to w.
func (tx *Transaction) Serialize(w io.Writer) error {
	if err := util.WriteUint32(w, uint32(tx.Version)); err != nil {
		return err
	}
	if err := util.WriteVarInt(w, uint64(len(tx.Vin))); err != nil {
		return err
	}
	for _, txIn := range tx.Vin {
		if err := txIn.Serialize(w); err != nil {
			return err
		}
	}
	if err := util.WriteVarInt(w, uint64(len(tx.Vout))); err != nil {
		return err
	}
	for _, txOut := range tx.Vout {
		if err := txOut.Serialize(w); err != nil {
			return err
		}
	}
	return util.WriteUint32(w, tx.LockTime)
}

// Deserialize reads the wire encoding of a transaction from r.
func (tx *Transaction) Deserialize(r io.Reader) error {
	version, err := util.ReadUint32(r)
	if err != nil {
		return err
	}

	inCount, err := util.ReadVarInt(r)
	if err != nil {
		return err
	}
	if inCount > MaxTxSize/minTxInSize {
		return ErrTooManyTxIns
	}
	vin := make([]*TxIn, inCount)
	for i := range vin {
		txIn := new(TxIn)
		if err := txIn.Deserialize(r); err != nil {
			return err
		}
		vin[i] = txIn
	}

	outCount, err := util.ReadVarInt(r)
	if err != nil {
		return err
	}
	if outCount > MaxTxSize/minTxOutSize {
		return ErrTooManyTxOuts
	}
	vout := make([]*TxOut, outCount)
	for i := range vout {
		txOut := new(TxOut)
		if err := txOut.Deserialize(r); err != nil {
			return err
		}
		vout[i] = txOut
	}

	lockTime, err := util.ReadUint32(r)
	if err != nil {
		return err
	}

	tx.Version = int32(version)
	tx.Vin = vin
	tx.Vout = vout
	tx.LockTime = lockTime
	return nil
}

// SerializeSize returns the number of bytes Serialize writes.
func (tx *Transaction) SerializeSize() int {
	n := 8 + util.VarIntSerializeSize(uint64(len(tx.Vin))) +
		util.VarIntSerializeSize(uint64(len(tx.Vout)))
	for _, txIn := range tx.Vin {
		n += txIn.SerializeSize()
	}
	for _, txOut := range tx.Vout {
		n += txOut.SerializeSize()
	}
	return n
}

// Marshal method marshal tx object to binary
func (tx *Transaction) Marshal() ([]byte, error) {
	var buf pool.Buffer
	defer buf.Reset()
	buf.Grow(tx.SerializeSize())
	if err := tx.Serialize(&buf); err != nil {
		return nil, err
	}
	data := make([]byte, buf.Len())
	copy(data, buf.Bytes())
	return data, nil
}

// Unmarshal method unmarshal binary data to tx object. The whole buffer must
// be consumed.
func (tx *Transaction) Unmarshal(data []byte) error {
	if len(data) > MaxTxSize {
		return ErrTxTooLarge
	}
	r := bytes.NewReader(data)
	if err := tx.Deserialize(r); err != nil {
		return err
	}
	if r.Len() != 0 {
		return ErrTxTrailingBytes
	}
	return nil
}

// NewTxFromHex decodes a hex encoded raw transaction.
func NewTxFromHex(s string) (*Transaction, error) {
	data, err := util.FromHex(s)
	if err != nil {
		return nil, err
	}
	tx := new(Transaction)
	if err := tx.Unmarshal(data); err != nil {
		return nil, err
	}
	return tx, nil
}

// TxHash returns the double SHA256 of the serialized transaction.
func (tx *Transaction) TxHash() (*crypto.HashType, error) {
	data, err := tx.Marshal()
	if err != nil {
		return nil, err
	}
	hash := crypto.DoubleHashH(data)
	return &hash, nil
}

// IsCoinBase determines whether or not a transaction is a coinbase.
// A coinbase has exactly one input whose previous outpoint is null.
func (tx *Transaction) IsCoinBase() bool {
	if len(tx.Vin) != 1 {
		return false
	}
	return tx.Vin[0].PrevOutPoint.IsNull()
}

// Copy returns a deep copy of the transaction.
func (tx *Transaction) Copy() *Transaction {
	newTx := &Transaction{
		Version:  tx.Version,
		Vin:      make([]*TxIn, 0, len(tx.Vin)),
		Vout:     make([]*TxOut, 0, len(tx.Vout)),
		LockTime: tx.LockTime,
	}
	for _, txIn := range tx.Vin {
		newTx.Vin = append(newTx.Vin, &TxIn{
			PrevOutPoint: txIn.PrevOutPoint,
			ScriptSig:    append([]byte(nil), txIn.ScriptSig...),
			Sequence:     txIn.Sequence,
		})
	}
	for _, txOut := range tx.Vout {
		newTx.Vout = append(newTx.Vout, &TxOut{
			Value:        txOut.Value,
			ScriptPubKey: append([]byte(nil), txOut.ScriptPubKey...),
		})
	}
	return newTx
}
