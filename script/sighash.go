// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/BOXFoundation/boxscript/crypto"
	"github.com/BOXFoundation/boxscript/util"
	pool "github.com/libp2p/go-buffer-pool"
)

// SigHashType represents hash type bits at the end of a signature.
type SigHashType uint32

// Hash type bits from the end of a signature.
const (
	SigHashAll          SigHashType = 0x1
	SigHashNone         SigHashType = 0x2
	SigHashSingle       SigHashType = 0x3
	SigHashAnyOneCanPay SigHashType = 0x80

	// sigHashMask defines the number of bits of the hash type which is used
	// to identify which outputs are signed.
	sigHashMask = 0x1f
)

// String returns the flag names joined with a pipe, e.g. ALL|ANYONECANPAY.
func (t SigHashType) String() string {
	var base string
	switch t & sigHashMask {
	case SigHashAll:
		base = "ALL"
	case SigHashNone:
		base = "NONE"
	case SigHashSingle:
		base = "SINGLE"
	default:
		base = "UNKNOWN"
	}
	if t&SigHashAnyOneCanPay != 0 {
		return base + "|ANYONECANPAY"
	}
	return base
}

// ParseSigHashType reads a hash type written as String prints it, e.g.
// SINGLE|ANYONECANPAY, or as a number.
func ParseSigHashType(s string) (SigHashType, error) {
	if n, err := strconv.ParseUint(s, 0, 32); err == nil {
		return SigHashType(n), nil
	}
	var t SigHashType
	for _, flag := range strings.Split(strings.ToUpper(s), "|") {
		switch strings.TrimPrefix(strings.TrimSpace(flag), "SIGHASH_") {
		case "ALL":
			t |= SigHashAll
		case "NONE":
			t |= SigHashNone
		case "SINGLE":
			t |= SigHashSingle
		case "ANYONECANPAY":
			t |= SigHashAnyOneCanPay
		default:
			return 0, fmt.Errorf("unknown hash type %q", s)
		}
	}
	if t&sigHashMask == 0 || t&sigHashMask > SigHashSingle {
		return 0, fmt.Errorf("unknown hash type %q", s)
	}
	return t, nil
}

// oneHash is returned instead of a digest when the signed input does not
// exist, and under SIGHASH_SINGLE when it has no matching output.
var oneHash = crypto.HashType{0x01}

// CalcSignatureHash computes the digest signed by input txInIdx of tx.
// subscript is the part of the locking script committed to, normally the
// whole script or the part after the last OP_CODESEPARATOR.
func CalcSignatureHash(subscript []byte, hashType SigHashType, tx *types.Transaction, txInIdx int) (*crypto.HashType, error) {
	chunks, err := ParseChunks(subscript)
	if err != nil {
		return nil, err
	}
	return calcSignatureHash(chunks, hashType, tx, txInIdx)
}

func calcSignatureHash(subscript []Chunk, hashType SigHashType, tx *types.Transaction, txInIdx int) (*crypto.HashType, error) {
	if tx == nil || txInIdx < 0 || txInIdx >= len(tx.Vin) {
		hash := oneHash
		return &hash, nil
	}
	mode := hashType & sigHashMask
	if mode == SigHashSingle && txInIdx >= len(tx.Vout) {
		hash := oneHash
		return &hash, nil
	}

	// code separators never make it into the signed script
	scriptCode := SerializeChunks(FindAndDelete(subscript, OpChunk(OPCODESEPARATOR)))

	// construct a transaction from tx with the signed parts only
	txCopy := &types.Transaction{
		Version:  tx.Version,
		LockTime: tx.LockTime,
	}

	if hashType&SigHashAnyOneCanPay != 0 {
		txIn := tx.Vin[txInIdx]
		txCopy.Vin = []*types.TxIn{{
			PrevOutPoint: txIn.PrevOutPoint,
			ScriptSig:    scriptCode,
			Sequence:     txIn.Sequence,
		}}
	} else {
		txCopy.Vin = make([]*types.TxIn, len(tx.Vin))
		for i, txIn := range tx.Vin {
			in := &types.TxIn{PrevOutPoint: txIn.PrevOutPoint, Sequence: txIn.Sequence}
			if i == txInIdx {
				in.ScriptSig = scriptCode
			} else if mode == SigHashNone || mode == SigHashSingle {
				// let the others update at will
				in.Sequence = 0
			}
			txCopy.Vin[i] = in
		}
	}

	switch mode {
	case SigHashNone:
		txCopy.Vout = nil
	case SigHashSingle:
		txCopy.Vout = make([]*types.TxOut, txInIdx+1)
		for i := 0; i < txInIdx; i++ {
			txCopy.Vout[i] = &types.TxOut{Value: -1}
		}
		txCopy.Vout[txInIdx] = tx.Vout[txInIdx]
	default:
		txCopy.Vout = tx.Vout
	}

	var buf pool.Buffer
	defer buf.Reset()
	buf.Grow(txCopy.SerializeSize() + 4)
	if err := txCopy.Serialize(&buf); err != nil {
		return nil, err
	}
	if err := util.WriteUint32(&buf, uint32(hashType)); err != nil {
		return nil, err
	}
	hash := crypto.DoubleHashH(buf.Bytes())
	return &hash, nil
}
