// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transactioncmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BOXFoundation/boxscript/commands/box/common"
	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/BOXFoundation/boxscript/script"
	"github.com/BOXFoundation/boxscript/util"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type txInView struct {
	PrevOutPoint string `json:"prev_out_point"`
	ScriptSig    string `json:"script_sig"`
	Asm          string `json:"asm"`
	Sequence     uint32 `json:"sequence"`
	Signatures   int    `json:"signatures"`
}

type txOutView struct {
	Value        int64  `json:"value"`
	ScriptPubKey string `json:"script_pub_key"`
	Asm          string `json:"asm"`
	Class        string `json:"class"`
	Address      string `json:"address,omitempty"`
}

type txView struct {
	TxID     string       `json:"txid"`
	Version  int32        `json:"version"`
	Size     int          `json:"size"`
	CoinBase bool         `json:"coinbase"`
	Vin      []*txInView  `json:"vin"`
	Vout     []*txOutView `json:"vout"`
	LockTime uint32       `json:"lock_time"`
}

func decodeCmdFunc(cmd *cobra.Command, args []string) error {
	tx, err := common.ParseTxArg(args[0])
	if err != nil {
		return err
	}
	network := viper.GetString("network")
	net, ok := types.NetParams(network)
	if !ok {
		return fmt.Errorf("incorrect network name %s", network)
	}
	return decode(cmd.OutOrStdout(), tx, net)
}

func newTxView(tx *types.Transaction, net *chaincfg.Params) (*txView, error) {
	txHash, err := tx.TxHash()
	if err != nil {
		return nil, err
	}
	view := &txView{
		TxID:     txHash.String(),
		Version:  tx.Version,
		Size:     tx.SerializeSize(),
		CoinBase: tx.IsCoinBase(),
		LockTime: tx.LockTime,
	}
	for _, txIn := range tx.Vin {
		scriptSig := script.NewScriptFromBytes(txIn.ScriptSig)
		in := &txInView{
			PrevOutPoint: fmt.Sprintf("%v:%d", txIn.PrevOutPoint.Hash, txIn.PrevOutPoint.Index),
			ScriptSig:    util.Hex(txIn.ScriptSig),
			Asm:          scriptSig.Disasm(),
			Sequence:     txIn.Sequence,
		}
		if !view.CoinBase {
			in.Signatures = scriptSig.CountSignatures()
		}
		view.Vin = append(view.Vin, in)
	}
	for _, txOut := range tx.Vout {
		scriptPubKey := script.NewScriptFromBytes(txOut.ScriptPubKey)
		out := &txOutView{
			Value:        txOut.Value,
			ScriptPubKey: util.Hex(txOut.ScriptPubKey),
			Asm:          scriptPubKey.Disasm(),
			Class:        scriptPubKey.Class().String(),
		}
		if addr, err := scriptPubKey.ExtractAddress(net); err == nil {
			out.Address = addr.EncodeAddress()
		}
		view.Vout = append(view.Vout, out)
	}
	return view, nil
}

func decode(w io.Writer, tx *types.Transaction, net *chaincfg.Params) error {
	view, err := newTxView(tx, net)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(data))
	return nil
}
