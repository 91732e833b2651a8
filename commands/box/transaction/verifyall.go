// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transactioncmd

import (
	"fmt"
	"io"

	"github.com/BOXFoundation/boxscript/commands/box/common"
	"github.com/BOXFoundation/boxscript/core"
	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/BOXFoundation/boxscript/script"
	"github.com/spf13/cobra"
)

func verifyAllCmdFunc(cmd *cobra.Command, args []string) error {
	cfg, vcfg, err := common.LoadVerificationConfig()
	if err != nil {
		return err
	}
	tx, err := common.ParseTxArg(args[0])
	if err != nil {
		return err
	}
	var prevScripts [][]byte
	for i, arg := range args[1:] {
		scriptPubKey, err := common.ParseHexArg(fmt.Sprintf("scriptPubKey %d", i), arg)
		if err != nil {
			return err
		}
		prevScripts = append(prevScripts, scriptPubKey)
	}
	return verifyAll(cmd.OutOrStdout(), tx, prevScripts, &cfg.Validator, vcfg)
}

// verifyAll validates all inputs of tx concurrently. prevScripts holds the
// scriptPubKey spent by each input, in input order.
func verifyAll(w io.Writer, tx *types.Transaction, prevScripts [][]byte,
	cfg *core.ValidatorConfig, vcfg script.VerificationConfig) error {

	if tx.IsCoinBase() {
		fmt.Fprintln(w, "coinbase: nothing to verify")
		return nil
	}
	if len(prevScripts) != len(tx.Vin) {
		return fmt.Errorf("got %d scriptPubKeys for %d inputs", len(prevScripts), len(tx.Vin))
	}

	utxoSet := core.NewUtxoSet()
	for i, txIn := range tx.Vin {
		// values play no part in script verification
		if err := utxoSet.AddOutput(txIn.PrevOutPoint, types.NewTxOut(0, prevScripts[i]), false); err != nil {
			return fmt.Errorf("input %d: %v", i, err)
		}
	}

	validator, err := core.NewTxValidator(cfg, vcfg, utxoSet, nil)
	if err != nil {
		return err
	}
	defer validator.Stop()

	if err := validator.Validate(tx); err != nil {
		fmt.Fprintf(w, "%d inputs: invalid\n", len(tx.Vin))
		return err
	}
	fmt.Fprintf(w, "%d inputs: valid\n", len(tx.Vin))
	return nil
}
