// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transactioncmd

import (
	"fmt"
	"io"

	"github.com/BOXFoundation/boxscript/commands/box/common"
	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/BOXFoundation/boxscript/script"
	"github.com/BOXFoundation/boxscript/util"
	"github.com/spf13/cobra"
)

func sighashCmdFunc(cmd *cobra.Command, args []string) error {
	tx, err := common.ParseTxArg(args[0])
	if err != nil {
		return err
	}
	// an index past the inputs yields the fixed digest 0x01
	txInIdx, err := parseIndex(args[1])
	if err != nil {
		return err
	}
	subscript, err := common.ParseHexArg("subscript", args[2])
	if err != nil {
		return err
	}
	hashType, err := script.ParseSigHashType(args[3])
	if err != nil {
		return err
	}
	return sighash(cmd.OutOrStdout(), tx, txInIdx, subscript, hashType)
}

// sighash prints the digest in signing byte order.
func sighash(w io.Writer, tx *types.Transaction, txInIdx int, subscript []byte, hashType script.SigHashType) error {
	hash, err := script.CalcSignatureHash(subscript, hashType, tx, txInIdx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, util.Hex(hash[:]))
	return nil
}
