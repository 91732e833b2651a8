// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transactioncmd

import (
	"fmt"
	"io"

	"github.com/BOXFoundation/boxscript/commands/box/common"
	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/BOXFoundation/boxscript/log"
	"github.com/BOXFoundation/boxscript/script"
	"github.com/spf13/cobra"
)

var logger = log.NewLogger("txcmd")

var hashTypeFlag string

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [tx hex] [input index] [scriptPubKey hex]",
	Short: "Verify one input of a transaction against the scriptPubKey it spends",
	Long: `Verify one input of a transaction against the scriptPubKey it spends.
Signatures carry their own hash type unless --hash-type is given, in which
case a signature ending in a zero byte is checked with that hash type.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, vcfg, err := common.LoadVerificationConfig()
		if err != nil {
			return err
		}
		tx, err := common.ParseTxArg(args[0])
		if err != nil {
			return err
		}
		txInIdx, err := parseInputIndex(tx, args[1])
		if err != nil {
			return err
		}
		scriptPubKey, err := common.ParseHexArg("scriptPubKey", args[2])
		if err != nil {
			return err
		}
		var hashType script.SigHashType
		if hashTypeFlag != "" {
			if hashType, err = script.ParseSigHashType(hashTypeFlag); err != nil {
				return err
			}
		}
		return verify(cmd.OutOrStdout(), tx, txInIdx, scriptPubKey, hashType, vcfg)
	},
}

func init() {
	verifyCmd.Flags().StringVar(&hashTypeFlag, "hash-type", "", "hash type used for signatures without one, e.g. ALL|ANYONECANPAY")
}

func verify(w io.Writer, tx *types.Transaction, txInIdx int, scriptPubKey []byte,
	hashType script.SigHashType, vcfg script.VerificationConfig) error {

	logger.Debugf("verify input %d with %+v", txInIdx, vcfg)
	ok, err := script.Verify(tx.Vin[txInIdx].ScriptSig, scriptPubKey, tx, txInIdx, hashType, vcfg)
	if !ok {
		fmt.Fprintf(w, "input %d: invalid\n", txInIdx)
		return err
	}
	fmt.Fprintf(w, "input %d: valid\n", txInIdx)
	return nil
}
