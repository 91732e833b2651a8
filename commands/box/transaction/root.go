// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transactioncmd

import (
	"fmt"
	"strconv"

	root "github.com/BOXFoundation/boxscript/commands/box/root"
	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/spf13/cobra"
)

// rootCmd represents the tx command
var rootCmd = &cobra.Command{
	Use:   "tx [command]",
	Short: "Decode, hash and verify transactions",
}

// Init adds the sub command to the root command.
func init() {
	root.RootCmd.AddCommand(rootCmd)
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "decode [tx hex]",
			Short: "Decode a hex serialized transaction",
			Args:  cobra.ExactArgs(1),
			RunE:  decodeCmdFunc,
		},
		&cobra.Command{
			Use:   "sighash [tx hex] [input index] [subscript hex] [hash type]",
			Short: "Compute the digest an input signature commits to",
			Args:  cobra.ExactArgs(4),
			RunE:  sighashCmdFunc,
		},
		verifyCmd,
		&cobra.Command{
			Use:   "verifyall [tx hex] [prev scriptPubKey hex]...",
			Short: "Verify every input of a transaction, one spent scriptPubKey per input",
			Args:  cobra.MinimumNArgs(1),
			RunE:  verifyAllCmdFunc,
		},
	)
}

// parseIndex parses a non-negative input index. The index may lie past the
// inputs of the transaction.
func parseIndex(arg string) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid input index %s: %v", arg, err)
	}
	if idx < 0 {
		return 0, fmt.Errorf("input index %d is negative", idx)
	}
	return idx, nil
}

// parseInputIndex parses an input index and checks it against tx.
func parseInputIndex(tx *types.Transaction, arg string) (int, error) {
	idx, err := parseIndex(arg)
	if err != nil {
		return 0, err
	}
	if idx >= len(tx.Vin) {
		return 0, fmt.Errorf("input index %d out of range, tx has %d inputs", idx, len(tx.Vin))
	}
	return idx, nil
}
