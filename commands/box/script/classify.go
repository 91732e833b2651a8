// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptcmd

import (
	"errors"
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

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify [script hex]",
	Short: "Show the class, address and signature operations of a script",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New("please specify the script to classify")
		}
		network := viper.GetString("network")
		net, ok := types.NetParams(network)
		if !ok {
			return fmt.Errorf("incorrect network name %s", network)
		}
		return classify(cmd.OutOrStdout(), args[0], net)
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func classify(w io.Writer, scriptHex string, net *chaincfg.Params) error {
	raw, err := common.ParseHexArg("script", scriptHex)
	if err != nil {
		return err
	}
	s := script.NewScriptFromBytes(raw)
	class := s.Class()
	fmt.Fprintf(w, "class: %s\n", class)
	fmt.Fprintf(w, "push only: %t\n", s.IsPushOnly())
	fmt.Fprintf(w, "sigops: %d\n", s.GetSigOpCount())
	if addr, err := s.ExtractAddress(net); err == nil {
		fmt.Fprintf(w, "address: %s\n", addr.EncodeAddress())
	}
	if class == script.MultiSigTy {
		info, err := s.MultisigInfo()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "multisig: %d of %d\n", info.RequiredSigs, info.NumPubKeys)
	}
	for _, data := range s.Capture() {
		fmt.Fprintf(w, "data: %s\n", util.Hex(data))
	}
	return nil
}
