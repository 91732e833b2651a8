// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptcmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/BOXFoundation/boxscript/commands/box/common"
	"github.com/BOXFoundation/boxscript/script"
	"github.com/spf13/cobra"
)

// disasmCmd represents the disasm command
var disasmCmd = &cobra.Command{
	Use:   "disasm [script hex]",
	Short: "Disassemble a hex encoded script",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New("please specify the script to disassemble")
		}
		return disasm(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(disasmCmd)
}

func disasm(w io.Writer, scriptHex string) error {
	raw, err := common.ParseHexArg("script", scriptHex)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, script.NewScriptFromBytes(raw).Disasm())
	return nil
}
