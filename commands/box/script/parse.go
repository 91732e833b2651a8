// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptcmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BOXFoundation/boxscript/script"
	"github.com/BOXFoundation/boxscript/util"
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [asm]",
	Short: "Assemble a human readable script into hex",
	Long: `Assemble a script written as space separated words into hex.
Words are opcode names with or without the OP_ prefix, 0x prefixed raw bytes,
decimal numbers and 'quoted' strings. For example:

  box script parse "DUP HASH160 0x14 0x89abcdefabbaabbaabbaabbaabbaabbaabbaabba EQUALVERIFY CHECKSIG"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return errors.New("please specify the script to assemble")
		}
		return parse(cmd.OutOrStdout(), strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func parse(w io.Writer, asm string) error {
	s, err := script.ParseScriptString(asm)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, util.Hex(s.Bytes()))
	return nil
}
