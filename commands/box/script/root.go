// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scriptcmd

import (
	root "github.com/BOXFoundation/boxscript/commands/box/root"
	"github.com/spf13/cobra"
)

// rootCmd represents the script command
var rootCmd = &cobra.Command{
	Use:   "script [command]",
	Short: "Inspect and assemble scripts",
}

func init() {
	root.RootCmd.AddCommand(rootCmd)
}
