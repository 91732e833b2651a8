// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package box

import (
	"fmt"
	"os"

	root "github.com/BOXFoundation/boxscript/commands/box/root"
	_ "github.com/BOXFoundation/boxscript/commands/box/script"      // init script cmd
	_ "github.com/BOXFoundation/boxscript/commands/box/transaction" // init tx cmd
)

// Execute is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := root.RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
