// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package root

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/BOXFoundation/boxscript/config"
	"github.com/BOXFoundation/boxscript/core"
	"github.com/BOXFoundation/boxscript/log"
	"github.com/BOXFoundation/boxscript/script"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// root command
var cfgFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "box",
	Short: "BOX transaction script toolbox",
	Long: `Inspect and verify Bitcoin-style transaction scripts
and the transactions that carry them.`,
	Example: `
1. commands about scripts
  ./box script [command]
2. commands about transactions
  ./box tx [command]
3. verify with the lenient signature policy
  ./box tx verify <tx hex> 0 <script hex> --sig-encoding lenient
	`,
	Version:      fmt.Sprintf("%s %s(%s) %s\n", config.Version, config.GitCommit, config.GitBranch, config.GoVersion),
	SilenceUsage: true,
}

var logger = log.NewLogger("cmd")

// init sets flags appropriately.
func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is nil)")

	RootCmd.PersistentFlags().StringP("network", "n", "mainnet", "network name [mainnet|testnet|regtest|simnet]")
	viper.BindPFlag("network", RootCmd.PersistentFlags().Lookup("network"))

	RootCmd.PersistentFlags().String("workspace", "", "work directory for box (default ~/.boxscript)")
	viper.BindPFlag("workspace", RootCmd.PersistentFlags().Lookup("workspace"))

	RootCmd.PersistentFlags().String("log-level", "error", "log level [debug|info|warn|error|fatal]")
	viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level"))

	RootCmd.PersistentFlags().Bool("p2sh", true, "evaluate pay-to-script-hash redeem scripts")
	viper.BindPFlag("script.verify_p2sh", RootCmd.PersistentFlags().Lookup("p2sh"))

	RootCmd.PersistentFlags().Bool("unsafe-opcodes", false, "allow the disabled splice, bitwise and arithmetic op codes")
	viper.BindPFlag("script.enable_unsafe_opcodes", RootCmd.PersistentFlags().Lookup("unsafe-opcodes"))

	RootCmd.PersistentFlags().String("sig-encoding", script.SigEncodingStrict.String(), "signature encoding policy [strict|lenient]")
	viper.BindPFlag("script.sig_encoding", RootCmd.PersistentFlags().Lookup("sig-encoding"))

	RootCmd.PersistentFlags().Bool("even-s", false, "require even S values in signatures under the strict policy")
	viper.BindPFlag("script.verify_even_s", RootCmd.PersistentFlags().Lookup("even-s"))

	RootCmd.PersistentFlags().Int("workers", core.DefaultValidatorWorkers, "number of concurrent input validators")
	viper.BindPFlag("validator.workers", RootCmd.PersistentFlags().Lookup("workers"))

	RootCmd.PersistentFlags().Int("sig-cache-size", script.DefaultSigCacheSize, "number of cached signature verifications, 0 disables")
	viper.BindPFlag("validator.sig_cache_size", RootCmd.PersistentFlags().Lookup("sig-cache-size"))

	RootCmd.PersistentFlags().Bool("metrics", false, "periodically log verification metrics")
	viper.BindPFlag("metrics.enable", RootCmd.PersistentFlags().Lookup("metrics"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	logger.SetLogLevel(viper.GetString("log.level"))

	// Find home directory.
	home, err := homedir.Dir()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("box")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	viper.SetDefault("workspace", path.Join(home, ".boxscript"))

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logger.Infof("Using config file: %s", viper.ConfigFileUsed())
	}
}
