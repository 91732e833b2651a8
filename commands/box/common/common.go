// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package common

import (
	"fmt"

	"github.com/BOXFoundation/boxscript/config"
	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/BOXFoundation/boxscript/log"
	"github.com/BOXFoundation/boxscript/metrics"
	"github.com/BOXFoundation/boxscript/script"
	"github.com/BOXFoundation/boxscript/util"
	"github.com/spf13/viper"
)

// LoadConfig reads the configuration gathered by viper, prepares it and
// sets up logging and metrics accordingly.
func LoadConfig() (*config.Config, error) {
	cfg := config.Default()
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Prepare(); err != nil {
		return nil, err
	}
	log.Setup(&cfg.Log)
	metrics.Run(&cfg.Metrics)
	return &cfg, nil
}

// LoadVerificationConfig returns the configuration and the script policy it
// describes.
func LoadVerificationConfig() (*config.Config, script.VerificationConfig, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, script.VerificationConfig{}, err
	}
	vcfg, err := cfg.Script.VerificationConfig()
	if err != nil {
		return nil, script.VerificationConfig{}, err
	}
	return cfg, vcfg, nil
}

// ParseHexArg decodes a hex command line argument.
func ParseHexArg(name, arg string) ([]byte, error) {
	data, err := util.FromHex(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %v", name, err)
	}
	return data, nil
}

// ParseTxArg decodes a hex serialized transaction argument.
func ParseTxArg(arg string) (*types.Transaction, error) {
	tx, err := types.NewTxFromHex(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction: %v", err)
	}
	return tx, nil
}
