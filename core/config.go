// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/BOXFoundation/boxscript/script"
)

// ValidatorConfig defines the configurations of a TxValidator.
type ValidatorConfig struct {
	// Workers is the number of inputs validated at the same time.
	Workers int `mapstructure:"workers"`
	// SigCacheSize is the number of verified signatures remembered; zero
	// disables the cache.
	SigCacheSize int `mapstructure:"sig_cache_size"`
}

// DefaultValidatorConfig returns the default validator configuration.
func DefaultValidatorConfig() ValidatorConfig {
	return ValidatorConfig{
		Workers:      DefaultValidatorWorkers,
		SigCacheSize: script.DefaultSigCacheSize,
	}
}
