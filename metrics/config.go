// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package metrics

import "time"

// Config for metrics configuration
type Config struct {
	Enable   bool          `mapstructure:"enable"`
	Interval time.Duration `mapstructure:"interval"`
}

// DefaultConfig returns a disabled metrics configuration.
func DefaultConfig() Config {
	return Config{Interval: defaultInterval}
}
