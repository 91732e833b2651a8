// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

// const defines constants
const (
	// DefaultValidatorWorkers is the number of inputs validated concurrently
	// when no worker count is configured.
	DefaultValidatorWorkers = 8

	// MaxValidatorWorkers caps the worker count of a TxValidator.
	MaxValidatorWorkers = 256
)
