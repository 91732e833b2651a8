// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package types

import "errors"

// Define error message
var (
	ErrTxTooLarge      = errors.New("transaction exceeds the maximum size")
	ErrTxTrailingBytes = errors.New("unexpected trailing bytes after transaction")
	ErrTooManyTxIns    = errors.New("too many transaction inputs to fit into max size")
	ErrTooManyTxOuts   = errors.New("too many transaction outputs to fit into max size")

	ErrInvalidPKHash        = errors.New("pkHash must be 20 bytes")
	ErrInvalidScriptHash    = errors.New("script hash must be 20 bytes")
	ErrInvalidAddressLength = errors.New("invalid address length")
	ErrUnknownAddressType   = errors.New("unknown address type")
)
