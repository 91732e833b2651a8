// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package util

import "errors"

// error
var (
	ErrVarBytesTooLong = errors.New("variable length bytes exceed the maximum size")
)
