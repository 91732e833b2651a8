// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/BOXFoundation/boxscript/core/types"
)

// PrevOutputFetcher looks up the output an input spends.
type PrevOutputFetcher interface {
	FetchPrevOutput(outPoint *types.OutPoint) (*types.TxOut, error)
}
