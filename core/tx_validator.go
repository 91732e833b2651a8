// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	"sync"
	"time"

	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/BOXFoundation/boxscript/log"
	"github.com/BOXFoundation/boxscript/script"
	"github.com/jbenet/goprocess"
)

var logger = log.NewLogger("core") // logger

// txValidateItem holds a transaction along with which input to validate.
type txValidateItem struct {
	txInIndex int
	txIn      *types.TxIn
	tx        *types.Transaction
}

// validateJob carries the channels of one Validate call. The quit channel is
// closed when the call returns so that handlers still running exit.
type validateJob struct {
	validateChan chan *txValidateItem
	quitChan     chan struct{}
	resultChan   chan error
}

// TxValidator validates the inputs of a transaction concurrently. Handlers
// run as children of the validator's process; closing it aborts all pending
// validations.
type TxValidator struct {
	mtx     sync.RWMutex
	proc    goprocess.Process
	workers int
	fetcher PrevOutputFetcher
	cfg     script.VerificationConfig
}

// NewTxValidator creates a validator looking up spent outputs with fetcher.
// A signature cache of cfg.SigCacheSize entries is attached unless vcfg
// already carries one.
func NewTxValidator(cfg *ValidatorConfig, vcfg script.VerificationConfig,
	fetcher PrevOutputFetcher, parent goprocess.Process) (*TxValidator, error) {

	if err := vcfg.Validate(); err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = DefaultValidatorWorkers
	}
	if workers < 0 || workers > MaxValidatorWorkers {
		return nil, ErrInvalidWorkers
	}
	if vcfg.SigCache == nil && cfg.SigCacheSize > 0 {
		sigCache, err := script.NewSigCache(cfg.SigCacheSize)
		if err != nil {
			return nil, err
		}
		vcfg.SigCache = sigCache
	}
	if parent == nil {
		parent = goprocess.Background()
	}

	return &TxValidator{
		proc:    goprocess.WithParent(parent),
		workers: workers,
		fetcher: fetcher,
		cfg:     vcfg,
	}, nil
}

// Stop aborts running validations and waits for their handlers to exit.
func (v *TxValidator) Stop() error {
	v.mtx.Lock()
	defer v.mtx.Unlock()
	return v.proc.Close()
}

// Validate verifies every input of tx against the output it spends. Coinbase
// transactions spend nothing and always pass. The first failing input aborts
// the remaining work and is returned as an *InputError.
func (v *TxValidator) Validate(tx *types.Transaction) error {
	if len(tx.Vin) == 0 {
		return ErrNoTxInputs
	}
	// Skip coinbases.
	if tx.IsCoinBase() {
		return nil
	}

	items := make([]*txValidateItem, 0, len(tx.Vin))
	for txInIdx, txIn := range tx.Vin {
		items = append(items, &txValidateItem{
			txInIndex: txInIdx,
			txIn:      txIn,
			tx:        tx,
		})
	}

	start := time.Now()
	err := v.validate(items)
	metricsTxValidatorTimer.UpdateSince(start)
	if err != nil {
		metricsTxValidatorFailureCounter.Inc(1)
		if txHash, hashErr := tx.TxHash(); hashErr == nil {
			logger.Warnf("Failed to validate tx %v: %v", txHash, err)
		}
	}
	return err
}

func (v *TxValidator) validate(items []*txValidateItem) error {
	job := &validateJob{
		validateChan: make(chan *txValidateItem),
		quitChan:     make(chan struct{}),
		resultChan:   make(chan error),
	}
	defer close(job.quitChan)

	maxGoRoutines := v.workers
	if maxGoRoutines > len(items) {
		maxGoRoutines = len(items)
	}
	if err := v.startHandlers(job, maxGoRoutines); err != nil {
		return err
	}
	metricsTxValidatorWorkersGauge.Update(int64(maxGoRoutines))

	// Only send items while there are still items that need to be processed.
	// The select statement never selects a nil channel.
	numInputs := len(items)
	currentItem := 0
	processedItems := 0
	for processedItems < numInputs {
		var validateChan chan *txValidateItem
		var item *txValidateItem
		if currentItem < numInputs {
			validateChan = job.validateChan
			item = items[currentItem]
		}

		select {
		case validateChan <- item:
			currentItem++

		case err := <-job.resultChan:
			processedItems++
			if err != nil {
				return err
			}

		case <-v.proc.Closing():
			return ErrValidatorClosed
		}
	}
	return nil
}

func (v *TxValidator) startHandlers(job *validateJob, n int) error {
	v.mtx.RLock()
	defer v.mtx.RUnlock()
	select {
	case <-v.proc.Closing():
		return ErrValidatorClosed
	default:
	}
	for i := 0; i < n; i++ {
		v.proc.Go(func(p goprocess.Process) {
			v.validateHandler(job, p)
		})
	}
	return nil
}

// validateHandler consumes items to validate and reports each result until
// the job or the process quits.
func (v *TxValidator) validateHandler(job *validateJob, p goprocess.Process) {
	for {
		select {
		case item := <-job.validateChan:
			result := v.validateInput(item)
			select {
			case job.resultChan <- result:
			case <-job.quitChan:
				return
			case <-p.Closing():
				return
			}

		case <-job.quitChan:
			return

		case <-p.Closing():
			return
		}
	}
}

func (v *TxValidator) validateInput(item *txValidateItem) error {
	prevOut, err := v.fetcher.FetchPrevOutput(&item.txIn.PrevOutPoint)
	if err != nil {
		return &InputError{TxInIdx: item.txInIndex, Err: err}
	}
	if prevOut == nil {
		return &InputError{TxInIdx: item.txInIndex, Err: ErrMissingTxOut}
	}

	metricsTxValidatorInputsMeter.Mark(1)
	if ok, err := script.VerifyInput(item.tx, item.txInIndex, prevOut.ScriptPubKey, v.cfg); !ok {
		return &InputError{TxInIdx: item.txInIndex, Err: err}
	}
	return nil
}
