// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package core

import (
	metrics "github.com/BOXFoundation/boxscript/metrics"
)

// Metrics for core
var (
	// tx validator metrics
	metricsTxValidatorInputsMeter    = metrics.NewMeter("box.core.txvalidator.inputs")
	metricsTxValidatorWorkersGauge   = metrics.NewGauge("box.core.txvalidator.workers")
	metricsTxValidatorFailureCounter = metrics.NewCounter("box.core.txvalidator.failure")
	metricsTxValidatorTimer          = metrics.NewTimer("box.core.txvalidator.validate")
)
