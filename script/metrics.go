// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	metrics "github.com/BOXFoundation/boxscript/metrics"
)

// Metrics for script
var (
	metricsVerifySuccessCounter = metrics.NewCounter("box.script.verify.success")
	metricsVerifyFailureCounter = metrics.NewCounter("box.script.verify.failure")
	metricsVerifyTimer          = metrics.NewTimer("box.script.verify")

	metricsSigCacheHitCounter  = metrics.NewCounter("box.script.sigcache.hit")
	metricsSigCacheMissCounter = metrics.NewCounter("box.script.sigcache.miss")
)
