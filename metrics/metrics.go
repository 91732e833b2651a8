// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package metrics

import (
	"time"

	"github.com/BOXFoundation/boxscript/log"
	metrics "github.com/rcrowley/go-metrics"
	"github.com/rcrowley/go-metrics/exp"
)

var logger = log.NewLogger("metrics")

const (
	defaultInterval = 10 * time.Second
)

func init() {
	exp.Exp(metrics.DefaultRegistry)
}

// logAdapter feeds go-metrics snapshots into the package logger.
type logAdapter struct{}

func (logAdapter) Printf(format string, v ...interface{}) {
	logger.Infof(format, v...)
}

// Run metrics monitor
func Run(config *Config) {
	if !config.Enable {
		return
	}
	interval := config.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	logger.Infof("metrics enabled, reporting every %v", interval)
	go metrics.Log(metrics.DefaultRegistry, interval, logAdapter{})
}

// NewCounter create a new metrics Counter
func NewCounter(name string) metrics.Counter {
	return metrics.GetOrRegisterCounter(name, metrics.DefaultRegistry)
}

// NewMeter create a new metrics Meter
func NewMeter(name string) metrics.Meter {
	return metrics.GetOrRegisterMeter(name, metrics.DefaultRegistry)
}

// NewTimer create a new metrics Timer
func NewTimer(name string) metrics.Timer {
	return metrics.GetOrRegisterTimer(name, metrics.DefaultRegistry)
}

// NewGauge create a new metrics Gauge
func NewGauge(name string) metrics.Gauge {
	return metrics.GetOrRegisterGauge(name, metrics.DefaultRegistry)
}

// NewHistogramWithUniformSample create a new metrics History with Uniform Sample algorithm.
func NewHistogramWithUniformSample(name string, reservoirSize int) metrics.Histogram {
	return metrics.GetOrRegisterHistogram(name, nil, metrics.NewUniformSample(reservoirSize))
}
