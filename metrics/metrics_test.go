// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package metrics

import (
	"testing"
	"time"

	"github.com/facebookgo/ensure"
)

func TestRegistryReuse(t *testing.T) {
	c1 := NewCounter("box.test.counter")
	c2 := NewCounter("box.test.counter")
	c1.Inc(2)
	ensure.DeepEqual(t, c2.Count(), c1.Count())

	g := NewGauge("box.test.gauge")
	g.Update(7)
	ensure.DeepEqual(t, NewGauge("box.test.gauge").Value(), int64(7))

	h := NewHistogramWithUniformSample("box.test.histogram", 16)
	h.Update(3)
	h.Update(5)
	ensure.DeepEqual(t, h.Count(), int64(2))
	ensure.DeepEqual(t, h.Max(), int64(5))

	tm := NewTimer("box.test.timer")
	tm.Update(time.Millisecond)
	ensure.DeepEqual(t, tm.Count(), int64(1))

	m := NewMeter("box.test.meter")
	m.Mark(3)
	ensure.DeepEqual(t, m.Count(), int64(3))
}

func TestRunDisabled(t *testing.T) {
	cfg := DefaultConfig()
	ensure.False(t, cfg.Enable)
	Run(&cfg)
}
