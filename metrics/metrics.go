// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics periodic dump of the go-metrics registry into the log
package metrics

import (
	"context"
	"time"

	"github.com/BirthdayResearch/jellyfishsdk-sub005/types"
	log "github.com/inconshreveable/log15"
	gometrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "metrics")

// StartMetrics emit the default registry every cfg.Duration seconds until ctx is done
func StartMetrics(ctx context.Context, cfg *types.Metrics) {
	if cfg == nil || !cfg.EnableMetrics {
		mlog.Info("Metrics data is not enabled to emit")
		return
	}
	mlog.Info("StartMetrics", "duration", cfg.Duration)
	go Emit(ctx, gometrics.DefaultRegistry, time.Duration(cfg.Duration)*time.Second, mlog)
}

// Emit log every metric of r each freq
func Emit(ctx context.Context, r gometrics.Registry, freq time.Duration, logger log.Logger) {
	ticker := time.NewTicker(freq)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			LogOnce(r, logger)
		}
	}
}

// LogOnce write one line per metric
func LogOnce(r gometrics.Registry, logger log.Logger) {
	r.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case gometrics.Counter:
			logger.Info("counter", "name", name, "count", m.Count())
		case gometrics.Gauge:
			logger.Info("gauge", "name", name, "value", m.Value())
		case gometrics.Meter:
			s := m.Snapshot()
			logger.Info("meter", "name", name, "count", s.Count(), "rate1", s.Rate1(), "mean", s.RateMean())
		case gometrics.Timer:
			s := m.Snapshot()
			logger.Info("timer", "name", name, "count", s.Count(),
				"mean", time.Duration(s.Mean()), "max", time.Duration(s.Max()), "p99", time.Duration(s.Percentile(0.99)))
		case gometrics.Histogram:
			s := m.Snapshot()
			logger.Info("histogram", "name", name, "count", s.Count(), "mean", s.Mean(), "max", s.Max())
		}
	})
}
