// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/cpmech/gaf/ana"
	"github.com/cpmech/gaf/prm"
	"github.com/cpmech/gaf/roots"
	"github.com/cpmech/gosl/chk"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects counts and timings of evaluations
type Metrics struct {
	Registry *prometheus.Registry

	evals    *prometheus.CounterVec
	errs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics returns metrics registered in a new registry
func NewMetrics() *Metrics {
	o := &Metrics{
		Registry: prometheus.NewRegistry(),
		evals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gaf_evaluations_total",
			Help: "Number of outputs computed.",
		}, []string{"solution", "output"}),
		errs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gaf_errors_total",
			Help: "Number of failures by class.",
		}, []string{"solution", "class"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gaf_evaluation_seconds",
			Help:    "Time spent computing one output.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"solution"}),
	}
	o.Registry.MustRegister(o.evals, o.errs, o.duration)
	return o
}

// Observe records a successful evaluation
func (o *Metrics) Observe(solution, output string, d time.Duration) {
	o.evals.WithLabelValues(solution, output).Inc()
	o.duration.WithLabelValues(solution).Observe(d.Seconds())
}

// Fail records a failure
func (o *Metrics) Fail(solution string, err error) {
	o.errs.WithLabelValues(solution, Class(err)).Inc()
}

// WriteTextfile writes all metrics in the text exposition format
func (o *Metrics) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return chk.Err("cannot create directory for metrics file:\n%v", err)
	}
	if err := prometheus.WriteToTextfile(path, o.Registry); err != nil {
		return chk.Err("cannot write metrics file:\n%v", err)
	}
	return nil
}

// Class returns the category of err: parameter, input, boundary, kind, dry, maxit or other
func Class(err error) string {
	var perr *prm.Error
	switch {
	case errors.As(err, &perr):
		return "parameter"
	case errors.Is(err, ana.ErrDry):
		return "dry"
	case errors.Is(err, roots.ErrMaxIt):
		return "maxit"
	case errors.Is(err, ana.ErrKind):
		return "kind"
	case errors.Is(err, ana.ErrBoundary):
		return "boundary"
	case errors.Is(err, ana.ErrInput):
		return "input"
	}
	return "other"
}
