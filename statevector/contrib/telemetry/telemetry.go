// Copyright 2025 The qsim Authors. SPDX-License-Identifier: Apache-2.0

// Package telemetry records circuit-execution metrics with Prometheus, in
// the promauto registration style used elsewhere in the ecosystem for
// request/operation counters and latency histograms.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder observes gate applications as a circuit runs. Circuit.Run
// calls ObserveGate once per instruction and ObserveCircuit once per
// completed run; given a nil Recorder, Run substitutes NoOp(), which
// callers that don't want metrics may also pass directly.
type Recorder interface {
	ObserveGate(name string, numQubits int, duration time.Duration)
	ObserveCircuit(numInstructions int, duration time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveGate(string, int, time.Duration) {}
func (noopRecorder) ObserveCircuit(int, time.Duration)      {}

// NoOp returns a Recorder that discards every observation.
func NoOp() Recorder { return noopRecorder{} }

// PromRecorder implements Recorder with a counter and two histograms
// registered against a caller-supplied prometheus.Registerer.
type PromRecorder struct {
	gateApplications *prometheus.CounterVec
	gateDuration     *prometheus.HistogramVec
	circuitDuration  prometheus.Histogram
}

// NewPromRecorder registers its metrics against reg and returns a
// Recorder backed by them. reg is typically prometheus.DefaultRegisterer
// or a registry scoped to one qsimctl invocation.
func NewPromRecorder(reg prometheus.Registerer) *PromRecorder {
	factory := promauto.With(reg)
	return &PromRecorder{
		gateApplications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "qsim",
			Subsystem: "circuit",
			Name:      "gate_applications_total",
			Help:      "Number of gate applications, labeled by gate name.",
		}, []string{"gate"}),
		gateDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "qsim",
			Subsystem: "circuit",
			Name:      "gate_duration_seconds",
			Help:      "Wall-clock time spent applying a single gate.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12),
		}, []string{"gate"}),
		circuitDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "qsim",
			Subsystem: "circuit",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock time spent running an entire circuit.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (r *PromRecorder) ObserveGate(name string, numQubits int, d time.Duration) {
	r.gateApplications.WithLabelValues(name).Inc()
	r.gateDuration.WithLabelValues(name).Observe(d.Seconds())
}

func (r *PromRecorder) ObserveCircuit(numInstructions int, d time.Duration) {
	r.circuitDuration.Observe(d.Seconds())
}
