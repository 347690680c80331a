// Copyright 2025 The qsim Authors. SPDX-License-Identifier: Apache-2.0

// Command qsimctl builds and runs a small fixed circuit against the
// statevector kernel, samples measurement outcomes, and optionally
// serves Prometheus metrics while it runs.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"strconv"

	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wavefunc/qsim/statevector"
	"github.com/wavefunc/qsim/statevector/contrib/circuit"
	"github.com/wavefunc/qsim/statevector/contrib/gates"
	"github.com/wavefunc/qsim/statevector/contrib/telemetry"
)

func main() {
	circuitName := flag.String("circuit", "bell", "circuit to run: bell or ghz")
	numQubits := flag.Int("qubits", 2, "number of qubits (ghz only; bell is always 2)")
	shots := flag.Int("shots", 1000, "number of measurement samples to draw")
	serveMetrics := flag.Bool("serve-metrics", false, "start a Prometheus metrics HTTP server")
	flag.Parse()

	var cfg Config
	if err := envconfig.Process("QSIM", &cfg); err != nil {
		fmt.Fprintln(os.Stderr, "qsimctl: reading environment:", err)
		os.Exit(1)
	}
	if err := ValidateConfig(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "qsimctl: invalid configuration:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	registry := prometheus.NewRegistry()
	rec := telemetry.NewPromRecorder(registry)

	if *serveMetrics {
		go func() {
			logger.Info("starting metrics server", "address", cfg.MetricsAddr)
			http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
			if err := http.ListenAndServe(cfg.MetricsAddr, nil); err != nil {
				logger.Error("metrics server exited", "error", err)
			}
		}()
	}

	c, sv, err := buildCircuit(*circuitName, *numQubits)
	if err != nil {
		fmt.Fprintln(os.Stderr, "qsimctl:", err)
		os.Exit(1)
	}
	sv.SetOMPThreshold(cfg.OMPThreshold)
	sv.SetOMPThreads(cfg.OMPThreads)

	if err := c.Run(sv, rec); err != nil {
		logger.Error("circuit run failed", "error", err)
		os.Exit(1)
	}

	rnds := make([]float64, *shots)
	for i := range rnds {
		rnds[i] = rand.Float64()
	}
	outcomes := sv.SampleMeasure(rnds)

	counts := make(map[int]int)
	for _, o := range outcomes {
		counts[o]++
	}
	logger.Info("circuit complete", "circuit", *circuitName, "num_qubits", sv.NumQubits(), "shots", *shots)
	for state := 0; state < sv.Size(); state++ {
		if counts[state] == 0 {
			continue
		}
		fmt.Printf("%s: %d\n", basisLabel(state, sv.NumQubits()), counts[state])
	}
}

func buildCircuit(name string, numQubits int) (*circuit.Circuit, *statevector.StateVector, error) {
	switch name {
	case "bell":
		sv := statevector.New(2)
		sv.Initialize()
		c := circuit.New(2).
			Append("h", []int{0}, gates.H).
			Append("cnot", []int{0, 1}, gates.CNOTDense)
		return c, sv, nil
	case "ghz":
		if numQubits < 2 {
			return nil, nil, fmt.Errorf("ghz circuit needs at least 2 qubits, got %d", numQubits)
		}
		sv := statevector.New(numQubits)
		sv.Initialize()
		c := circuit.New(numQubits).Append("h", []int{0}, gates.H)
		for q := 0; q < numQubits-1; q++ {
			c.Append("cnot", []int{q, q + 1}, gates.CNOTDense)
		}
		return c, sv, nil
	default:
		return nil, nil, fmt.Errorf("unknown circuit %q, want bell or ghz", name)
	}
}

func basisLabel(state, numQubits int) string {
	label := strconv.FormatInt(int64(state), 2)
	for len(label) < numQubits {
		label = "0" + label
	}
	return label
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
