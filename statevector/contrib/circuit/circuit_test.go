// Copyright 2025 The qsim Authors. SPDX-License-Identifier: Apache-2.0

package circuit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavefunc/qsim/statevector"
	"github.com/wavefunc/qsim/statevector/contrib/gates"
	"github.com/wavefunc/qsim/statevector/contrib/telemetry"
)

func bellCircuit() *Circuit {
	return New(2).
		Append("h", []int{0}, gates.H).
		Append("cnot", []int{0, 1}, gates.CNOTDense)
}

func TestRunProducesBellState(t *testing.T) {
	sv := statevector.New(2)
	sv.Initialize()

	require.NoError(t, bellCircuit().Run(sv, telemetry.NoOp()))

	got := sv.Vector()
	assert.InDelta(t, 1/1.4142135623730951, real(got[0]), 1e-12)
	assert.InDelta(t, 0, real(got[1]), 1e-12)
	assert.InDelta(t, 0, real(got[2]), 1e-12)
	assert.InDelta(t, 1/1.4142135623730951, real(got[3]), 1e-12)
}

func TestRunAcceptsNilRecorder(t *testing.T) {
	sv := statevector.New(2)
	sv.Initialize()
	assert.NotPanics(t, func() {
		require.NoError(t, bellCircuit().Run(sv, nil))
	})
}

func TestRunRejectsQubitCountMismatch(t *testing.T) {
	sv := statevector.New(3)
	sv.Initialize()
	err := bellCircuit().Run(sv, telemetry.NoOp())
	require.Error(t, err)
}

func TestRunSurfacesInstructionErrorsAsError(t *testing.T) {
	sv := statevector.New(2)
	sv.Initialize()
	c := New(2).Append("bad", []int{0, 1}, make([]complex128, 3))

	err := c.Run(sv, telemetry.NoOp())
	require.Error(t, err)
}

func TestAppendGateResolvesNameAgainstStockGates(t *testing.T) {
	sv := statevector.New(2)
	sv.Initialize()

	c := New(2).
		AppendGate("H", []int{0}).
		AppendGate("CNOT", []int{0, 1})
	require.NoError(t, c.Run(sv, telemetry.NoOp()))

	got := sv.Vector()
	assert.InDelta(t, 1/1.4142135623730951, real(got[0]), 1e-12)
	assert.InDelta(t, 1/1.4142135623730951, real(got[3]), 1e-12)
}

func TestAppendGateResolvesParameterizedGate(t *testing.T) {
	sv := statevector.New(1)
	sv.Initialize()

	explicit := statevector.New(1)
	explicit.Initialize()
	explicit.ApplyMatrix([]int{0}, gates.RX(math.Pi/3))

	require.NoError(t, New(1).AppendGate("RX", []int{0}, math.Pi/3).Run(sv, telemetry.NoOp()))

	assert.Equal(t, explicit.Vector(), sv.Vector())
}

func TestAppendGateRejectsUnknownName(t *testing.T) {
	sv := statevector.New(1)
	sv.Initialize()
	err := New(1).AppendGate("frobnicate", []int{0}).Run(sv, telemetry.NoOp())
	require.Error(t, err)
}

func TestAppendGateRejectsMissingParams(t *testing.T) {
	sv := statevector.New(1)
	sv.Initialize()
	err := New(1).AppendGate("RX", []int{0}).Run(sv, telemetry.NoOp())
	require.Error(t, err)
}
