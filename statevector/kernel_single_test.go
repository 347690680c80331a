// Copyright 2025 The qsim Authors. SPDX-License-Identifier: Apache-2.0

package statevector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hadamard = []complex128{
	complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0),
	complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0),
}

func TestApplyDense1Hadamard(t *testing.T) {
	sv := New(1)
	sv.Initialize()
	sv.applyDense1(0, hadamard)

	got := sv.Vector()
	assert.InDelta(t, 1/math.Sqrt2, real(got[0]), 1e-12)
	assert.InDelta(t, 1/math.Sqrt2, real(got[1]), 1e-12)
}

func TestApplyXFlipsBasisState(t *testing.T) {
	sv := New(2)
	sv.Initialize()
	sv.ApplyX(0)
	assert.Equal(t, []complex128{0, 1, 0, 0}, sv.Vector())

	sv.ApplyX(0)
	sv.ApplyX(1)
	assert.Equal(t, []complex128{0, 0, 1, 0}, sv.Vector())
}

func TestApplyYOnBasisZero(t *testing.T) {
	sv := New(1)
	sv.Initialize()
	sv.ApplyY(0)
	got := sv.Vector()
	assert.Equal(t, complex128(0), got[0])
	assert.InDelta(t, 0, real(got[1]), 1e-12)
	assert.InDelta(t, 1, imag(got[1]), 1e-12)
}

func TestApplyZLeavesZeroUnchangedNegatesOne(t *testing.T) {
	sv := New(1)
	sv.Assign([]complex128{0.6, 0.8})
	sv.ApplyZ(0)
	assert.Equal(t, complex(0.6, 0.0), sv.Vector()[0])
	assert.Equal(t, complex(-0.8, 0.0), sv.Vector()[1])
}

func TestApplyDiagonal1MatchesDenseDiagonalMatrix(t *testing.T) {
	diag := []complex128{complex(0, 1), complex(0, -1)}
	dense := []complex128{diag[0], 0, 0, diag[1]}

	svA := New(1)
	svA.Assign([]complex128{0.6, 0.8})
	svA.applyDiagonal1(0, diag)

	svB := New(1)
	svB.Assign([]complex128{0.6, 0.8})
	svB.applyDense1(0, dense)

	assert.Equal(t, svA.Vector(), svB.Vector())
}

func TestApplyDense1PropagatesAcrossOuterQubits(t *testing.T) {
	// Applying H to qubit 1 of a 3-qubit |000> state must only mix the
	// amplitudes that differ in bit 1, leaving bit 0 and bit 2 untouched.
	sv := New(3)
	sv.Initialize()
	sv.applyDense1(1, hadamard)

	got := sv.Vector()
	assert.InDelta(t, 1/math.Sqrt2, real(got[0]), 1e-12)
	assert.InDelta(t, 1/math.Sqrt2, real(got[2]), 1e-12)
	for _, i := range []int{1, 3, 4, 5, 6, 7} {
		if i != 2 {
			assert.InDelta(t, 0, real(got[i]), 1e-12)
		}
	}
}
