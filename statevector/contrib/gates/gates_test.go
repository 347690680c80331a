// Copyright 2025 The qsim Authors. SPDX-License-Identifier: Apache-2.0

package gates

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wavefunc/qsim/statevector"
)

func TestHadamardTwiceIsIdentity(t *testing.T) {
	sv := statevector.New(1)
	sv.Initialize()
	sv.ApplyMatrix([]int{0}, H)
	sv.ApplyMatrix([]int{0}, H)

	got := sv.Vector()
	assert.InDelta(t, 1, real(got[0]), 1e-12)
	assert.InDelta(t, 0, real(got[1]), 1e-12)
}

func TestRZLeavesProbabilitiesUnchanged(t *testing.T) {
	sv := statevector.New(1)
	sv.Assign([]complex128{0.6, 0.8})
	sv.ApplyDiagonal([]int{0}, RZ(1.23))

	assert.InDelta(t, 0.36, sv.Probability(0), 1e-12)
	assert.InDelta(t, 0.64, sv.Probability(1), 1e-12)
}

func TestPhaseZeroIsIdentity(t *testing.T) {
	sv := statevector.New(1)
	sv.Assign([]complex128{0.6, 0.8})
	sv.ApplyDiagonal([]int{0}, Phase(0))
	assert.Equal(t, []complex128{0.6, 0.8}, sv.Vector())
}

func TestControlledIdentityIsIdentity(t *testing.T) {
	identity := []complex128{1, 0, 0, 1}
	c := Controlled(identity)
	assert := assert.New(t)
	assert.Len(c, 16)
	for i := 0; i < 4; i++ {
		assert.Equal(complex128(1), c[i+4*i])
	}
}

func TestToffoliFlipsOnlyWhenBothControlsSet(t *testing.T) {
	sv := statevector.New(3)
	// ctrl0=qubit0=1, ctrl1=qubit1=1, trgt=qubit2=0 -> index 3
	v := make([]complex128, 8)
	v[3] = 1
	sv.Assign(v)
	sv.ApplyMatrix([]int{0, 1, 2}, Toffoli)

	got := sv.Vector()
	assert.Equal(t, complex128(1), got[7])
	assert.Equal(t, complex128(0), got[3])
}

func TestSWAPDenseMatchesApplySWAP(t *testing.T) {
	sv1 := statevector.New(2)
	sv1.Assign([]complex128{0, 1, 0, 0})
	sv1.ApplySWAP(0, 1)

	sv2 := statevector.New(2)
	sv2.Assign([]complex128{0, 1, 0, 0})
	sv2.ApplyMatrix([]int{0, 1}, SWAPDense)

	assert.Equal(t, sv1.Vector(), sv2.Vector())
}
