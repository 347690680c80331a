// Copyright 2025 The qsim Authors. SPDX-License-Identifier: Apache-2.0

package statevector

// This file implements spec.md §4.3: the single-qubit dense/diagonal
// kernel and the Pauli-X/Y/Z fast paths, built from two nested strided
// loops rather than the bit index generator (K=1 is simple enough that
// materializing a mask table would only add overhead).

func (s *StateVector) applyDense1(q int, mat []complex128) {
	if q < 0 || q >= s.numQubits {
		failQubitRange("applyDense1", q, s.numQubits)
	}
	if len(mat) != 4 {
		failDimension("applyDense1", "expected a 4-element (2x2) matrix, got %d", len(mat))
	}
	m00, m10, m01, m11 := mat[0], mat[1], mat[2], mat[3]

	stride := uint64(1) << uint(q)
	outer := 2 * stride
	n := uint64(len(s.buf))
	numOuter := int(n / outer)

	body := func(start, end int) {
		for o := start; o < end; o++ {
			k1 := uint64(o) * outer
			for k2 := uint64(0); k2 < stride; k2++ {
				i0 := k1 | k2
				i1 := i0 | stride
				a, b := s.buf[i0], s.buf[i1]
				s.buf[i0] = m00*a + m01*b
				s.buf[i1] = m10*a + m11*b
			}
		}
	}
	s.ompPoolOrNil().parallelFor(numOuter, body)
}

func (s *StateVector) applyDiagonal1(q int, diag []complex128) {
	if q < 0 || q >= s.numQubits {
		failQubitRange("applyDiagonal1", q, s.numQubits)
	}
	if len(diag) != 2 {
		failDimension("applyDiagonal1", "expected a 2-element diagonal, got %d", len(diag))
	}
	d0, d1 := diag[0], diag[1]

	stride := uint64(1) << uint(q)
	outer := 2 * stride
	n := uint64(len(s.buf))
	numOuter := int(n / outer)

	body := func(start, end int) {
		for o := start; o < end; o++ {
			k1 := uint64(o) * outer
			for k2 := uint64(0); k2 < stride; k2++ {
				i0 := k1 | k2
				i1 := i0 | stride
				s.buf[i0] *= d0
				s.buf[i1] *= d1
			}
		}
	}
	s.ompPoolOrNil().parallelFor(numOuter, body)
}

// ApplyX applies the Pauli-X gate to qubit q: swaps the amplitude pair.
func (s *StateVector) ApplyX(q int) {
	if q < 0 || q >= s.numQubits {
		failQubitRange("ApplyX", q, s.numQubits)
	}
	stride := uint64(1) << uint(q)
	outer := 2 * stride
	numOuter := int(uint64(len(s.buf)) / outer)

	s.ompPoolOrNil().parallelFor(numOuter, func(start, end int) {
		for o := start; o < end; o++ {
			k1 := uint64(o) * outer
			for k2 := uint64(0); k2 < stride; k2++ {
				i0 := k1 | k2
				i1 := i0 | stride
				s.buf[i0], s.buf[i1] = s.buf[i1], s.buf[i0]
			}
		}
	})
}

// ApplyY applies the Pauli-Y gate to qubit q: the pair (s0, s1) becomes
// (-i*s1, +i*s0).
func (s *StateVector) ApplyY(q int) {
	if q < 0 || q >= s.numQubits {
		failQubitRange("ApplyY", q, s.numQubits)
	}
	stride := uint64(1) << uint(q)
	outer := 2 * stride
	numOuter := int(uint64(len(s.buf)) / outer)

	s.ompPoolOrNil().parallelFor(numOuter, func(start, end int) {
		for o := start; o < end; o++ {
			k1 := uint64(o) * outer
			for k2 := uint64(0); k2 < stride; k2++ {
				i0 := k1 | k2
				i1 := i0 | stride
				s0, s1 := s.buf[i0], s.buf[i1]
				s.buf[i0] = complex(0, -1) * s1
				s.buf[i1] = complex(0, 1) * s0
			}
		}
	})
}

// ApplyZ applies the Pauli-Z gate to qubit q: negates the |1> amplitude
// of the pair, leaving the |0> amplitude untouched.
func (s *StateVector) ApplyZ(q int) {
	if q < 0 || q >= s.numQubits {
		failQubitRange("ApplyZ", q, s.numQubits)
	}
	stride := uint64(1) << uint(q)
	outer := 2 * stride
	numOuter := int(uint64(len(s.buf)) / outer)

	s.ompPoolOrNil().parallelFor(numOuter, func(start, end int) {
		for o := start; o < end; o++ {
			k1 := uint64(o) * outer
			for k2 := uint64(0); k2 < stride; k2++ {
				i1 := k1 | k2 | stride
				s.buf[i1] = -s.buf[i1]
			}
		}
	})
}
