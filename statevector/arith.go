// Copyright 2025 The qsim Authors. SPDX-License-Identifier: Apache-2.0

package statevector

import "math"

// This file implements spec.md §4.8: elementwise vector arithmetic that
// does not touch qubit structure at all — conjugation, renormalization,
// scaling, and addition/subtraction of two same-sized state vectors.

// Conj replaces every amplitude with its complex conjugate, in place.
func (s *StateVector) Conj() {
	s.ompPoolOrNil().parallelFor(len(s.buf), func(start, end int) {
		for i := start; i < end; i++ {
			s.buf[i] = complex(real(s.buf[i]), -imag(s.buf[i]))
		}
	})
}

// Renormalize divides every amplitude by sqrt(Norm()), so the result has
// unit norm (Norm itself returns the squared norm, per spec.md §4.7). A
// zero-norm vector is left untouched: spec.md's NormZero condition is a
// silent no-op here, not a raised Error, since a zero vector has no
// natural direction to rescale toward.
func (s *StateVector) Renormalize() {
	n := s.Norm()
	if n == 0 {
		return
	}
	scale := complex(1/math.Sqrt(n), 0)
	s.ompPoolOrNil().parallelFor(len(s.buf), func(start, end int) {
		for i := start; i < end; i++ {
			s.buf[i] *= scale
		}
	})
}

// Scale multiplies every amplitude by c, in place.
func (s *StateVector) Scale(c complex128) {
	s.ompPoolOrNil().parallelFor(len(s.buf), func(start, end int) {
		for i := start; i < end; i++ {
			s.buf[i] *= c
		}
	})
}

// Add adds other's amplitudes into s, in place. The two vectors must
// have equal dimension; a mismatch is fatal, matching the "no partial
// updates" contract (the check runs before any write).
func (s *StateVector) Add(other *StateVector) {
	s.requireSameSize("Add", other)
	s.ompPoolOrNil().parallelFor(len(s.buf), func(start, end int) {
		for i := start; i < end; i++ {
			s.buf[i] += other.buf[i]
		}
	})
}

// Sub subtracts other's amplitudes from s, in place.
func (s *StateVector) Sub(other *StateVector) {
	s.requireSameSize("Sub", other)
	s.ompPoolOrNil().parallelFor(len(s.buf), func(start, end int) {
		for i := start; i < end; i++ {
			s.buf[i] -= other.buf[i]
		}
	})
}
