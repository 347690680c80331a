// Copyright 2025 The qsim Authors. SPDX-License-Identifier: Apache-2.0

package statevector

// This file implements spec.md §4.5, the general-K kernel: a runtime-K
// path built on indexesDynamic rather than a compile-time-sized mask
// table. Its heap-allocating scratch and index buffers make it unsuitable
// for the per-outer-iteration hot loop at small K, so per spec.md §4.5 it
// is called only when K > 5 (the dispatcher routes every 2 <= K <= 5 case,
// gate_opt on or off, through the zero-allocation kernels in
// kernel_fixed.go instead).

// applyDenseGeneral applies a permuted dim x dim matrix (dim = 2^K) to the
// qubits in qsSorted (already reordered to ascending order by the
// dispatcher). Scratch space for the loaded amplitudes is allocated once
// per worker chunk and reused across outer iterations within that chunk,
// per spec.md §4.5's guidance to hoist per-iteration scratch to
// thread-local storage.
func (s *StateVector) applyDenseGeneral(qsSorted []int, mat []complex128) {
	k := len(qsSorted)
	dim := 1 << uint(k)
	if len(mat) != dim*dim {
		failDimension("applyDenseGeneral", "expected a %d-element (%dx%d) matrix, got %d", dim*dim, dim, dim, len(mat))
	}
	numOuter := len(s.buf) >> uint(k)

	s.ompPoolOrNil().parallelFor(numOuter, func(start, end int) {
		scratch := make([]complex128, dim)
		for o := start; o < end; o++ {
			idx := indexesDynamic(qsSorted, qsSorted, uint64(o))
			for i, ix := range idx {
				scratch[i] = s.buf[ix]
			}
			for i := 0; i < dim; i++ {
				var acc complex128
				for j := 0; j < dim; j++ {
					acc += mat[i+dim*j] * scratch[j]
				}
				s.buf[idx[i]] = acc
			}
		}
	})
}

// applyDiagonalGeneral is the runtime-K diagonal counterpart; it needs no
// scratch buffer since it only rescales the affected offsets in place.
func (s *StateVector) applyDiagonalGeneral(qs, qsSorted []int, diag []complex128) {
	k := len(qs)
	dim := 1 << uint(k)
	if len(diag) != dim {
		failDimension("applyDiagonalGeneral", "expected a %d-element diagonal, got %d", dim, len(diag))
	}
	numOuter := len(s.buf) >> uint(k)

	s.ompPoolOrNil().parallelFor(numOuter, func(start, end int) {
		for o := start; o < end; o++ {
			idx := indexesDynamic(qs, qsSorted, uint64(o))
			for i, ix := range idx {
				s.buf[ix] *= diag[i]
			}
		}
	})
}
