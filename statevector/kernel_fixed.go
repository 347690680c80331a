// Copyright 2025 The qsim Authors. SPDX-License-Identifier: Apache-2.0

package statevector

// This file implements spec.md §4.4: the fixed-K kernels for K in
// {2,3,4,5}. Each has its own named function using the matching
// compile-time-sized index array from index.go, so the mask table and the
// inner multiply-accumulate are both known-size at every call site.

// applyDenseAtIndices performs the "load into a stack buffer, then dense
// multiply-accumulate" step shared by every fixed-K kernel (the general-K
// kernel in kernel_general.go runs its own copy of this loop over a
// heap-allocated scratch buffer, since its dim can exceed 32). It computes each output amplitude directly from the loaded
// inputs rather than literally zeroing S first — the observable result is
// identical, since every output position is fully overwritten by its own
// row's dot product before any other offset is read.
func applyDenseAtIndices(buf []complex128, idx []uint64, mat []complex128) {
	dim := len(idx)
	var scratch [32]complex128 // 2^5, the largest fixed K this kernel supports
	local := scratch[:dim]
	for i, ix := range idx {
		local[i] = buf[ix]
	}
	for i := 0; i < dim; i++ {
		var acc complex128
		for j := 0; j < dim; j++ {
			acc += mat[i+dim*j] * local[j]
		}
		buf[idx[i]] = acc
	}
}

func applyDiagonalAtIndices(buf []complex128, idx []uint64, diag []complex128) {
	for i, ix := range idx {
		buf[ix] *= diag[i]
	}
}

// sortPair returns (lo, hi) for a two-qubit target set.
func sortPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

// applyDense2 applies a 4x4 matrix to a 2-qubit target set. qs gives the
// role order the rows/columns of mat are written in (bit j of a row/column
// index maps to qs[j]); qsSorted is the same set ascending, used only for
// the gap structure of the bit index generator. The fixed-K optimized path
// passes qs == qsSorted after pre-permuting mat; the fixed-K unoptimized
// path passes the caller's original qs against an unpermuted mat instead.
func (s *StateVector) applyDense2(qs, qsSorted [2]int, mat []complex128) {
	if len(mat) != 16 {
		failDimension("applyDense2", "expected a 16-element (4x4) matrix, got %d", len(mat))
	}
	numOuter := len(s.buf) >> 2
	s.ompPoolOrNil().parallelFor(numOuter, func(start, end int) {
		for o := start; o < end; o++ {
			idx := indexes2(qs, qsSorted, uint64(o))
			applyDenseAtIndices(s.buf, idx[:], mat)
		}
	})
}

func (s *StateVector) applyDiagonal2(qs [2]int, diag []complex128) {
	if len(diag) != 4 {
		failDimension("applyDiagonal2", "expected a 4-element diagonal, got %d", len(diag))
	}
	qsSorted := sortPair(qs[0], qs[1])
	numOuter := len(s.buf) >> 2
	s.ompPoolOrNil().parallelFor(numOuter, func(start, end int) {
		for o := start; o < end; o++ {
			idx := indexes2(qs, qsSorted, uint64(o))
			applyDiagonalAtIndices(s.buf, idx[:], diag)
		}
	})
}

// applyDense3 applies an 8x8 matrix to a 3-qubit target set; see applyDense2
// for the meaning of qs vs. qsSorted.
func (s *StateVector) applyDense3(qs, qsSorted [3]int, mat []complex128) {
	if len(mat) != 64 {
		failDimension("applyDense3", "expected a 64-element (8x8) matrix, got %d", len(mat))
	}
	numOuter := len(s.buf) >> 3
	s.ompPoolOrNil().parallelFor(numOuter, func(start, end int) {
		for o := start; o < end; o++ {
			idx := indexes3(qs, qsSorted, uint64(o))
			applyDenseAtIndices(s.buf, idx[:], mat)
		}
	})
}

func (s *StateVector) applyDiagonal3(qs [3]int, diag []complex128) {
	if len(diag) != 8 {
		failDimension("applyDiagonal3", "expected an 8-element diagonal, got %d", len(diag))
	}
	qsSorted := sortInts3(qs)
	numOuter := len(s.buf) >> 3
	s.ompPoolOrNil().parallelFor(numOuter, func(start, end int) {
		for o := start; o < end; o++ {
			idx := indexes3(qs, qsSorted, uint64(o))
			applyDiagonalAtIndices(s.buf, idx[:], diag)
		}
	})
}

// applyDense4 applies a 16x16 matrix to a 4-qubit target set; see
// applyDense2 for the meaning of qs vs. qsSorted.
func (s *StateVector) applyDense4(qs, qsSorted [4]int, mat []complex128) {
	if len(mat) != 256 {
		failDimension("applyDense4", "expected a 256-element (16x16) matrix, got %d", len(mat))
	}
	numOuter := len(s.buf) >> 4
	s.ompPoolOrNil().parallelFor(numOuter, func(start, end int) {
		for o := start; o < end; o++ {
			idx := indexes4(qs, qsSorted, uint64(o))
			applyDenseAtIndices(s.buf, idx[:], mat)
		}
	})
}

func (s *StateVector) applyDiagonal4(qs [4]int, diag []complex128) {
	if len(diag) != 16 {
		failDimension("applyDiagonal4", "expected a 16-element diagonal, got %d", len(diag))
	}
	qsSorted := sortInts4(qs)
	numOuter := len(s.buf) >> 4
	s.ompPoolOrNil().parallelFor(numOuter, func(start, end int) {
		for o := start; o < end; o++ {
			idx := indexes4(qs, qsSorted, uint64(o))
			applyDiagonalAtIndices(s.buf, idx[:], diag)
		}
	})
}

// applyDense5 applies a 32x32 matrix to a 5-qubit target set; see
// applyDense2 for the meaning of qs vs. qsSorted.
func (s *StateVector) applyDense5(qs, qsSorted [5]int, mat []complex128) {
	if len(mat) != 1024 {
		failDimension("applyDense5", "expected a 1024-element (32x32) matrix, got %d", len(mat))
	}
	numOuter := len(s.buf) >> 5
	s.ompPoolOrNil().parallelFor(numOuter, func(start, end int) {
		for o := start; o < end; o++ {
			idx := indexes5(qs, qsSorted, uint64(o))
			applyDenseAtIndices(s.buf, idx[:], mat)
		}
	})
}

func (s *StateVector) applyDiagonal5(qs [5]int, diag []complex128) {
	if len(diag) != 32 {
		failDimension("applyDiagonal5", "expected a 32-element diagonal, got %d", len(diag))
	}
	qsSorted := sortInts5(qs)
	numOuter := len(s.buf) >> 5
	s.ompPoolOrNil().parallelFor(numOuter, func(start, end int) {
		for o := start; o < end; o++ {
			idx := indexes5(qs, qsSorted, uint64(o))
			applyDiagonalAtIndices(s.buf, idx[:], diag)
		}
	})
}

// ApplyCNOT applies a controlled-X gate: bit 0 of the 2-qubit enumeration
// always denotes qctrl and bit 1 always denotes qtrgt, regardless of which
// of the two has the larger index (spec.md §4.4's "sorted pair convention
// ... fixed regardless of which of ctrl/trgt is larger").
func (s *StateVector) ApplyCNOT(qctrl, qtrgt int) {
	if qctrl == qtrgt {
		failDimension("ApplyCNOT", "control and target must differ, both are %d", qctrl)
	}
	qs := [2]int{qctrl, qtrgt}
	qsSorted := sortPair(qctrl, qtrgt)
	numOuter := len(s.buf) >> 2
	s.ompPoolOrNil().parallelFor(numOuter, func(start, end int) {
		for o := start; o < end; o++ {
			idx := indexes2(qs, qsSorted, uint64(o))
			s.buf[idx[3]], s.buf[idx[1]] = s.buf[idx[1]], s.buf[idx[3]]
		}
	})
}

// ApplyCZ applies a controlled-Z gate; symmetric in its two qubits.
func (s *StateVector) ApplyCZ(q0, q1 int) {
	if q0 == q1 {
		failDimension("ApplyCZ", "the two qubits must differ, both are %d", q0)
	}
	qsSorted := sortPair(q0, q1)
	numOuter := len(s.buf) >> 2
	s.ompPoolOrNil().parallelFor(numOuter, func(start, end int) {
		for o := start; o < end; o++ {
			idx := indexes2(qsSorted, qsSorted, uint64(o))
			s.buf[idx[3]] = -s.buf[idx[3]]
		}
	})
}

// ApplySWAP exchanges the state of two qubits; symmetric in its arguments.
func (s *StateVector) ApplySWAP(q0, q1 int) {
	if q0 == q1 {
		return
	}
	qsSorted := sortPair(q0, q1)
	numOuter := len(s.buf) >> 2
	s.ompPoolOrNil().parallelFor(numOuter, func(start, end int) {
		for o := start; o < end; o++ {
			idx := indexes2(qsSorted, qsSorted, uint64(o))
			s.buf[idx[2]], s.buf[idx[1]] = s.buf[idx[1]], s.buf[idx[2]]
		}
	})
}

func sortInts3(qs [3]int) [3]int {
	out := qs
	insertionSort(out[:])
	return out
}

func sortInts4(qs [4]int) [4]int {
	out := qs
	insertionSort(out[:])
	return out
}

func sortInts5(qs [5]int) [5]int {
	out := qs
	insertionSort(out[:])
	return out
}

// insertionSort sorts small qubit-index slices (K <= 5 in practice) in
// place; a full sort.Ints would allocate an interface value for the
// comparator on some Go versions and is overkill at this size.
func insertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		v := a[i]
		j := i - 1
		for j >= 0 && a[j] > v {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
}
