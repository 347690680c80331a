// Copyright 2025 The qsim Authors. SPDX-License-Identifier: Apache-2.0

package statevector

import "sort"

// This file implements spec.md §4.6, the dispatcher: apply_matrix selects
// among the diagonal kernel, the single-qubit kernel, the fixed-K
// specializations, and the general-K kernel based on the qubit count and
// the supplied matrix's length.

// ApplyMatrix applies a matrix to the given target qubits, in the
// caller's own qubit order. mat's length selects diagonal form (2^K) or
// dense column-major form (4^K); this mirrors spec.md §9's own suggestion
// that a port may prefer two distinct entry points, while keeping this
// one for callers that don't know in advance which form they have.
func (s *StateVector) ApplyMatrix(qubits []int, mat []complex128) {
	k := s.validateQubits("ApplyMatrix", qubits)
	dim := 1 << uint(k)

	switch len(mat) {
	case dim:
		s.applyDiagonalDispatch(qubits, mat)
		return
	case dim * dim:
		// fall through to the dense dispatch below
	default:
		failDimension("ApplyMatrix", "matrix of length %d fits neither the diagonal form (%d) nor the dense form (%d) for %d qubits", len(mat), dim, dim*dim, k)
	}

	switch {
	case k == 1:
		s.applyDense1(qubits[0], mat)
	case k >= 2 && k <= 5 && s.gateOpt:
		s.applyDenseFixedOptimized(qubits, mat)
	case k >= 2 && k <= 5:
		s.applyDenseFixedUnoptimized(qubits, mat)
	default:
		qsSorted := sortedCopy(qubits)
		permuted := permuteMatrixToSorted(mat, qubits, qsSorted)
		s.applyDenseGeneral(qsSorted, permuted)
	}
}

// ApplyDiagonal applies the diagonal of a diagonal matrix to the given
// target qubits. len(diag) must be exactly 2^K; unlike ApplyMatrix it
// never accepts the dense (4^K) form.
func (s *StateVector) ApplyDiagonal(qubits []int, diag []complex128) {
	k := s.validateQubits("ApplyDiagonal", qubits)
	if len(diag) != 1<<uint(k) {
		failDimension("ApplyDiagonal", "expected a %d-element diagonal for %d qubits, got %d", 1<<uint(k), k, len(diag))
	}
	s.applyDiagonalDispatch(qubits, diag)
}

// applyDenseFixedOptimized permutes mat to sorted qubit order once up
// front, then routes to the array-returning fixed-K kernel in
// kernel_fixed.go with qs == qsSorted (spec.md §4.4's optimized form,
// gated on gate_opt == true).
func (s *StateVector) applyDenseFixedOptimized(qubits []int, mat []complex128) {
	qsSorted := sortedCopy(qubits)
	permuted := permuteMatrixToSorted(mat, qubits, qsSorted)
	switch len(qubits) {
	case 2:
		s.applyDense2([2]int{qsSorted[0], qsSorted[1]}, [2]int{qsSorted[0], qsSorted[1]}, permuted)
	case 3:
		s.applyDense3([3]int{qsSorted[0], qsSorted[1], qsSorted[2]}, [3]int{qsSorted[0], qsSorted[1], qsSorted[2]}, permuted)
	case 4:
		s.applyDense4([4]int{qsSorted[0], qsSorted[1], qsSorted[2], qsSorted[3]}, [4]int{qsSorted[0], qsSorted[1], qsSorted[2], qsSorted[3]}, permuted)
	case 5:
		s.applyDense5([5]int{qsSorted[0], qsSorted[1], qsSorted[2], qsSorted[3], qsSorted[4]}, [5]int{qsSorted[0], qsSorted[1], qsSorted[2], qsSorted[3], qsSorted[4]}, permuted)
	default:
		failInternal("applyDenseFixedOptimized", "unreachable K=%d", len(qubits))
	}
}

// applyDenseFixedUnoptimized routes to the same zero-allocation
// array-returning fixed-K kernels as applyDenseFixedOptimized, but skips
// the up-front matrix permutation: mat stays in the caller's own qubit
// order and the bit index generator is given qs (unsorted) directly as
// its role argument, so idx[m]'s bit pattern already lines up with mat's
// rows/columns without a separate permute pass. This is spec.md §4.6's
// "fixed-K unoptimized form for K <= 5" tier, used whenever gate_opt is
// false; unlike the runtime-K path (kernel_general.go) it never allocates
// on the hot per-outer-iteration loop.
func (s *StateVector) applyDenseFixedUnoptimized(qubits []int, mat []complex128) {
	qsSorted := sortedCopy(qubits)
	switch len(qubits) {
	case 2:
		s.applyDense2([2]int{qubits[0], qubits[1]}, [2]int{qsSorted[0], qsSorted[1]}, mat)
	case 3:
		s.applyDense3([3]int{qubits[0], qubits[1], qubits[2]}, [3]int{qsSorted[0], qsSorted[1], qsSorted[2]}, mat)
	case 4:
		s.applyDense4([4]int{qubits[0], qubits[1], qubits[2], qubits[3]}, [4]int{qsSorted[0], qsSorted[1], qsSorted[2], qsSorted[3]}, mat)
	case 5:
		s.applyDense5([5]int{qubits[0], qubits[1], qubits[2], qubits[3], qubits[4]}, [5]int{qsSorted[0], qsSorted[1], qsSorted[2], qsSorted[3], qsSorted[4]}, mat)
	default:
		failInternal("applyDenseFixedUnoptimized", "unreachable K=%d", len(qubits))
	}
}

// applyDiagonalDispatch never needs matrix permutation: a diagonal
// entry's position already depends only on the caller's own qubit order,
// via the bit-index generator's qs argument.
func (s *StateVector) applyDiagonalDispatch(qubits []int, diag []complex128) {
	switch len(qubits) {
	case 1:
		s.applyDiagonal1(qubits[0], diag)
	case 2:
		s.applyDiagonal2([2]int{qubits[0], qubits[1]}, diag)
	case 3:
		s.applyDiagonal3([3]int{qubits[0], qubits[1], qubits[2]}, diag)
	case 4:
		s.applyDiagonal4([4]int{qubits[0], qubits[1], qubits[2], qubits[3]}, diag)
	case 5:
		s.applyDiagonal5([5]int{qubits[0], qubits[1], qubits[2], qubits[3], qubits[4]}, diag)
	default:
		s.applyDiagonalGeneral(qubits, sortedCopy(qubits), diag)
	}
}

// validateQubits checks that qubits is non-empty, in range, and free of
// duplicates, returning K = len(qubits). No write to the buffer happens
// before this check, matching spec.md §7's "no partial updates" rule.
// The range/duplicate checks are skipped when debug checks are disabled
// (DisableDebugChecks); the non-empty check always runs, since dispatch
// cannot proceed at all with K=0.
func (s *StateVector) validateQubits(kernel string, qubits []int) int {
	k := len(qubits)
	if k == 0 {
		failDimension(kernel, "qubits list must not be empty")
	}
	if !s.debug {
		return k
	}
	for i, q := range qubits {
		if q < 0 || q >= s.numQubits {
			failQubitRange(kernel, q, s.numQubits)
		}
		for _, other := range qubits[:i] {
			if other == q {
				failDimension(kernel, "duplicate qubit %d", q)
			}
		}
	}
	return k
}

func sortedCopy(qubits []int) []int {
	out := make([]int, len(qubits))
	copy(out, qubits)
	sort.Ints(out)
	return out
}
