// Copyright 2025 The qsim Authors. SPDX-License-Identifier: Apache-2.0

package statevector

// This file implements spec.md §4.1, the bit index generator: given a set
// of K target qubit positions and an outer counter k in [0, 2^(N-K)), it
// produces the 2^K absolute offsets into the state buffer whose bits at
// the target positions run through 0..2^K-1 while the remaining N-K bits
// equal the bits of k, expanded around the gaps left by the targets.
//
// K in {1,2,3,4,5} get their own function returning a fixed-size array so
// the fixed-K kernels in kernel_fixed.go can loop over a compile-time-sized
// local variable with no heap allocation. General K falls back to
// indexesDynamic, which allocates a []uint64 of length 2^K.

// baseIndex inserts a zero bit into k at each position in qsSorted
// (ascending), producing the offset that has bit 0 (from m=0) at every
// target position and k's bits everywhere else. This is the "idx[0]" of
// spec.md §4.1's contract; indexesK then ORs in the target bits of m.
func baseIndex(qsSorted []int, k uint64) uint64 {
	for _, q := range qsSorted {
		shift := uint(q)
		low := k & ((uint64(1) << shift) - 1)
		high := k >> shift
		k = (high << (shift + 1)) | low
	}
	return k
}

// indexes1 enumerates the 2 offsets affected by a single-qubit gate on q.
func indexes1(q int, k uint64) [2]uint64 {
	idx0 := baseIndex([]int{q}, k)
	bit := uint64(1) << uint(q)
	return [2]uint64{idx0, idx0 | bit}
}

// indexes2 enumerates the 4 offsets affected by a 2-qubit gate. qs is the
// caller's own qubit order (bit j of m maps to qs[j]); qsSorted is the
// same set in ascending order, used only to compute the gap structure of
// idx0.
func indexes2(qs, qsSorted [2]int, k uint64) [4]uint64 {
	idx0 := baseIndex(qsSorted[:], k)
	var out [4]uint64
	for m := range out {
		v := idx0
		for j := 0; j < 2; j++ {
			if m&(1<<uint(j)) != 0 {
				v |= uint64(1) << uint(qs[j])
			}
		}
		out[m] = v
	}
	return out
}

// indexes3 enumerates the 8 offsets affected by a 3-qubit gate.
func indexes3(qs, qsSorted [3]int, k uint64) [8]uint64 {
	idx0 := baseIndex(qsSorted[:], k)
	var out [8]uint64
	for m := range out {
		v := idx0
		for j := 0; j < 3; j++ {
			if m&(1<<uint(j)) != 0 {
				v |= uint64(1) << uint(qs[j])
			}
		}
		out[m] = v
	}
	return out
}

// indexes4 enumerates the 16 offsets affected by a 4-qubit gate.
func indexes4(qs, qsSorted [4]int, k uint64) [16]uint64 {
	idx0 := baseIndex(qsSorted[:], k)
	var out [16]uint64
	for m := range out {
		v := idx0
		for j := 0; j < 4; j++ {
			if m&(1<<uint(j)) != 0 {
				v |= uint64(1) << uint(qs[j])
			}
		}
		out[m] = v
	}
	return out
}

// indexes5 enumerates the 32 offsets affected by a 5-qubit gate.
func indexes5(qs, qsSorted [5]int, k uint64) [32]uint64 {
	idx0 := baseIndex(qsSorted[:], k)
	var out [32]uint64
	for m := range out {
		v := idx0
		for j := 0; j < 5; j++ {
			if m&(1<<uint(j)) != 0 {
				v |= uint64(1) << uint(qs[j])
			}
		}
		out[m] = v
	}
	return out
}

// indexesDynamic is the runtime-K fallback (spec.md §4.5): it allocates a
// heap slice of length 2^len(qs) rather than returning a fixed array.
func indexesDynamic(qs, qsSorted []int, k uint64) []uint64 {
	K := len(qs)
	idx0 := baseIndex(qsSorted, k)
	out := make([]uint64, 1<<uint(K))
	for m := range out {
		v := idx0
		for j := 0; j < K; j++ {
			if m&(1<<uint(j)) != 0 {
				v |= uint64(1) << uint(qs[j])
			}
		}
		out[m] = v
	}
	return out
}
