// Copyright 2025 The qsim Authors. SPDX-License-Identifier: Apache-2.0

// Package statevector implements the dense numerical core of a state-vector
// quantum simulator: a complex-valued vector of length 2^N representing the
// pure state of N qubits, together with the bit-indexed kernels that apply
// unitary and diagonal matrices, measurement projectors, and observable
// contractions to it in place.
//
// # Indexing convention
//
// Amplitude i encodes computational basis state |i>, with bit b of i giving
// the value of qubit b (qubit 0 is the least significant bit). A gate's
// target qubits are given in the caller's own order. The bit index
// generator maps bit j of a matrix row/column index to the j-th qubit of
// the order it is given, so the enumeration order and the matrix's
// row/column order always agree: with gate optimization enabled, and for
// K > 5, a dense matrix is permuted once at the boundary to ascending
// (sorted) qubit order; otherwise, and for diagonal matrices, the caller's
// order is used directly and no permutation takes place.
//
// # Concurrency
//
// A StateVector owns a small persistent worker pool (see pool.go) used only
// when NumQubits() exceeds the configured OMP threshold and OMP thread
// count is greater than one, mirroring the OpenMP-gated parallelism of the
// systems it descends from. Every kernel partitions the state vector into
// disjoint per-outer-iteration offset sets before writing, which is what
// makes that parallelism safe without locking.
//
// # Scope
//
// This package is the kernel only: no circuit assembly, no instruction
// dispatch, no noise models, no logging, no persisted configuration. Those
// concerns live in the contrib/* packages and the cmd/qsimctl consumer,
// which use this package purely through its exported API.
package statevector
