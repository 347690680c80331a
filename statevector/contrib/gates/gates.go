// Copyright 2025 The qsim Authors. SPDX-License-Identifier: Apache-2.0

// Package gates provides standard single- and two-qubit gate matrices in
// the column-major, complex128-slice form that statevector.ApplyMatrix
// expects.
package gates

import "math"

// H is the Hadamard matrix.
var H = []complex128{
	complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0),
	complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0),
}

// X is the Pauli-X (NOT) matrix.
var X = []complex128{0, 1, 1, 0}

// Y is the Pauli-Y matrix.
var Y = []complex128{0, complex(0, 1), complex(0, -1), 0}

// Z is the Pauli-Z diagonal, usable directly with ApplyDiagonal.
var Z = []complex128{1, -1}

// S is the phase gate diagonal, diag(1, i).
var S = []complex128{1, complex(0, 1)}

// Sdg is S's adjoint, diag(1, -i).
var Sdg = []complex128{1, complex(0, -1)}

// T is the pi/8 gate diagonal, diag(1, e^(i*pi/4)).
var T = []complex128{1, complex(math.Sqrt2/2, math.Sqrt2/2)}

// Tdg is T's adjoint.
var Tdg = []complex128{1, complex(math.Sqrt2/2, -math.Sqrt2/2)}

// Phase returns the diagonal of a phase gate diag(1, e^(i*theta)).
func Phase(theta float64) []complex128 {
	return []complex128{1, complex(math.Cos(theta), math.Sin(theta))}
}

// RX returns the dense matrix for a rotation of theta radians about X.
func RX(theta float64) []complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return []complex128{c, s, s, c}
}

// RY returns the dense matrix for a rotation of theta radians about Y.
func RY(theta float64) []complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return []complex128{c, s, -s, c}
}

// RZ returns the diagonal for a rotation of theta radians about Z.
func RZ(theta float64) []complex128 {
	half := theta / 2
	return []complex128{
		complex(math.Cos(-half), math.Sin(-half)),
		complex(math.Cos(half), math.Sin(half)),
	}
}

// CNOTDense is the controlled-X gate written as a dense 4x4 matrix with
// qs = [ctrl, trgt] (bit 0 of the basis index is the control). Prefer
// statevector.ApplyCNOT for direct application; this exists for circuits
// that build gate lists generically as dense matrices.
var CNOTDense = func() []complex128 {
	mat := make([]complex128, 16)
	perm := [4]int{0, 3, 2, 1}
	for j, i := range perm {
		mat[i+4*j] = 1
	}
	return mat
}()

// CZDense is the controlled-Z gate as a dense 4x4 matrix, symmetric in
// its two qubits.
var CZDense = []complex128{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, -1,
}

// SWAPDense exchanges two qubits, written as a dense 4x4 matrix.
var SWAPDense = []complex128{
	1, 0, 0, 0,
	0, 0, 1, 0,
	0, 1, 0, 0,
	0, 0, 0, 1,
}

// Controlled builds the dense (2*dim)x(2*dim) controlled version of a
// dim x dim unitary u, with the control as the outermost (highest) bit:
// bit 0..log2(dim)-1 address u's own qubits, and the top bit is the
// control. The result is suitable for ApplyMatrix with qs ordered
// [u's own qubits..., control].
func Controlled(u []complex128) []complex128 {
	dim := 1
	for dim*dim < len(u) {
		dim++
	}
	full := 2 * dim
	out := make([]complex128, full*full)
	for i := 0; i < dim; i++ {
		out[i+full*i] = 1
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			out[(dim+i)+full*(dim+j)] = u[i+dim*j]
		}
	}
	return out
}

// Toffoli is the doubly-controlled-X gate as a dense 8x8 matrix, with
// qs = [ctrl0, ctrl1, trgt].
var Toffoli = func() []complex128 {
	mat := make([]complex128, 64)
	perm := [8]int{0, 1, 2, 7, 4, 5, 6, 3}
	for j, i := range perm {
		mat[i+8*j] = 1
	}
	return mat
}()
