// Copyright 2025 The qsim Authors. SPDX-License-Identifier: Apache-2.0

package statevector

import "testing"

func labeledMatrix(dim int) []complex128 {
	mat := make([]complex128, dim*dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			mat[i+dim*j] = complex(float64(i*100+j), 0)
		}
	}
	return mat
}

func TestSwapMatrixRolesIsSelfInverse(t *testing.T) {
	dim := 8
	mat := labeledMatrix(dim)
	orig := append([]complex128(nil), mat...)

	swapMatrixRoles(mat, dim, 0, 2)
	if equalComplexSlices(mat, orig) {
		t.Fatal("swapMatrixRoles should have changed the matrix")
	}
	swapMatrixRoles(mat, dim, 0, 2)
	if !equalComplexSlices(mat, orig) {
		t.Error("applying swapMatrixRoles twice should restore the original matrix")
	}
}

func TestSwapMatrixRolesExchangesMiddleRowsAndColumns(t *testing.T) {
	// With only two bit positions (dim=4), swapping bit0/bit1 exchanges
	// row/col 1 with row/col 2 and leaves 0 and 3 fixed.
	dim := 4
	mat := labeledMatrix(dim)
	swapMatrixRoles(mat, dim, 0, 1)

	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			pi, pj := i, j
			if i == 1 {
				pi = 2
			} else if i == 2 {
				pi = 1
			}
			if j == 1 {
				pj = 2
			} else if j == 2 {
				pj = 1
			}
			want := complex(float64(pi*100+pj), 0)
			if got := mat[i+dim*j]; got != want {
				t.Errorf("mat[%d,%d] = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestPermuteMatrixToSortedNoopWhenAlreadySorted(t *testing.T) {
	mat := labeledMatrix(8)
	out := permuteMatrixToSorted(mat, []int{0, 1, 2}, []int{0, 1, 2})
	if !equalComplexSlices(out, mat) {
		t.Error("permuteMatrixToSorted should be a no-op when src == sorted")
	}
}

func TestPermuteMatrixToSortedReordersRolesConsistently(t *testing.T) {
	// A 2-qubit gate authored as [q1, q0] should permute identically to
	// one directly authored as [q0, q1] with rows/cols 1 and 2 swapped.
	mat := labeledMatrix(4)
	out := permuteMatrixToSorted(mat, []int{1, 0}, []int{0, 1})

	want := append([]complex128(nil), mat...)
	swapMatrixRoles(want, 4, 0, 1)

	if !equalComplexSlices(out, want) {
		t.Error("permuteMatrixToSorted([1,0] -> [0,1]) should match a single role swap")
	}
}

func TestPermuteMatrixToSortedUnknownQubitPanics(t *testing.T) {
	mat := labeledMatrix(4)
	defer func() {
		if recover() == nil {
			t.Error("expected a panic when sorted contains a qubit absent from src")
		}
	}()
	permuteMatrixToSorted(mat, []int{0, 1}, []int{0, 5})
}

func equalComplexSlices(a, b []complex128) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
