// Copyright 2025 The qsim Authors. SPDX-License-Identifier: Apache-2.0

package statevector

import (
	"sort"
	"sync"
)

// This file implements spec.md §4.7: whole-vector reductions (norm, dot,
// inner product), fused per-qubit-subset reductions that avoid ever
// materializing the post-gate amplitudes (norm-of-matrix, expectation
// value), and measurement-related distributions (probabilities, sampling).

// Norm returns sum |amp_i|^2 over the whole state vector (spec.md §4.7
// defines norm as the squared sum, not its square root; Renormalize is
// the one place that takes a root, to compute the rescale factor).
func (s *StateVector) Norm() float64 {
	return s.ompPoolOrNil().reduceReal(len(s.buf), func(start, end int) float64 {
		var acc float64
		for i := start; i < end; i++ {
			a := s.buf[i]
			acc += real(a)*real(a) + imag(a)*imag(a)
		}
		return acc
	})
}

// Dot returns the unconjugated bilinear sum sum_i s[i]*other[i]. The two
// vectors must have equal dimension.
func (s *StateVector) Dot(other *StateVector) complex128 {
	s.requireSameSize("Dot", other)
	return s.ompPoolOrNil().reduceComplex(len(s.buf), func(start, end int) (re, im float64) {
		var acc complex128
		for i := start; i < end; i++ {
			acc += s.buf[i] * other.buf[i]
		}
		return real(acc), imag(acc)
	})
}

// InnerProduct returns the Hermitian inner product sum_i conj(s[i])*other[i].
func (s *StateVector) InnerProduct(other *StateVector) complex128 {
	s.requireSameSize("InnerProduct", other)
	return s.ompPoolOrNil().reduceComplex(len(s.buf), func(start, end int) (re, im float64) {
		var acc complex128
		for i := start; i < end; i++ {
			acc += complex(real(s.buf[i]), -imag(s.buf[i])) * other.buf[i]
		}
		return real(acc), imag(acc)
	})
}

// requireSameSize is skipped when debug checks are disabled, matching
// validateQubits' DisableDebugChecks behavior.
func (s *StateVector) requireSameSize(kernel string, other *StateVector) {
	if !s.debug {
		return
	}
	if len(s.buf) != len(other.buf) {
		failDimension(kernel, "state vectors have different sizes: %d vs %d", len(s.buf), len(other.buf))
	}
}

// NormOfMatrix returns the norm of the vector that would result from
// applying mat to qubits, without ever writing the result back into the
// state vector. mat may be either the 2^K-element diagonal form or the
// 4^K-element dense form, exactly as ApplyMatrix accepts.
func (s *StateVector) NormOfMatrix(qubits []int, mat []complex128) float64 {
	k := s.validateQubits("NormOfMatrix", qubits)
	dim := 1 << uint(k)

	switch len(mat) {
	case dim:
		qsSorted := sortedCopy(qubits)
		return s.reduceMatrixNorm(qubits, qsSorted, func(idx []uint64) float64 {
			var acc float64
			for i, ix := range idx {
				y := mat[i] * s.buf[ix]
				acc += real(y)*real(y) + imag(y)*imag(y)
			}
			return acc
		})
	case dim * dim:
		qsSorted := sortedCopy(qubits)
		permuted := permuteMatrixToSorted(mat, qubits, qsSorted)
		return s.reduceMatrixNorm(qsSorted, qsSorted, func(idx []uint64) float64 {
			var acc float64
			for i := 0; i < dim; i++ {
				var y complex128
				for j := 0; j < dim; j++ {
					y += permuted[i+dim*j] * s.buf[idx[j]]
				}
				acc += real(y)*real(y) + imag(y)*imag(y)
			}
			return acc
		})
	default:
		failDimension("NormOfMatrix", "matrix of length %d fits neither the diagonal form (%d) nor the dense form (%d) for %d qubits", len(mat), dim, dim*dim, k)
		return 0
	}
}

// reduceMatrixNorm sums blockNormSq(idx) — the squared-norm contribution of
// one outer iteration's block of amplitudes — over every outer iteration.
// Like Norm, the result is the squared norm, with no square root applied.
func (s *StateVector) reduceMatrixNorm(qs, qsSorted []int, blockNormSq func(idx []uint64) float64) float64 {
	k := len(qs)
	numOuter := len(s.buf) >> uint(k)
	return s.ompPoolOrNil().reduceReal(numOuter, func(start, end int) float64 {
		var acc float64
		for o := start; o < end; o++ {
			idx := indexesDynamic(qs, qsSorted, uint64(o))
			acc += blockNormSq(idx)
		}
		return acc
	})
}

// ExpectationValue returns <psi|M|psi> restricted to the given qubits,
// summed over every basis state of the remaining qubits. mat may be
// either the diagonal or dense form. The result is complex in general;
// callers applying a Hermitian mat may take its real part.
func (s *StateVector) ExpectationValue(qubits []int, mat []complex128) complex128 {
	k := s.validateQubits("ExpectationValue", qubits)
	dim := 1 << uint(k)

	switch len(mat) {
	case dim:
		qsSortedDiag := sortedCopy(qubits)
		numOuter := len(s.buf) >> uint(k)
		return s.ompPoolOrNil().reduceComplex(numOuter, func(start, end int) (re, im float64) {
			var acc complex128
			for o := start; o < end; o++ {
				idx := indexesDynamic(qubits, qsSortedDiag, uint64(o))
				for i, ix := range idx {
					x := s.buf[ix]
					acc += mat[i] * complex(real(x)*real(x)+imag(x)*imag(x), 0)
				}
			}
			return real(acc), imag(acc)
		})
	case dim * dim:
		qsSorted := sortedCopy(qubits)
		permuted := permuteMatrixToSorted(mat, qubits, qsSorted)
		numOuter := len(s.buf) >> uint(k)
		return s.ompPoolOrNil().reduceComplex(numOuter, func(start, end int) (re, im float64) {
			var acc complex128
			for o := start; o < end; o++ {
				idx := indexesDynamic(qsSorted, qsSorted, uint64(o))
				for i := 0; i < dim; i++ {
					var y complex128
					for j := 0; j < dim; j++ {
						y += permuted[i+dim*j] * s.buf[idx[j]]
					}
					x := s.buf[idx[i]]
					acc += complex(real(x), -imag(x)) * y
				}
			}
			return real(acc), imag(acc)
		})
	default:
		failDimension("ExpectationValue", "matrix of length %d fits neither the diagonal form (%d) nor the dense form (%d) for %d qubits", len(mat), dim, dim*dim, k)
		return 0
	}
}

// Probabilities returns |amp_i|^2 for every basis state.
func (s *StateVector) Probabilities() []float64 {
	out := make([]float64, len(s.buf))
	s.ompPoolOrNil().parallelFor(len(s.buf), func(start, end int) {
		for i := start; i < end; i++ {
			a := s.buf[i]
			out[i] = real(a)*real(a) + imag(a)*imag(a)
		}
	})
	return out
}

// ProbabilitiesQubit returns the marginal [P(q=0), P(q=1)] for a single
// qubit.
func (s *StateVector) ProbabilitiesQubit(q int) []float64 {
	if q < 0 || q >= s.numQubits {
		failQubitRange("ProbabilitiesQubit", q, s.numQubits)
	}
	return s.marginalProbabilities([]int{q}, []int{q})
}

// ProbabilitiesQubits returns the marginal joint distribution over the
// given qubits, in the same bit-to-qubit mapping as ApplyMatrix: bit j of
// the result index corresponds to qubits[j]. An empty qubits list is
// spec.md §8's boundary case: the marginal over zero qubits is the total
// probability mass, i.e. Norm().
func (s *StateVector) ProbabilitiesQubits(qubits []int) []float64 {
	if len(qubits) == 0 {
		return []float64{s.Norm()}
	}
	s.validateQubits("ProbabilitiesQubits", qubits)
	qsSorted := sortedCopy(qubits)
	return s.marginalProbabilities(qubits, qsSorted)
}

// marginalProbabilities sums |amp|^2 over every outer iteration into a
// 2^len(qs)-element result, one accumulator per goroutine chunk merged
// under a mutex once per chunk rather than once per amplitude.
func (s *StateVector) marginalProbabilities(qs, qsSorted []int) []float64 {
	k := len(qs)
	dim := 1 << uint(k)
	numOuter := len(s.buf) >> uint(k)

	result := make([]float64, dim)
	var mu sync.Mutex
	s.ompPoolOrNil().parallelFor(numOuter, func(start, end int) {
		local := make([]float64, dim)
		for o := start; o < end; o++ {
			idx := indexesDynamic(qs, qsSorted, uint64(o))
			for i, ix := range idx {
				a := s.buf[ix]
				local[i] += real(a)*real(a) + imag(a)*imag(a)
			}
		}
		mu.Lock()
		for i, v := range local {
			result[i] += v
		}
		mu.Unlock()
	})
	return result
}

// Probability returns |amp|^2 for a single full-width basis state.
func (s *StateVector) Probability(outcome int) float64 {
	if outcome < 0 || outcome >= len(s.buf) {
		failDimension("Probability", "outcome %d out of range for %d amplitudes", outcome, len(s.buf))
	}
	a := s.buf[outcome]
	return real(a)*real(a) + imag(a)*imag(a)
}

// ProbabilityQubits returns the marginal probability that the given
// qubits jointly read as outcome (bit j of outcome corresponds to
// qubits[j]). An empty qubits list is spec.md §8's boundary case: the
// only valid outcome is 0, and the "probability" of it is Norm().
func (s *StateVector) ProbabilityQubits(qubits []int, outcome int) float64 {
	if len(qubits) == 0 {
		if outcome != 0 {
			failDimension("ProbabilityQubits", "outcome %d out of range for 0 qubits", outcome)
		}
		return s.Norm()
	}
	k := s.validateQubits("ProbabilityQubits", qubits)
	dim := 1 << uint(k)
	if outcome < 0 || outcome >= dim {
		failDimension("ProbabilityQubits", "outcome %d out of range for %d qubits", outcome, k)
	}
	qsSorted := sortedCopy(qubits)
	numOuter := len(s.buf) >> uint(k)
	return s.ompPoolOrNil().reduceReal(numOuter, func(start, end int) float64 {
		var acc float64
		for o := start; o < end; o++ {
			idx := indexesDynamic(qubits, qsSorted, uint64(o))
			a := s.buf[idx[outcome]]
			acc += real(a)*real(a) + imag(a)*imag(a)
		}
		return acc
	})
}

// SampleMeasure draws one full-width basis-state sample per entry of
// rnds, each rnds[i] expected uniform on [0, 1). Sampling walks the
// cumulative distribution once after sorting the requested random
// numbers, an O(len(rnds)*log(len(rnds)) + Size()) pass rather than a
// binary search per sample.
func (s *StateVector) SampleMeasure(rnds []float64) []int {
	type request struct {
		r       float64
		origIdx int
	}
	reqs := make([]request, len(rnds))
	for i, r := range rnds {
		reqs[i] = request{r: r, origIdx: i}
	}
	sort.Slice(reqs, func(a, b int) bool { return reqs[a].r < reqs[b].r })

	out := make([]int, len(rnds))
	var cum float64
	ri := 0
	for i := 0; i < len(s.buf) && ri < len(reqs); i++ {
		a := s.buf[i]
		cum += real(a)*real(a) + imag(a)*imag(a)
		for ri < len(reqs) && reqs[ri].r < cum {
			out[reqs[ri].origIdx] = i
			ri++
		}
	}
	// Any request left over is a floating-point rounding artifact of the
	// cumulative sum falling just short of 1; assign it the last state.
	for ; ri < len(reqs); ri++ {
		out[reqs[ri].origIdx] = len(s.buf) - 1
	}
	return out
}
