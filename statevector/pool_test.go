// Copyright 2025 The qsim Authors. SPDX-License-Identifier: Apache-2.0

package statevector

import (
	"sync/atomic"
	"testing"
)

func TestNewOMPPoolSingleWorkerIsNil(t *testing.T) {
	if newOMPPool(1) != nil {
		t.Error("newOMPPool(1) should return nil, a single worker never needs a pool")
	}
	if newOMPPool(0) != nil {
		t.Error("newOMPPool(0) should return nil")
	}
}

func TestParallelForCoversRange(t *testing.T) {
	pool := newOMPPool(4)
	defer pool.close()

	n := 97
	results := make([]int, n)
	pool.parallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * i
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*i {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*i)
		}
	}
}

func TestParallelForNilPoolFallsBackToSequential(t *testing.T) {
	var pool *ompPool
	var called bool
	pool.parallelFor(10, func(start, end int) {
		called = true
		if start != 0 || end != 10 {
			t.Errorf("got range [%d, %d), want [0, 10)", start, end)
		}
	})
	if !called {
		t.Error("parallelFor on a nil pool should still invoke fn")
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := newOMPPool(4)
	defer pool.close()

	var called bool
	pool.parallelFor(0, func(start, end int) { called = true })
	if called {
		t.Error("parallelFor with n=0 should not call fn")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	pool := newOMPPool(4)
	pool.close()
	pool.close() // must not panic
}

func TestReduceRealSumsPartials(t *testing.T) {
	pool := newOMPPool(4)
	defer pool.close()

	n := 1000
	got := pool.reduceReal(n, func(start, end int) float64 {
		var acc float64
		for i := start; i < end; i++ {
			acc += float64(i)
		}
		return acc
	})

	want := float64(n*(n-1)) / 2
	if got != want {
		t.Errorf("reduceReal sum = %v, want %v", got, want)
	}
}

func TestReduceComplexSumsPartials(t *testing.T) {
	pool := newOMPPool(4)
	defer pool.close()

	n := 500
	got := pool.reduceComplex(n, func(start, end int) (re, im float64) {
		for i := start; i < end; i++ {
			re += float64(i)
			im += 1
		}
		return re, im
	})

	want := complex(float64(n*(n-1))/2, float64(n))
	if got != want {
		t.Errorf("reduceComplex sum = %v, want %v", got, want)
	}
}

func TestParallelForConcurrentWrites(t *testing.T) {
	pool := newOMPPool(8)
	defer pool.close()

	var count atomic.Int64
	pool.parallelFor(10000, func(start, end int) {
		count.Add(int64(end - start))
	})
	if count.Load() != 10000 {
		t.Errorf("count = %d, want 10000", count.Load())
	}
}
