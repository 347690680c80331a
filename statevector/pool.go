// Copyright 2025 The qsim Authors. SPDX-License-Identifier: Apache-2.0

package statevector

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// ompPool is a persistent worker pool sized to a StateVector's configured
// thread count. It exists so that repeated gate applications on the same
// StateVector do not pay goroutine-spawn cost per call, mirroring an
// OpenMP runtime's thread team rather than a fresh "go func" per region.
type ompPool struct {
	numWorkers int
	workC      chan ompWorkItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type ompWorkItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// newOMPPool creates a pool with the given number of workers. n <= 1
// returns nil: the caller is expected to run sequentially in that case
// rather than spin up a pool for a single worker.
func newOMPPool(n int) *ompPool {
	if n <= 1 {
		return nil
	}
	p := &ompPool{
		numWorkers: n,
		workC:      make(chan ompWorkItem, n*2),
	}
	for range n {
		go p.worker()
	}
	return p
}

func (p *ompPool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

func (p *ompPool) close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// parallelFor splits [0, n) into contiguous strips, one per worker, and
// runs fn(start, end) on each. Every strip is disjoint, which is what lets
// gate kernels write into the state vector from multiple goroutines
// without any synchronization beyond the closing WaitGroup.
func (p *ompPool) parallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p == nil || p.closed.Load() {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		start := i * chunk
		end := min(start+chunk, n)
		if start >= n {
			wg.Done()
			continue
		}
		p.workC <- ompWorkItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// paddedAccumulator holds one worker's partial reduction result. It is
// padded to a cache line so that concurrent workers accumulating into
// adjacent slots of a []paddedAccumulator never suffer false sharing.
// golang.org/x/sys/cpu is the teacher's own dependency for hardware
// introspection; here it serves cache geometry instead of instruction-set
// detection, since this kernel has no SIMD dispatch of its own.
type paddedAccumulator struct {
	re, im float64
	_      cpu.CacheLinePad
}

// reduceComplex runs fn once per worker strip of [0, n), accumulating a
// pair of real/imaginary partial sums per worker (see spec.md's design
// note on parallel reduction of complex values needing two real
// accumulators), then folds the per-worker partials sequentially. Fold
// order depends on the worker count, so results may differ in the last
// few ULPs across thread configurations — by design, per the concurrency
// model's floating-point-ordering clause.
func (p *ompPool) reduceComplex(n int, fn func(start, end int) (re, im float64)) complex128 {
	if n <= 0 {
		return 0
	}
	if p == nil {
		re, im := fn(0, n)
		return complex(re, im)
	}

	workers := min(p.numWorkers, n)
	if workers <= 1 {
		re, im := fn(0, n)
		return complex(re, im)
	}

	partials := make([]paddedAccumulator, workers)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		start := i * chunk
		end := min(start+chunk, n)
		slot := &partials[i]
		if start >= n {
			wg.Done()
			continue
		}
		p.workC <- ompWorkItem{
			fn: func() {
				slot.re, slot.im = fn(start, end)
			},
			barrier: &wg,
		}
	}
	wg.Wait()

	var totalRe, totalIm float64
	for i := range partials {
		totalRe += partials[i].re
		totalIm += partials[i].im
	}
	return complex(totalRe, totalIm)
}

// reduceReal is reduceComplex's single-accumulator counterpart, used by
// Norm and by the fused matrix-norm reduction.
func (p *ompPool) reduceReal(n int, fn func(start, end int) float64) float64 {
	if n <= 0 {
		return 0
	}
	if p == nil {
		return fn(0, n)
	}

	workers := min(p.numWorkers, n)
	if workers <= 1 {
		return fn(0, n)
	}

	partials := make([]paddedAccumulator, workers)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		start := i * chunk
		end := min(start+chunk, n)
		slot := &partials[i]
		if start >= n {
			wg.Done()
			continue
		}
		p.workC <- ompWorkItem{
			fn: func() {
				slot.re = fn(start, end)
			},
			barrier: &wg,
		}
	}
	wg.Wait()

	var total float64
	for i := range partials {
		total += partials[i].re
	}
	return total
}
