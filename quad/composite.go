package quad

import (
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// Composite estimates the integral of f over [a, b] by partitioning the
// interval into n equal sub-intervals, applying r to each and summing the
// per-piece estimates in partition order. With n == 1 it degenerates to a
// single r.Apply(f, a, b).
//
// a == b returns 0 without invoking r or f. Reversed bounds integrate the
// swapped interval and negate the result, so
// Composite(r, f, b, a, n) == -Composite(r, f, a, b, n) exactly. A
// subdivision count below 1, a nil rule or a nil integrand is rejected with
// ErrInvalidArgument before any evaluation; non-finite bounds and
// non-finite integrand values are reported as ErrEvaluation. Errors from r
// are propagated to the caller as they are.
//
// The estimate is accumulated in float64 throughout. Error for smooth
// integrands shrinks as n grows, but only down to the point where
// accumulated rounding over n pieces takes over; beyond roughly n = 1e7
// further refinement buys nothing.
func Composite(r Rule, f Integrand, a, b float64, n int) (float64, error) {
	if err := checkComposite(r, f, a, b, n); err != nil {
		return 0, err
	}
	if a == b {
		return 0, nil
	}
	if a > b {
		v, err := Composite(r, f, b, a, n)
		return -v, err
	}

	pts := breakpoints(a, b, n)
	pieces := make([]float64, n)
	for i := range pieces {
		v, err := r.Apply(f, pts[i], pts[i+1])
		if err != nil {
			return 0, err
		}
		pieces[i] = v
	}
	return floats.Sum(pieces), nil
}

// CompositeParallel computes the same estimate as Composite with the
// per-sub-interval rule applications spread over a pool of worker
// goroutines. The per-piece estimates are collected into their partition
// slots and summed in partition order, so the result is bit-identical to
// the sequential one. The integrand must be safe for concurrent calls.
//
// workers <= 0 means one worker per available CPU. If several pieces fail,
// the error of the lowest-indexed piece is returned, which is the same
// error Composite reports.
func CompositeParallel(r Rule, f Integrand, a, b float64, n, workers int) (float64, error) {
	if err := checkComposite(r, f, a, b, n); err != nil {
		return 0, err
	}
	if a == b {
		return 0, nil
	}
	if a > b {
		v, err := CompositeParallel(r, f, b, a, n, workers)
		return -v, err
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		return Composite(r, f, a, b, n)
	}

	pts := breakpoints(a, b, n)
	pieces := make([]float64, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(start int) {
			defer wg.Done()
			for i := start; i < n; i += workers {
				v, err := r.Apply(f, pts[i], pts[i+1])
				if err != nil {
					errs[i] = err
					return
				}
				pieces[i] = v
			}
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return 0, err
		}
	}
	return floats.Sum(pieces), nil
}

func checkComposite(r Rule, f Integrand, a, b float64, n int) error {
	if r == nil {
		return fmt.Errorf("%w: nil rule", ErrInvalidArgument)
	}
	if f == nil {
		return fmt.Errorf("%w: nil integrand", ErrInvalidArgument)
	}
	if n < 1 {
		return fmt.Errorf("%w: subdivision count %d, need at least 1", ErrInvalidArgument, n)
	}
	return CheckBounds(a, b)
}

// breakpoints returns the n+1 evenly spaced partition points of [a, b].
// The first point is exactly a and the last exactly b, so the pieces
// cover the interval with no gap at either end.
func breakpoints(a, b float64, n int) []float64 {
	pts := floats.Span(make([]float64, n+1), a, b)
	pts[n] = b
	return pts
}
