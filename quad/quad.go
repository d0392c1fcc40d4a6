// Package quad approximates definite integrals of real functions with
// interchangeable quadrature rules.
//
// A Rule estimates the integral of an integrand over a single interval from
// finitely many point evaluations. The nc subpackage generates the whole
// Newton-Cotes rule family from coefficient tables; Composite refines any
// rule by summing its estimates over equal sub-intervals of a larger
// interval. Rules are immutable values, so one instance can be shared
// across goroutines and reused for any number of integrations.
package quad

import (
	"errors"
	"fmt"
	"math"
)

// Integrand is a real-valued function of one real variable. The engine
// assumes it is pure and defined over the queried interval; it is never
// inspected, only called at sample points. An integrand that produces NaN
// or ±Inf at a sampled point surfaces as ErrEvaluation, and an integrand
// that panics is not recovered.
type Integrand func(x float64) float64

// Rule approximates the definite integral of f over [a, b].
//
// Apply returns 0 when a == b, without evaluating f. What a rule does
// with reversed bounds is implementation-defined; Composite provides the
// exact signed-interval convention for any rule by swapping before the
// rule is applied. Implementations must be immutable after construction
// and safe for concurrent use.
type Rule interface {
	Apply(f Integrand, a, b float64) (float64, error)
}

// RuleFunc adapts a plain function to the Rule interface, so simple rules
// can be written directly:
//
//	midpoint := quad.RuleFunc(func(f quad.Integrand, a, b float64) (float64, error) {
//		if a == b {
//			return 0, nil
//		}
//		return (b - a) * f((a+b)/2), nil
//	})
type RuleFunc func(f Integrand, a, b float64) (float64, error)

// Apply calls r(f, a, b).
func (r RuleFunc) Apply(f Integrand, a, b float64) (float64, error) {
	return r(f, a, b)
}

// RuleInfo describes a quadrature rule: how many integrand samples one
// application takes and the largest polynomial degree the rule integrates
// exactly. Rules that carry a descriptor expose it through an
// Info() RuleInfo method.
type RuleInfo struct {
	Name   string
	Nodes  int
	Degree int
}

// Info returns a copy of the descriptor.
func (i *RuleInfo) Info() RuleInfo {
	return *i
}

var (
	// ErrInvalidRule reports a coefficient table that no rule can be
	// generated from. It is returned at generation time only, never
	// during evaluation.
	ErrInvalidRule = errors.New("quad: invalid rule")

	// ErrInvalidArgument reports an unusable integration request. It is
	// returned before any integrand evaluation takes place.
	ErrInvalidArgument = errors.New("quad: invalid argument")

	// ErrEvaluation reports a non-finite integrand value or integration
	// bound.
	ErrEvaluation = errors.New("quad: evaluation failed")
)

// CheckBounds validates that both integration bounds are finite.
func CheckBounds(a, b float64) error {
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return fmt.Errorf("%w: non-finite bounds [%v, %v]", ErrEvaluation, a, b)
	}
	return nil
}

// Sample evaluates f at x and validates the result, reporting
// ErrEvaluation for NaN or ±Inf. Rule implementations use it so that an
// undefined integrand is never silently folded into a numeric result.
func Sample(f Integrand, x float64) (float64, error) {
	y := f(x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("%w: integrand returned %v at x=%v", ErrEvaluation, y, x)
	}
	return y, nil
}
