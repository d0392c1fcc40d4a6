// Package nc generates quadrature rules of the Newton-Cotes family from
// coefficient tables.
//
// A Newton-Cotes formula samples the integrand at evenly spaced nodes and
// combines the samples with fixed weights. Closed formulas place nodes on
// the interval endpoints as well as between them; open formulas sample
// interior points only. The classic low-order formulas are available by
// name through New; NewtonCotes generates a rule from any coefficient
// table.
package nc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/stephens999/quadrature/quad"
)

// formula is an immutable Newton-Cotes rule. The node layout and the
// normalized weights are fixed at generation time, so Apply carries no
// state and a single formula value is safe for concurrent use.
type formula struct {
	quad.RuleInfo
	open bool

	// weights holds the coefficients scaled by the reciprocal of their
	// sum; fractions holds the node positions relative to [a, b].
	weights   []float64
	fractions []float64
}

// NewtonCotes generates the quadrature rule defined by the given
// coefficient table.
//
// A table of k coefficients defines a rule on k evenly spaced nodes.
// Closed rules place them at the fractions i/(k-1) of the interval,
// i = 0..k-1, so both endpoints are sampled. Open rules place them at the
// interior fractions (i+1)/(k+1), excluding the endpoints, which is what
// makes the midpoint and Milne formulas applicable to integrands that are
// undefined on the boundary.
// The generated rule applied to (f, a, b) evaluates
//
//	(b-a)/sum(c) * (c[0]*f(x[0]) + ... + c[k-1]*f(x[k-1]))
//
// The coefficient sum is the normalizing divisor, so a table that is
// empty, sums to exactly zero or contains a non-finite entry is rejected
// with ErrInvalidRule, as is a closed table with a single coefficient,
// whose node spacing would divide by zero. A table whose sum is merely
// close to zero is accepted but amplifies rounding in every application.
//
// The table is not retained; mutating it afterwards does not affect the
// returned rule.
func NewtonCotes(coefficients []float64, open bool) (quad.Rule, error) {
	q, err := generate(coefficients, open)
	if err != nil {
		return nil, err
	}
	return q, nil
}

func generate(coefficients []float64, open bool) (*formula, error) {
	k := len(coefficients)
	if k == 0 {
		return nil, fmt.Errorf("%w: empty coefficient table", quad.ErrInvalidRule)
	}
	if !open && k < 2 {
		return nil, fmt.Errorf("%w: closed rule needs at least two coefficients", quad.ErrInvalidRule)
	}
	for i, c := range coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("%w: non-finite coefficient %v at index %d", quad.ErrInvalidRule, c, i)
		}
	}
	sum := floats.Sum(coefficients)
	if sum == 0 {
		return nil, fmt.Errorf("%w: coefficients sum to zero", quad.ErrInvalidRule)
	}

	q := &formula{
		RuleInfo: quad.RuleInfo{
			Name:  fmt.Sprintf("newton-cotes-%d%s", k, suffix(open)),
			Nodes: k,
			// Any normalized rule integrates constants exactly;
			// higher exactness is only claimed for the named
			// formulas, where it is known from the literature.
			Degree: 0,
		},
		open:      open,
		weights:   make([]float64, k),
		fractions: make([]float64, k),
	}
	for i, c := range coefficients {
		q.weights[i] = c / sum
	}
	if open {
		n := float64(k + 1)
		for i := range q.fractions {
			q.fractions[i] = float64(i+1) / n
		}
	} else {
		n1 := float64(k - 1)
		for i := range q.fractions {
			q.fractions[i] = float64(i) / n1
		}
	}
	return q, nil
}

func suffix(open bool) string {
	if open {
		return "-open"
	}
	return ""
}

// Apply estimates the integral of f over [a, b] as the weighted sum of f
// at the formula's nodes, scaled by the interval width. a == b returns 0
// without evaluating f. Reversed bounds integrate the swapped interval
// and negate, so Apply(f, b, a) == -Apply(f, a, b) exactly; the weights
// stay attached to their nodes instead of mirroring across the interval.
func (q *formula) Apply(f quad.Integrand, a, b float64) (float64, error) {
	if f == nil {
		return 0, fmt.Errorf("%w: nil integrand", quad.ErrInvalidArgument)
	}
	if err := quad.CheckBounds(a, b); err != nil {
		return 0, err
	}
	if a == b {
		return 0, nil
	}
	if a > b {
		v, err := q.Apply(f, b, a)
		return -v, err
	}

	sum := 0.0
	for i, t := range q.fractions {
		// Interpolated form rather than a + t*(b-a): it hits the
		// endpoints exactly and keeps every node inside [a, b].
		x := (1-t)*a + t*b
		y, err := quad.Sample(f, x)
		if err != nil {
			return 0, err
		}
		sum += q.weights[i] * y
	}
	return (b - a) * sum, nil
}
