// Package problems collects integrands with closed-form definite
// integrals. Quadrature tests measure their error against the exact
// values these problems report.
package problems

// Transcendental marks a problem whose integrand is not a polynomial, so
// no quadrature rule integrates it exactly.
const Transcendental = -1

type Problem interface {
	Description() string

	// Fcn evaluates the integrand at x.
	Fcn(x float64) float64

	// Integral returns the exact value of the definite integral over
	// [a, b].
	Integral(a, b float64) float64

	// Degree returns the polynomial degree of the integrand, or
	// Transcendental.
	Degree() int
}
