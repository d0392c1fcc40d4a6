package nc

import (
	"fmt"

	"github.com/stephens999/quadrature/quad"
)

// Method identifies one of the built-in Newton-Cotes formulas.
type Method int

const (
	// Midpoint is the one-node open formula, exact through degree 1.
	Midpoint Method = iota
	// Trapezoid is the two-node closed formula, exact through degree 1.
	Trapezoid
	// Simpson is the three-node closed formula, exact through degree 3.
	Simpson
	// Boole is the five-node closed formula, exact through degree 5.
	Boole
	// Milne is the three-node open formula, exact through degree 3.
	Milne

	// NumberOfMethods is the count of built-in formulas.
	NumberOfMethods = int(iota)
)

var methodNames = [NumberOfMethods]string{
	"midpoint",
	"trapezoid",
	"simpson",
	"boole",
	"milne",
}

func (m Method) String() string {
	if m < 0 || int(m) >= NumberOfMethods {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// New builds the named formula from its historical coefficient table. The
// returned rule reproduces the hand-written form of the formula to within
// floating-point rounding.
func New(m Method) (quad.Rule, error) {
	var (
		coefficients []float64
		open         bool
		degree       int
	)
	switch m {
	case Midpoint:
		coefficients, open, degree = []float64{1}, true, 1
	case Trapezoid:
		coefficients, degree = []float64{1, 1}, 1
	case Simpson:
		coefficients, degree = []float64{1, 4, 1}, 3
	case Boole:
		coefficients, degree = []float64{7, 32, 12, 32, 7}, 5
	case Milne:
		coefficients, open, degree = []float64{2, -1, 2}, true, 3
	default:
		return nil, fmt.Errorf("%w: unknown method %v", quad.ErrInvalidRule, m)
	}

	q, err := generate(coefficients, open)
	if err != nil {
		return nil, err
	}
	q.Name = m.String()
	q.Degree = degree
	return q, nil
}
