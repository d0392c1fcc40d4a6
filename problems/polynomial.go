package problems

import (
	"fmt"
	"strings"
)

type polynomial struct {
	// coefficients[k] multiplies x^k; trailing zeros are trimmed at
	// construction so the degree is that of the stored slice.
	coefficients []float64
}

// NewPoly builds the polynomial problem
//
//	c[0] + c[1]*x + ... + c[k]*x^k
//
// from its coefficients in ascending order of degree. Polynomials are the
// exactness yardstick: a rule of exactness degree d must reproduce the
// integral of every polynomial up to degree d to rounding.
func NewPoly(coefficients ...float64) Problem {
	k := len(coefficients)
	for k > 1 && coefficients[k-1] == 0 {
		k--
	}
	p := polynomial{coefficients: make([]float64, k)}
	if k == 0 {
		p.coefficients = []float64{0}
	}
	copy(p.coefficients, coefficients[:k])
	return &p
}

func (p *polynomial) Description() string {
	terms := make([]string, len(p.coefficients))
	for k, c := range p.coefficients {
		terms[len(terms)-1-k] = fmt.Sprintf("%g*x^%d", c, k)
	}
	return strings.Join(terms, " + ")
}

func (p *polynomial) Fcn(x float64) float64 {
	y := 0.0
	for k := len(p.coefficients) - 1; k >= 0; k-- {
		y = y*x + p.coefficients[k]
	}
	return y
}

func (p *polynomial) Integral(a, b float64) float64 {
	return p.antiderivative(b) - p.antiderivative(a)
}

func (p *polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// antiderivative evaluates sum(c[k]/(k+1) * x^(k+1)) by Horner's scheme.
func (p *polynomial) antiderivative(x float64) float64 {
	y := 0.0
	for k := len(p.coefficients) - 1; k >= 0; k-- {
		y = y*x + p.coefficients[k]/float64(k+1)
	}
	return y * x
}
