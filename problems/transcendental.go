package problems

import "math"

type analytic struct {
	description string
	fcn         func(float64) float64
	primitive   func(float64) float64
}

func (p *analytic) Description() string   { return p.description }
func (p *analytic) Fcn(x float64) float64 { return p.fcn(x) }
func (p *analytic) Degree() int           { return Transcendental }

func (p *analytic) Integral(a, b float64) float64 {
	return p.primitive(b) - p.primitive(a)
}

// Sine is sin(x). Over [0, pi] the exact integral is 2; over whole
// periods it vanishes, which makes wide intervals a cancellation stress
// case.
func Sine() Problem {
	return &analytic{
		description: "sin(x)",
		fcn:         math.Sin,
		primitive:   func(x float64) float64 { return -math.Cos(x) },
	}
}

// Exp is e^x, smooth and convex with all derivatives positive.
func Exp() Problem {
	return &analytic{
		description: "exp(x)",
		fcn:         math.Exp,
		primitive:   math.Exp,
	}
}

// Runge is 1/(1+25x^2), the classic example of a smooth function whose
// steep flanks punish low-order rules on wide intervals.
func Runge() Problem {
	return &analytic{
		description: "1/(1+25*x^2)",
		fcn:         func(x float64) float64 { return 1 / (1 + 25*x*x) },
		primitive:   func(x float64) float64 { return math.Atan(5*x) / 5 },
	}
}
