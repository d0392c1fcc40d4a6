// Package quadtest exercises quadrature rules against a shared corpus of
// integrands with known integrals.
package quadtest

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/stephens999/quadrature/problems"
	"github.com/stephens999/quadrature/quad"
	"github.com/stephens999/quadrature/util"
)

type ruleProblem struct {
	problems.Problem
	lo, hi float64
}

var ruleProblems = []ruleProblem{
	{problems.NewPoly(2.5, -1), -10, 10},
	{problems.NewPoly(0, 0, 1), -10, 10},
	{problems.NewPoly(10, 142, math.Pi, 10), -10, 10},
	{problems.NewPoly(0, 0, math.E, 42.4543, 83.23454), -10, 10},
	{problems.NewPoly(1, -2, 0, 1, 0, 0.5), -10, 10},
	{problems.Sine(), -10, 10},
	{problems.Exp(), -2, 2},
	{problems.Runge(), -1, 1},
}

// refinements holds the subdivision counts used for the error-decay
// check. They start at 4 so that every sub-interval of the widest corpus
// interval stays well below one period of the sine problem.
var refinements = []int{4, 8, 16, 32, 64}

// RunRuleTests drives every rule through the shared corpus: empty
// intervals cost no evaluations and yield 0, constants are integrated
// exactly, composite estimates negate when the bounds are reversed and
// degenerate to a bare rule application for a single piece, polynomials
// up to the rule's declared exactness degree are reproduced to rounding,
// and the composite error decays as the partition is refined. iterations
// controls how many random sub-intervals are drawn per problem; -short
// runs a single iteration.
func RunRuleTests(t *testing.T, rules []quad.Rule, iterations int) {
	if testing.Short() && iterations > 1 {
		iterations = 1
	}
	rng := rand.New(rand.NewSource(1))

	for _, r := range rules {
		if r == nil {
			continue
		}
		info := describe(r)

		testEmptyInterval(t, r, info)
		testConstant(t, r, info, rng)

		if testing.Verbose() {
			t.Logf("%s\tproblem\ta\tb\terr(n=%d)\terr(n=%d)", info.Name, refinements[0], refinements[len(refinements)-1])
		}

		errs := util.MakeRectangular(len(ruleProblems), len(refinements))
		for pi, p := range ruleProblems {
			for it := 0; it < iterations; it++ {
				a := util.RandomInInterval(rng, p.lo, p.hi)
				b := util.RandomInInterval(rng, a, p.hi)

				testDegenerations(t, r, info, p.Problem, a, b)
				if d := p.Degree(); d >= 0 && d <= info.Degree {
					// The rule reproduces this problem exactly, so
					// there is no error left for refinement to shrink.
					testExact(t, r, info, p.Problem, a, b)
					continue
				}
				testRefinement(t, r, info, p.Problem, a, b, errs[pi])

				if testing.Verbose() {
					t.Logf(" \t%s\t%.2f\t%.2f\t%.3e\t%.3e",
						p.Description(), a, b, errs[pi][0], errs[pi][len(refinements)-1])
				}
			}
		}
	}
}

func describe(r quad.Rule) quad.RuleInfo {
	if ir, ok := r.(interface{ Info() quad.RuleInfo }); ok {
		return ir.Info()
	}
	return quad.RuleInfo{Name: fmt.Sprintf("%T", r)}
}

func testEmptyInterval(t *testing.T, r quad.Rule, info quad.RuleInfo) {
	calls := 0
	undefined := func(x float64) float64 {
		calls++
		return math.NaN()
	}
	for _, c := range []float64{0, -3.25, 7.5} {
		v, err := r.Apply(undefined, c, c)
		if err != nil {
			t.Errorf("%s: Apply on [%v, %v] failed: %v", info.Name, c, c, err)
		}
		if v != 0 {
			t.Errorf("%s: Apply on [%v, %v] = %v, want 0", info.Name, c, c, v)
		}
	}
	if calls != 0 {
		t.Errorf("%s: evaluated the integrand %d times on empty intervals", info.Name, calls)
	}
}

func testConstant(t *testing.T, r quad.Rule, info quad.RuleInfo, rng *rand.Rand) {
	const k = 3.5
	a := util.RandomInInterval(rng, -10, 10)
	b := util.RandomInInterval(rng, a, 10)
	for _, n := range []int{1, 4} {
		got, err := quad.Composite(r, func(float64) float64 { return k }, a, b, n)
		if err != nil {
			t.Errorf("%s: constant integrand over [%v, %v] failed: %v", info.Name, a, b, err)
			continue
		}
		want := k * (b - a)
		if !scalar.EqualWithinAbsOrRel(got, want, 1e-10, 1e-12) {
			t.Errorf("%s: constant integrand over [%v, %v] with n=%d: got %v, want %v",
				info.Name, a, b, n, got, want)
		}
	}
}

// testDegenerations checks the identities that hold for every rule:
// a single-piece composite is the bare rule and reversing the bounds
// negates the estimate, both exactly.
func testDegenerations(t *testing.T, r quad.Rule, info quad.RuleInfo, p problems.Problem, a, b float64) {
	bare, err := r.Apply(p.Fcn, a, b)
	if err != nil {
		t.Errorf("%s: Apply %s over [%v, %v] failed: %v", info.Name, p.Description(), a, b, err)
		return
	}
	single, err := quad.Composite(r, p.Fcn, a, b, 1)
	if err != nil {
		t.Errorf("%s: composite n=1 over [%v, %v] failed: %v", info.Name, a, b, err)
		return
	}
	if single != bare {
		t.Errorf("%s: composite with one piece = %v, bare rule = %v", info.Name, single, bare)
	}

	forward, err1 := quad.Composite(r, p.Fcn, a, b, 7)
	reverse, err2 := quad.Composite(r, p.Fcn, b, a, 7)
	if err1 != nil || err2 != nil {
		t.Errorf("%s: orientation check failed: %v, %v", info.Name, err1, err2)
		return
	}
	if reverse != -forward {
		t.Errorf("%s: reversed bounds gave %v, want %v", info.Name, reverse, -forward)
	}
}

func testExact(t *testing.T, r quad.Rule, info quad.RuleInfo, p problems.Problem, a, b float64) {
	want := p.Integral(a, b)
	for _, n := range []int{1, 3} {
		got, err := quad.Composite(r, p.Fcn, a, b, n)
		if err != nil {
			t.Errorf("%s: %s over [%v, %v] failed: %v", info.Name, p.Description(), a, b, err)
			return
		}
		if !scalar.EqualWithinAbsOrRel(got, want, 1e-7, 1e-10) {
			t.Errorf("%s: degree %d should be exact for %s over [%v, %v]: got %v, want %v",
				info.Name, info.Degree, p.Description(), a, b, got, want)
		}
	}
}

// testRefinement fills errRow with the absolute error at each refinement
// level and checks that refining pays off: the finest partition must beat
// the worst coarser one by an order of magnitude. The comparison is
// against the worst level rather than strictly level by level because the
// leading error terms of a low-order rule can cancel at one particular
// piece width, which makes the error dip and recover without the rule
// being at fault.
func testRefinement(t *testing.T, r quad.Rule, info quad.RuleInfo, p problems.Problem, a, b float64, errRow []float64) {
	want := p.Integral(a, b)
	slack := 1e-12 * (1 + math.Abs(want))

	for li, n := range refinements {
		got, err := quad.Composite(r, p.Fcn, a, b, n)
		if err != nil {
			t.Errorf("%s: %s over [%v, %v] with n=%d failed: %v", info.Name, p.Description(), a, b, n, err)
			return
		}
		errRow[li] = math.Abs(got - want)
	}

	last := len(refinements) - 1
	worst := 0.0
	for _, e := range errRow[:last] {
		worst = math.Max(worst, e)
	}
	if errRow[last] > 0.1*worst+slack {
		t.Errorf("%s: %s over [%v, %v]: error %.3e at n=%d barely improves on %.3e at coarser partitions",
			info.Name, p.Description(), a, b, errRow[last], refinements[last], worst)
	}
}
