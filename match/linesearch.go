// SPDX-License-Identifier: MIT

package match

// LineSearch chooses the step t ∈ [0,1] along P → Q for the quadratic
// f(t) = f(0) + b·t + a·t², where t = 0 keeps the current iterate.
// Implementations must not return a t with f(t) > f(0).
type LineSearch interface {
	Step(a, b float64) float64
}

// ExactLineSearch minimizes the quadratic in closed form.
type ExactLineSearch struct{}

// Step returns the exact minimizer of b·t + a·t² on [0,1].
func (ExactLineSearch) Step(a, b float64) float64 {
	if a > 0 {
		if t := -b / (2 * a); t >= 0 && t <= 1 {
			return t
		}
	}
	if a+b < 0 {
		return 1
	}

	return 0
}

// Backtracking defaults.
const (
	DefaultShrink   = 0.5
	DefaultArmijo   = 1e-4
	DefaultMaxSteps = 20
)

// BacktrackingLineSearch starts at t = 1 and shrinks by Shrink until the
// Armijo condition f(t) − f(0) ≤ min(0, Armijo·b·t) holds, giving up with
// t = 0 after MaxSteps trials. Zero fields take the Default* values.
type BacktrackingLineSearch struct {
	Shrink   float64
	Armijo   float64
	MaxSteps int
}

// Step returns the first accepted t, or 0.
func (ls BacktrackingLineSearch) Step(a, b float64) float64 {
	shrink, armijo, steps := ls.Shrink, ls.Armijo, ls.MaxSteps
	if shrink <= 0 || shrink >= 1 {
		shrink = DefaultShrink
	}
	if armijo <= 0 {
		armijo = DefaultArmijo
	}
	if steps <= 0 {
		steps = DefaultMaxSteps
	}

	t := 1.0
	for k := 0; k < steps; k++ {
		if b*t+a*t*t <= min(0, armijo*b*t) {
			return t
		}
		t *= shrink
	}

	return 0
}
