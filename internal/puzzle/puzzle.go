// Package puzzle contains finite-domain demonstration problems built
// on the search engine: labelling over constrained variables with
// pruning between choices.
package puzzle

import (
	"github.com/plsearch/plsearch/engine"
)

// DigitVar is a variable ranging over a fixed set of small integers.
// Variables in the same disjointness group never share a value; the
// check happens in Bind so any unification route is covered.
type DigitVar struct {
	engine.Var
	choices  []int
	disjoint []*DigitVar
}

// NewDigitVar returns a variable ranging over choices.
func NewDigitVar(choices ...int) *DigitVar {
	return &DigitVar{Var: *engine.NewVar(), choices: choices}
}

// Span returns the integers from lo to hi inclusive.
func Span(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		out = append(out, n)
	}
	return out
}

// SetDisjoint puts vars into one disjointness group.
func SetDisjoint(vars ...*DigitVar) {
	for _, v := range vars {
		v.disjoint = vars
	}
}

// Bind vetoes values outside the domain and values already taken by a
// group member.
func (v *DigitVar) Bind(t engine.Term) bool {
	n, ok := t.(int)
	if !ok || !v.allowed(n) {
		return false
	}
	return v.Var.Bind(t)
}

func (v *DigitVar) allowed(n int) bool {
	ok := false
	for _, c := range v.choices {
		if c == n {
			ok = true
			break
		}
	}
	if !ok {
		return false
	}
	for _, o := range v.disjoint {
		if o == v {
			continue
		}
		if b, bound := engine.Deref(o).(int); bound && b == n {
			return false
		}
	}
	return true
}

// Choices returns the values v can still take.
func (v *DigitVar) Choices() []engine.Term {
	var out []engine.Term
	for _, c := range v.choices {
		if v.allowed(c) {
			out = append(out, c)
		}
	}
	return out
}

var _ engine.ChoiceSource = (*DigitVar)(nil)

// FirstUnbound returns the first unbound variable of vars, or nil.
func FirstUnbound(vars []*DigitVar) *DigitVar {
	for _, v := range vars {
		if engine.IsVar(v) {
			return v
		}
	}
	return nil
}

// labelPred binds one variable to one of its remaining candidates,
// then runs the pruning test over the resulting state.
type labelPred struct {
	engine.BasePred
	v    *DigitVar
	test func(e *engine.Engine) bool
}

func (p *labelPred) InitializeCall(e *engine.Engine) bool {
	p.Iter = engine.NewVarChoiceIterator(p.v, p.v.Choices()...)
	return true
}

func (p *labelPred) TestChoice(e *engine.Engine) bool {
	if p.test == nil {
		return true
	}
	return p.test(e)
}

// Labeling returns a predicate that repeatedly labels the first
// unbound variable until none remain, calling test after every
// binding. A nil test labels without pruning.
func Labeling(vars []*DigitVar, test func(e *engine.Engine) bool) engine.Pred {
	return engine.NewLoop(
		func(e *engine.Engine) bool { return FirstUnbound(vars) != nil },
		func() engine.Pred { return &labelPred{v: FirstUnbound(vars), test: test} },
	)
}
