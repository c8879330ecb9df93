package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// Checker answers satisfiability queries about a fixed set of
// variables and constraints, under varying extra assumptions. A
// Checker is not safe for concurrent use.
type Checker struct {
	g      inter.S
	litMap *litMapping
}

// NewChecker encodes variables and their constraints once; Check and
// Solve may then be called repeatedly.
func NewChecker(variables []Variable) (*Checker, error) {
	litMap, err := newLitMapping(variables)
	if err != nil {
		return nil, err
	}
	ch := &Checker{g: gini.New(), litMap: litMap}
	ch.litMap.AddConstraints(ch.g)
	return ch, nil
}

func (ch *Checker) assume(assumed []Identifier) {
	anchors := ch.litMap.AnchorIdentifiers()
	assumptions := make([]z.Lit, 0, len(anchors)+len(assumed))
	for _, id := range anchors {
		assumptions = append(assumptions, ch.litMap.LitOf(id))
	}
	for _, id := range assumed {
		assumptions = append(assumptions, ch.litMap.LitOf(id))
	}
	ch.litMap.AssumeConstraints(ch.g)
	ch.g.Assume(assumptions...)
}

// Check reports whether a model exists in which every constraint
// holds and every assumed identifier is selected. The error is
// non-nil only for internal encoding failures, never for plain
// unsatisfiability.
func (ch *Checker) Check(assumed ...Identifier) (bool, error) {
	ch.assume(assumed)
	ok := ch.g.Solve() == satisfiable
	if err := ch.litMap.Error(); err != nil {
		return false, err
	}
	return ok, nil
}

// Solve returns the variables selected in some model satisfying every
// constraint and the assumed identifiers. When no such model exists
// it returns a NotSatisfiable error listing the conflicting
// constraints.
func (ch *Checker) Solve(assumed ...Identifier) ([]Variable, error) {
	ch.assume(assumed)
	outcome := ch.g.Solve()
	if err := ch.litMap.Error(); err != nil {
		return nil, err
	}
	switch outcome {
	case satisfiable:
		return ch.litMap.Selected(ch.g), nil
	case unsatisfiable:
		return nil, NotSatisfiable(ch.litMap.Conflicts(ch.g))
	}
	return nil, NotSatisfiable(nil)
}
