package plsearch

import (
	"github.com/plsearch/plsearch/engine"
)

// Resolve returns a snapshot of t with every variable chased to its
// binding. Slices of terms are resolved elementwise into a fresh
// slice; unbound variables appear as themselves.
func Resolve(t engine.Term) engine.Term {
	t = engine.Deref(t)
	if ts, ok := t.([]engine.Term); ok {
		out := make([]engine.Term, len(ts))
		for i, x := range ts {
			out[i] = Resolve(x)
		}
		return out
	}
	return t
}

// collector sits at the end of a goal chain and records the watched
// terms each time the chain succeeds. Returning false from TestChoice
// drives the engine back into the goal for another solution; once max
// is reached it lets the search stop.
type collector struct {
	engine.SemiDetPred
	terms   []engine.Term
	max     int
	results [][]engine.Term
}

func (c *collector) TestChoice(e *engine.Engine) bool {
	row := make([]engine.Term, len(c.terms))
	for i, t := range c.terms {
		row[i] = Resolve(t)
	}
	c.results = append(c.results, row)
	return c.max > 0 && len(c.results) >= c.max
}

// Collect runs goal on e and returns up to max solutions, each a
// resolved snapshot of terms. A max of zero or less collects every
// solution. Bindings do not survive the call; the snapshots do.
func Collect(e *engine.Engine, goal engine.Pred, max int, terms ...engine.Term) [][]engine.Term {
	c := &collector{terms: terms, max: max}
	engine.LastPred(goal).SetContinuation(c)
	e.Execute(goal)
	return c.results
}

// FindAll runs goal on e and returns a snapshot of terms for every
// solution.
func FindAll(e *engine.Engine, goal engine.Pred, terms ...engine.Term) [][]engine.Term {
	return Collect(e, goal, 0, terms...)
}

// counter fails every solution so the search is exhausted, keeping
// only the tally.
type counter struct {
	engine.SemiDetPred
	n int
}

func (c *counter) TestChoice(e *engine.Engine) bool {
	c.n++
	return false
}

// Count runs goal on e and returns the number of solutions it has.
func Count(e *engine.Engine, goal engine.Pred) int {
	c := &counter{}
	engine.LastPred(goal).SetContinuation(c)
	e.Execute(goal)
	return c.n
}
