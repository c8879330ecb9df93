package puzzle

import (
	"github.com/plsearch/plsearch/engine"
)

const magicTotal = 15

// sumConstraint states that the remaining variables sum to total. The
// zero value marks a solved constraint.
type sumConstraint struct {
	vars  []engine.Term
	total int
}

func (c sumConstraint) solved() bool { return len(c.vars) == 0 && c.total == 0 }

// MagicSquare is the 3x3 magic square: the numbers 1 through 9 placed
// so every row, column and diagonal sums to 15. The sum constraints
// live in updatable cells so each simplification unwinds on
// backtracking.
type MagicSquare struct {
	cells       [9]*DigitVar
	constraints []*engine.UpdatableVar
}

// NewMagicSquare returns a fresh instance of the puzzle.
func NewMagicSquare() *MagicSquare {
	m := &MagicSquare{}
	group := make([]*DigitVar, 9)
	for i := range m.cells {
		m.cells[i] = NewDigitVar(Span(1, 9)...)
		group[i] = m.cells[i]
	}
	SetDisjoint(group...)
	at := func(r, c int) engine.Term { return m.cells[3*r+c] }
	lines := [][]engine.Term{
		{at(0, 0), at(0, 1), at(0, 2)},
		{at(1, 0), at(1, 1), at(1, 2)},
		{at(2, 0), at(2, 1), at(2, 2)},
		{at(0, 0), at(1, 0), at(2, 0)},
		{at(0, 1), at(1, 1), at(2, 1)},
		{at(0, 2), at(1, 2), at(2, 2)},
		{at(0, 0), at(1, 1), at(2, 2)},
		{at(0, 2), at(1, 1), at(2, 0)},
	}
	for _, line := range lines {
		m.constraints = append(m.constraints,
			engine.NewUpdatableVar(sumConstraint{vars: line, total: magicTotal}))
	}
	return m
}

// checkConstraints simplifies every sum constraint to a fixpoint. A
// line whose variables are all bound must hit its total exactly; a
// line with one unbound variable determines it. Simplified forms are
// written back through unification so they rewind with the trail.
func (m *MagicSquare) checkConstraints(e *engine.Engine) bool {
	for progress := true; progress; {
		progress = false
		for _, c := range m.constraints {
			sc := c.Value().(sumConstraint)
			if sc.solved() {
				continue
			}
			ground := 0
			var unknowns []engine.Term
			for _, x := range sc.vars {
				if n, ok := engine.Deref(x).(int); ok {
					ground += n
				} else {
					unknowns = append(unknowns, x)
				}
			}
			rest := sc.total - ground
			switch {
			case len(unknowns) == 0:
				if rest != 0 {
					return false
				}
				e.Unify(c, sumConstraint{})
			case rest < 0:
				return false
			case len(unknowns) == 1:
				progress = true
				if !e.Unify(unknowns[0], rest) {
					return false
				}
				e.Unify(c, sumConstraint{})
			case len(unknowns) < len(sc.vars):
				progress = true
				e.Unify(c, sumConstraint{vars: unknowns, total: rest})
			}
		}
	}
	return true
}

// Goal returns the search goal: label cells, simplifying the sum
// constraints after each choice.
func (m *MagicSquare) Goal() engine.Pred {
	return Labeling(m.cells[:], m.checkConstraints)
}

// Vars returns the nine cells in row-major order.
func (m *MagicSquare) Vars() []engine.Term {
	out := make([]engine.Term, len(m.cells))
	for i, v := range m.cells {
		out[i] = v
	}
	return out
}

// Square converts a row-major solution row into a 3x3 grid.
func (m *MagicSquare) Square(row []engine.Term) [3][3]int {
	var sq [3][3]int
	for i, t := range row {
		sq[i/3][i%3] = t.(int)
	}
	return sq
}
