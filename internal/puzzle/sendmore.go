package puzzle

import (
	"fmt"

	"github.com/plsearch/plsearch/engine"
)

// column is one column of the addition: the addends plus carry in on
// the left, and the result digit with its carry out.
type column struct {
	left  []engine.Term
	digit engine.Term
	carry engine.Term
}

// SendMore is the SEND + MORE = MONEY cryptarithm. Each letter stands
// for a distinct digit; S and M are nonzero.
type SendMore struct {
	S, E, N, D, M, O, R, Y *DigitVar

	letters []*DigitVar
	carries []*DigitVar
	columns []column
}

// NewSendMore returns a fresh instance of the puzzle.
func NewSendMore() *SendMore {
	p := &SendMore{
		S: NewDigitVar(Span(1, 9)...),
		E: NewDigitVar(Span(0, 9)...),
		N: NewDigitVar(Span(0, 9)...),
		D: NewDigitVar(Span(0, 9)...),
		M: NewDigitVar(1, 2),
		O: NewDigitVar(Span(0, 9)...),
		R: NewDigitVar(Span(0, 9)...),
		Y: NewDigitVar(Span(0, 9)...),
	}
	SetDisjoint(p.D, p.E, p.N, p.R, p.S, p.M, p.O, p.Y)
	c1 := NewDigitVar(0, 1, 2)
	c2 := NewDigitVar(0, 1, 2)
	c3 := NewDigitVar(0, 1, 2)
	p.letters = []*DigitVar{p.D, p.E, p.N, p.R, p.S, p.M, p.O, p.Y}
	p.carries = []*DigitVar{c1, c2, c3}
	p.columns = []column{
		{left: []engine.Term{p.D, p.E}, digit: p.Y, carry: c1},
		{left: []engine.Term{p.N, p.R, c1}, digit: p.E, carry: c2},
		{left: []engine.Term{p.E, p.O, c2}, digit: p.N, carry: c3},
		{left: []engine.Term{p.S, p.M, c3}, digit: p.O, carry: p.M},
	}
	return p
}

// propagate runs column arithmetic to a fixpoint. A fully ground left
// side determines the result digit and carry; a column with one
// unknown on the left and a ground right side determines it. False
// means the current bindings admit no solution.
func (p *SendMore) propagate(e *engine.Engine) bool {
	for progress := true; progress; {
		progress = false
		for _, c := range p.columns {
			left := engine.DerefAll(c.left)
			ground := 0
			var unknowns []engine.Term
			for _, x := range left {
				if n, ok := x.(int); ok {
					ground += n
				} else {
					unknowns = append(unknowns, x)
				}
			}
			digit := engine.Deref(c.digit)
			carry := engine.Deref(c.carry)
			switch len(unknowns) {
			case 0:
				if engine.IsVar(digit) || engine.IsVar(carry) {
					progress = true
				}
				if !e.Unify(c.digit, ground%10) || !e.Unify(c.carry, ground/10) {
					return false
				}
			case 1:
				dn, dok := digit.(int)
				cn, cok := carry.(int)
				if dok && cok {
					progress = true
					if !e.Unify(unknowns[0], dn+10*cn-ground) {
						return false
					}
				}
			}
		}
	}
	return true
}

// Goal returns the search goal: label letters and carries, pruning by
// column propagation after each choice.
func (p *SendMore) Goal() engine.Pred {
	all := append(append([]*DigitVar{}, p.letters...), p.carries...)
	return Labeling(all, p.propagate)
}

// Vars returns the letter variables in the order D E N R S M O Y.
func (p *SendMore) Vars() []engine.Term {
	out := make([]engine.Term, len(p.letters))
	for i, v := range p.letters {
		out[i] = v
	}
	return out
}

// Render formats a solution row from Vars ordering into the classic
// three-line layout.
func (p *SendMore) Render(row []engine.Term) string {
	d, e, n, r := row[0], row[1], row[2], row[3]
	s, m, o, y := row[4], row[5], row[6], row[7]
	return fmt.Sprintf("  %v%v%v%v\n+ %v%v%v%v\n------\n %v%v%v%v%v\n",
		s, e, n, d, m, o, r, e, m, o, n, e, y)
}
