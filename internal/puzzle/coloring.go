package puzzle

import (
	"github.com/plsearch/plsearch/engine"
	"github.com/plsearch/plsearch/sat"
)

// Coloring is a map coloring problem: assign each region one of the
// available colors so no two adjacent regions match. Adjacency is
// encoded propositionally and a satisfiability check after every
// labelling step prunes assignments that cannot be completed.
type Coloring struct {
	Regions  []string
	Adjacent [][2]string
	Colors   []string

	vars  map[string]*DigitVar
	order []*DigitVar
	model *sat.Model
}

// NewColoring builds the problem and compiles its propositional
// model. Colors are referred to by index in the search variables.
func NewColoring(regions []string, adjacent [][2]string, colors []string) (*Coloring, error) {
	p := &Coloring{
		Regions:  regions,
		Adjacent: adjacent,
		Colors:   colors,
		vars:     make(map[string]*DigitVar, len(regions)),
		model:    sat.NewModel(),
	}
	idx := Span(0, len(colors)-1)
	domains := make(map[string]*sat.Domain, len(regions))
	for _, r := range regions {
		v := NewDigitVar(idx...)
		p.vars[r] = v
		p.order = append(p.order, v)
		values := make([]engine.Term, len(idx))
		for i := range idx {
			values[i] = idx[i]
		}
		d := &sat.Domain{Name: r, Var: v, Values: values}
		domains[r] = d
		p.model.AddDomain(d)
	}
	for _, pair := range adjacent {
		a, b := domains[pair[0]], domains[pair[1]]
		for i := range colors {
			p.model.Constrain(a.SelectionID(i), sat.Conflict(b.SelectionID(i)))
		}
	}
	if err := p.model.Compile(); err != nil {
		return nil, err
	}
	return p, nil
}

// Goal returns the search goal: label regions in input order with a
// consistency check after every choice.
func (p *Coloring) Goal() engine.Pred {
	check := sat.NewCheckPred(p.model)
	return Labeling(p.order, func(e *engine.Engine) bool {
		return check.TestChoice(e)
	})
}

// Vars returns the region variables in input order.
func (p *Coloring) Vars() []engine.Term {
	out := make([]engine.Term, len(p.order))
	for i, v := range p.order {
		out[i] = v
	}
	return out
}

// Assignment converts a solution row from Vars ordering into a map
// from region to color name.
func (p *Coloring) Assignment(row []engine.Term) map[string]string {
	out := make(map[string]string, len(p.Regions))
	for i, r := range p.Regions {
		out[r] = p.Colors[row[i].(int)]
	}
	return out
}

// Australia returns the classic mainland Australia instance.
func Australia() (*Coloring, error) {
	regions := []string{"WA", "NT", "SA", "Q", "NSW", "V", "T"}
	adjacent := [][2]string{
		{"WA", "NT"}, {"WA", "SA"}, {"NT", "SA"}, {"NT", "Q"},
		{"SA", "Q"}, {"SA", "NSW"}, {"SA", "V"}, {"Q", "NSW"},
		{"NSW", "V"},
	}
	colors := []string{"red", "green", "blue"}
	return NewColoring(regions, adjacent, colors)
}
