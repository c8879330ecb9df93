package sat

import (
	"fmt"
	"reflect"

	"github.com/plsearch/plsearch/engine"
)

// Domain associates a logic variable with its candidate values. Each
// candidate becomes one selectable proposition named "<name>=<value>",
// and the domain itself contributes an exactly-one constraint over
// its candidates.
type Domain struct {
	Name   string
	Var    engine.Term
	Values []engine.Term
}

// SelectionID returns the identifier of the i'th candidate selection.
func (d *Domain) SelectionID(i int) Identifier {
	return Identifier(fmt.Sprintf("%s=%v", d.Name, d.Values[i]))
}

// selectionIDs returns the identifiers of every candidate of d.
func (d *Domain) selectionIDs() []Identifier {
	ids := make([]Identifier, len(d.Values))
	for i := range d.Values {
		ids[i] = d.SelectionID(i)
	}
	return ids
}

// variable is the generic Variable used for domain encodings.
type variable struct {
	id          Identifier
	constraints []Constraint
}

func (v *variable) Identifier() Identifier { return v.id }

func (v *variable) Constraints() []Constraint { return v.constraints }

// NewVariable returns a Variable with the given identifier and
// constraints, for encodings built directly rather than from Domains.
func NewVariable(id Identifier, constraints ...Constraint) Variable {
	return &variable{id: id, constraints: constraints}
}

// Model is a set of domains plus extra constraints over their
// candidate selections, compiled into a Checker.
type Model struct {
	domains []*Domain
	extra   map[Identifier][]Constraint
	order   []Identifier
	checker *Checker
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{extra: map[Identifier][]Constraint{}}
}

// AddDomain registers a finite domain. Must precede Compile.
func (m *Model) AddDomain(d *Domain) { m.domains = append(m.domains, d) }

// Constrain attaches constraints to id. The identifier may name an
// existing selection or introduce a fresh synthetic variable. Must
// precede Compile.
func (m *Model) Constrain(id Identifier, cs ...Constraint) {
	if _, ok := m.extra[id]; !ok {
		m.order = append(m.order, id)
	}
	m.extra[id] = append(m.extra[id], cs...)
}

// AllDistinct forbids two of the given domains from taking the same
// value. Domains are matched on value equality across their candidate
// lists. Must precede Compile.
func (m *Model) AllDistinct(domains ...*Domain) {
	byValue := map[string][]Identifier{}
	var order []string
	for _, d := range domains {
		for i, v := range d.Values {
			key := fmt.Sprint(v)
			if len(byValue[key]) == 0 {
				order = append(order, key)
			}
			byValue[key] = append(byValue[key], d.SelectionID(i))
		}
	}
	for _, key := range order {
		ids := byValue[key]
		if len(ids) < 2 {
			continue
		}
		m.Constrain(Identifier("distinct("+key+")"), Mandatory(), AtMost(1, ids...))
	}
}

// Compile encodes every domain and constraint into a Checker. No
// domains or constraints may be added afterwards.
func (m *Model) Compile() error {
	var vars []Variable
	seen := map[Identifier]bool{}
	take := func(id Identifier) []Constraint {
		cs := m.extra[id]
		delete(m.extra, id)
		return cs
	}
	for _, d := range m.domains {
		ids := d.selectionIDs()
		for _, id := range ids {
			if seen[id] {
				return DuplicateIdentifier(id)
			}
			seen[id] = true
			vars = append(vars, NewVariable(id, take(id)...))
		}
		anchor := Identifier("domain(" + d.Name + ")")
		cs := append([]Constraint{
			Mandatory(),
			Dependency(ids...),
			AtMost(1, ids...),
		}, take(anchor)...)
		vars = append(vars, NewVariable(anchor, cs...))
	}
	for _, id := range m.order {
		cs, ok := m.extra[id]
		if !ok {
			continue
		}
		delete(m.extra, id)
		vars = append(vars, NewVariable(id, cs...))
	}
	checker, err := NewChecker(vars)
	if err != nil {
		return err
	}
	m.checker = checker
	return nil
}

// assumptions maps the current bindings of the model's domains to
// selection identifiers. A binding outside its domain reports false.
func (m *Model) assumptions() ([]Identifier, bool) {
	var assumed []Identifier
	for _, d := range m.domains {
		t := engine.Deref(d.Var)
		if engine.IsVar(t) {
			continue
		}
		found := false
		for i, v := range d.Values {
			if reflect.DeepEqual(v, t) {
				assumed = append(assumed, d.SelectionID(i))
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return assumed, true
}

// Consistent reports whether the current bindings of the model's
// domain variables extend to a full assignment satisfying every
// constraint.
func (m *Model) Consistent() (bool, error) {
	assumed, ok := m.assumptions()
	if !ok {
		return false, nil
	}
	return m.checker.Check(assumed...)
}

// CheckPred is a predicate that succeeds exactly when the model is
// consistent with the bindings in force at call time. Placed after
// each labelling step it prunes branches no full assignment can
// extend.
type CheckPred struct {
	engine.SemiDetPred
	Model *Model

	// Err records an internal solver failure; the predicate fails and
	// leaves the error here for the caller.
	Err error
}

// NewCheckPred returns a consistency check over m, which must be
// compiled.
func NewCheckPred(m *Model) *CheckPred {
	return &CheckPred{Model: m}
}

func (p *CheckPred) TestChoice(e *engine.Engine) bool {
	ok, err := p.Model.Consistent()
	if err != nil {
		p.Err = err
		return false
	}
	return ok
}
