package sat

import (
	"fmt"
	"strings"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Identifier names one selectable proposition, typically a candidate
// assignment such as "L=3".
type Identifier string

// A Variable is a proposition plus the constraints attached to it.
type Variable interface {
	Identifier() Identifier
	Constraints() []Constraint
}

// A Constraint translates to a literal in the propositional encoding.
// The literal is assumed true on every check, so the constraint holds
// in every reported model.
type Constraint interface {
	String(subject Identifier) string
	Apply(c *logic.C, lm *litMapping, subject Identifier) z.Lit

	// Anchor reports whether the subject itself is assumed selected
	// whenever the formula is checked.
	Anchor() bool
}

// AppliedConstraint pairs a constraint with the variable it belongs
// to, for reporting conflicts.
type AppliedConstraint struct {
	Variable   Variable
	Constraint Constraint
}

func (a AppliedConstraint) String() string {
	return a.Constraint.String(a.Variable.Identifier())
}

// NotSatisfiable is returned when the formula has no model. It lists
// the constraints involved in the conflict.
type NotSatisfiable []AppliedConstraint

func (ns NotSatisfiable) Error() string {
	const msg = "constraints not satisfiable"
	if len(ns) == 0 {
		return msg
	}
	s := make([]string, len(ns))
	for i, a := range ns {
		s[i] = a.String()
	}
	return fmt.Sprintf("%s: %s", msg, strings.Join(s, ", "))
}

type mandatory struct{}

func (mandatory) String(subject Identifier) string {
	return fmt.Sprintf("%s is mandatory", subject)
}

func (mandatory) Apply(_ *logic.C, lm *litMapping, subject Identifier) z.Lit {
	return lm.LitOf(subject)
}

func (mandatory) Anchor() bool { return true }

// Mandatory returns a Constraint permitting only models that select
// the subject.
func Mandatory() Constraint { return mandatory{} }

type prohibited struct{}

func (prohibited) String(subject Identifier) string {
	return fmt.Sprintf("%s is prohibited", subject)
}

func (prohibited) Apply(_ *logic.C, lm *litMapping, subject Identifier) z.Lit {
	return lm.LitOf(subject).Not()
}

func (prohibited) Anchor() bool { return false }

// Prohibited returns a Constraint rejecting any model that selects
// the subject.
func Prohibited() Constraint { return prohibited{} }

type dependency []Identifier

func (d dependency) String(subject Identifier) string {
	if len(d) == 0 {
		return fmt.Sprintf("%s has a dependency without any candidates to satisfy it", subject)
	}
	s := make([]string, len(d))
	for i, each := range d {
		s[i] = string(each)
	}
	return fmt.Sprintf("%s requires at least one of %s", subject, strings.Join(s, ", "))
}

func (d dependency) Apply(c *logic.C, lm *litMapping, subject Identifier) z.Lit {
	m := lm.LitOf(subject).Not()
	for _, each := range d {
		m = c.Or(m, lm.LitOf(each))
	}
	return m
}

func (dependency) Anchor() bool { return false }

// Dependency returns a Constraint permitting the subject only in
// models that also select at least one of ids.
func Dependency(ids ...Identifier) Constraint { return dependency(ids) }

type conflict Identifier

func (co conflict) String(subject Identifier) string {
	return fmt.Sprintf("%s conflicts with %s", subject, Identifier(co))
}

func (co conflict) Apply(c *logic.C, lm *litMapping, subject Identifier) z.Lit {
	return c.Or(lm.LitOf(subject).Not(), lm.LitOf(Identifier(co)).Not())
}

func (conflict) Anchor() bool { return false }

// Conflict returns a Constraint permitting the subject or id but
// never both.
func Conflict(id Identifier) Constraint { return conflict(id) }

type leq struct {
	ids []Identifier
	n   int
}

func (l leq) String(subject Identifier) string {
	s := make([]string, len(l.ids))
	for i, each := range l.ids {
		s[i] = string(each)
	}
	return fmt.Sprintf("%s permits at most %d of %s", subject, l.n, strings.Join(s, ", "))
}

func (l leq) Apply(c *logic.C, lm *litMapping, subject Identifier) z.Lit {
	ms := make([]z.Lit, len(l.ids))
	for i, each := range l.ids {
		ms[i] = lm.LitOf(each)
	}
	return c.CardSort(ms).Leq(l.n)
}

func (leq) Anchor() bool { return false }

// AtMost returns a Constraint forbidding models that select more than
// n of ids.
func AtMost(n int, ids ...Identifier) Constraint {
	return leq{ids: ids, n: n}
}
