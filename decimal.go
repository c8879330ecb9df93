package plsearch

import (
	"fmt"

	"github.com/cockroachdb/apd"

	"github.com/plsearch/plsearch/engine"
)

// decContext carries the precision for all Dec arithmetic. 34 digits
// matches IEEE decimal128.
var decContext = apd.BaseContext.WithPrecision(34)

// Dec is an exact decimal term. Two Decs unify when they denote the
// same number, regardless of exponent representation, so 1.50 unifies
// with 1.5.
type Dec struct {
	d apd.Decimal
}

// NewDec parses s as a decimal number.
func NewDec(s string) (*Dec, error) {
	var d Dec
	if _, _, err := d.d.SetString(s); err != nil {
		return nil, fmt.Errorf("plsearch: parse decimal %q: %w", s, err)
	}
	return &d, nil
}

// MustDec parses s and panics on malformed input. For literals in
// fixed program text.
func MustDec(s string) *Dec {
	d, err := NewDec(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DecFromInt64 returns n as a Dec.
func DecFromInt64(n int64) *Dec {
	return &Dec{d: *apd.New(n, 0)}
}

func (d *Dec) String() string { return d.d.String() }

// Sign returns -1, 0 or 1 as d is negative, zero or positive.
func (d *Dec) Sign() int { return d.d.Sign() }

// Cmp compares d and o numerically, returning -1, 0 or 1.
func (d *Dec) Cmp(o *Dec) int {
	var diff apd.Decimal
	decContext.Sub(&diff, &d.d, &o.d)
	return diff.Sign()
}

// Add returns d + o.
func (d *Dec) Add(o *Dec) (*Dec, error) {
	var r Dec
	if _, err := decContext.Add(&r.d, &d.d, &o.d); err != nil {
		return nil, err
	}
	return &r, nil
}

// Sub returns d - o.
func (d *Dec) Sub(o *Dec) (*Dec, error) {
	var r Dec
	if _, err := decContext.Sub(&r.d, &d.d, &o.d); err != nil {
		return nil, err
	}
	return &r, nil
}

// Mul returns d * o.
func (d *Dec) Mul(o *Dec) (*Dec, error) {
	var r Dec
	if _, err := decContext.Mul(&r.d, &d.d, &o.d); err != nil {
		return nil, err
	}
	return &r, nil
}

// Div returns d / o.
func (d *Dec) Div(o *Dec) (*Dec, error) {
	var r Dec
	if _, err := decContext.Quo(&r.d, &d.d, &o.d); err != nil {
		return nil, err
	}
	return &r, nil
}

// UnifyWith unifies d with t: an unbound variable is bound to d, and
// another Dec matches by numeric value.
func (d *Dec) UnifyWith(t engine.Term, e *engine.Engine) bool {
	t = engine.Deref(t)
	if engine.IsVar(t) {
		return e.Unify(t, d)
	}
	o, ok := t.(*Dec)
	if !ok {
		return false
	}
	return d.Cmp(o) == 0
}
