package engine

import (
	"fmt"
	"sync/atomic"
)

var varCounter int64

// Var is a logic variable: an identity plus a mutable binding slot,
// initially unbound.
type Var struct {
	id    int64
	value Term
}

// NewVar creates a fresh unbound variable.
func NewVar() *Var {
	return &Var{id: atomic.AddInt64(&varCounter, 1)}
}

// ResetVarCount resets the id counter. In an application running
// several searches this keeps the debug form of variables short.
func ResetVarCount() {
	atomic.StoreInt64(&varCounter, 0)
}

func (v *Var) ID() int64 { return v.id }

func (v *Var) Value() Term { return v.value }

// Bind assigns t to the binding slot. Var itself never vetoes;
// embedding kinds override Bind to reject values.
func (v *Var) Bind(t Term) bool {
	v.value = t
	return true
}

// Reset restores the slot to old while rewinding the trail.
func (v *Var) Reset(old Term) { v.value = old }

func (v *Var) String() string {
	t := Deref(v)
	if w, ok := t.(Bindable); ok && w.Value() == nil {
		return fmt.Sprintf("X%02d", w.ID())
	}
	return fmt.Sprint(t)
}

// UpdatableVar is a cell supporting backtrackable reassignment of
// arbitrary values, typically used to carry search state forward in a
// way that unwinds on backtracking. It is opaque to Deref and never
// tests as a variable.
type UpdatableVar struct {
	Var
}

// NewUpdatableVar creates a cell holding initial.
func NewUpdatableVar(initial Term) *UpdatableVar {
	u := &UpdatableVar{Var: *NewVar()}
	u.value = initial
	return u
}

func (u *UpdatableVar) String() string {
	return fmt.Sprintf("UpdatableVar(%v)", u.value)
}
