package engine

import "reflect"

// Unify makes a and b equal, binding variables through the trail. A
// failed unification leaves no new trail entries behind.
//
// Unification does not recurse into tuples or slices on its own:
// ground terms are compared by host equality, and user values that
// need structural treatment implement Unifiable.
func (e *Engine) Unify(a, b Term) bool {
	a = Deref(a)
	b = Deref(b)
	av, aok := a.(Bindable)
	bv, bok := b.(Bindable)
	_, aUpd := a.(*UpdatableVar)
	_, bUpd := b.(*UpdatableVar)
	switch {
	case aok && bok && av.ID() == bv.ID():
		return true
	case aok && !aUpd:
		return e.bind(av, b)
	case bok && !bUpd:
		return e.bind(bv, a)
	case aUpd:
		return e.bind(av, b)
	case bUpd:
		return e.bind(bv, a)
	}
	if u, ok := a.(Unifiable); ok {
		return u.UnifyWith(b, e)
	}
	if u, ok := b.(Unifiable); ok {
		return u.UnifyWith(a, e)
	}
	return reflect.DeepEqual(a, b)
}

// bind saves v's prior content, asks v to accept t and trails the
// mutation. A veto from a user-defined Bind leaves the trail as it
// was.
func (e *Engine) bind(v Bindable, t Term) bool {
	old := v.Value()
	if !v.Bind(t) {
		return false
	}
	e.trail.push(v, old)
	return true
}
