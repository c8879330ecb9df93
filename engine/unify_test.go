package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// evenVar only accepts even ints.
type evenVar struct {
	Var
}

func newEvenVar() *evenVar { return &evenVar{Var: *NewVar()} }

func (v *evenVar) Bind(t Term) bool {
	n, ok := t.(int)
	if !ok || n%2 != 0 {
		return false
	}
	return v.Var.Bind(t)
}

// pair is a compound of two terms unifying componentwise.
type pair struct {
	fst, snd Term
}

func (p pair) UnifyWith(t Term, e *Engine) bool {
	q, ok := Deref(t).(pair)
	if !ok {
		return false
	}
	return e.Unify(p.fst, q.fst) && e.Unify(p.snd, q.snd)
}

func TestEngine_Unify(t *testing.T) {
	t.Run("ground terms", func(t *testing.T) {
		e := New()
		assert.True(t, e.Unify(1, 1))
		assert.True(t, e.Unify("a", "a"))
		assert.False(t, e.Unify(1, 2))
		assert.False(t, e.Unify(1, "a"))
	})

	t.Run("variable to ground", func(t *testing.T) {
		e := New()
		v := NewVar()
		assert.True(t, e.Unify(v, 7))
		assert.Equal(t, 7, Deref(v))
		assert.True(t, e.Unify(7, v))
		assert.False(t, e.Unify(v, 8))
	})

	t.Run("ground to variable", func(t *testing.T) {
		e := New()
		v := NewVar()
		assert.True(t, e.Unify("x", v))
		assert.Equal(t, "x", Deref(v))
	})

	t.Run("variable to variable", func(t *testing.T) {
		e := New()
		a, b := NewVar(), NewVar()
		assert.True(t, e.Unify(a, b))
		assert.True(t, e.Unify(a, 3))
		assert.Equal(t, 3, Deref(b))
	})

	t.Run("variable with itself", func(t *testing.T) {
		e := New()
		v := NewVar()
		assert.True(t, e.Unify(v, v))
		assert.True(t, IsVar(v))
		assert.Equal(t, 0, e.trail.mark())
	})

	t.Run("slices compare by deep equality", func(t *testing.T) {
		e := New()
		assert.True(t, e.Unify([]Term{1, 2}, []Term{1, 2}))
		assert.False(t, e.Unify([]Term{1, 2}, []Term{1, 3}))
	})

	t.Run("failed unification leaves the trail unchanged", func(t *testing.T) {
		e := New()
		v := NewVar()
		assert.True(t, e.Unify(v, 1))
		m := e.trail.mark()
		assert.False(t, e.Unify(v, 2))
		assert.Equal(t, m, e.trail.mark())
	})
}

func TestEngine_Unify_veto(t *testing.T) {
	t.Run("vetoed value fails and trails nothing", func(t *testing.T) {
		e := New()
		v := newEvenVar()
		m := e.trail.mark()
		assert.False(t, e.Unify(v, 3))
		assert.True(t, IsVar(v))
		assert.Equal(t, m, e.trail.mark())
	})

	t.Run("accepted value binds", func(t *testing.T) {
		e := New()
		v := newEvenVar()
		assert.True(t, e.Unify(v, 4))
		assert.Equal(t, 4, Deref(v))
	})
}

func TestEngine_Unify_updatable(t *testing.T) {
	t.Run("reassignment is trailed", func(t *testing.T) {
		e := New()
		u := NewUpdatableVar(1)
		m := e.trail.mark()
		assert.True(t, e.Unify(u, 2))
		assert.Equal(t, 2, u.Value())
		e.trail.rewind(m)
		assert.Equal(t, 1, u.Value())
	})

	t.Run("unbound variable binds to the cell itself", func(t *testing.T) {
		e := New()
		u := NewUpdatableVar(1)
		v := NewVar()
		assert.True(t, e.Unify(v, u))
		assert.Equal(t, u, Deref(v))
	})
}

func TestEngine_Unify_unifiable(t *testing.T) {
	t.Run("componentwise", func(t *testing.T) {
		e := New()
		x, y := NewVar(), NewVar()
		assert.True(t, e.Unify(pair{x, 2}, pair{1, y}))
		assert.Equal(t, 1, Deref(x))
		assert.Equal(t, 2, Deref(y))
	})

	t.Run("mismatch", func(t *testing.T) {
		e := New()
		assert.False(t, e.Unify(pair{1, 2}, pair{1, 3}))
		assert.False(t, e.Unify(pair{1, 2}, "not a pair"))
	})

	t.Run("hook on the right operand", func(t *testing.T) {
		e := New()
		assert.True(t, e.Unify(42, wildcard{}))
	})
}

// wildcard unifies with anything.
type wildcard struct{}

func (wildcard) UnifyWith(t Term, e *Engine) bool { return true }
