package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConjunct(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, Conjunct())
	})

	t.Run("links continuations in order", func(t *testing.T) {
		a, b, c := &DetPred{}, &DetPred{}, &DetPred{}
		head := Conjunct(a, b, c)
		assert.Equal(t, Pred(a), head)
		assert.Equal(t, Pred(b), a.Continuation())
		assert.Equal(t, Pred(c), b.Continuation())
	})

	t.Run("appends after an existing chain", func(t *testing.T) {
		a, b, c := &DetPred{}, &DetPred{}, &DetPred{}
		a.SetContinuation(b)
		Conjunct(a, c)
		assert.Equal(t, Pred(c), b.Continuation())
	})
}

func TestDisjunction(t *testing.T) {
	t.Run("tries branches in order", func(t *testing.T) {
		e := New()
		v := NewVar()
		var got []Term
		goal := Conjunct(
			NewDisjunction(
				&domainPred{v: v, values: []Term{1}},
				&domainPred{v: v, values: []Term{2, 3}},
			),
			&recordPred{v: v, out: &got},
		)
		assert.False(t, e.Execute(goal))
		assert.Equal(t, []Term{1, 2, 3}, got)
	})

	t.Run("fails when every branch fails", func(t *testing.T) {
		e := New()
		goal := NewDisjunction(Fail, Fail)
		assert.False(t, e.Execute(goal))
	})

	t.Run("a failing branch falls through to the next", func(t *testing.T) {
		e := New()
		v := NewVar()
		goal := Conjunct(
			NewDisjunction(Fail, &domainPred{v: v, values: []Term{9}}),
			&checkPred{test: func(e *Engine) bool { return Deref(v) == 9 }},
		)
		assert.True(t, e.Execute(goal))
	})
}

func TestLoop(t *testing.T) {
	t.Run("runs the body until the condition drops", func(t *testing.T) {
		e := New()
		n := 0
		loop := NewLoop(
			func(e *Engine) bool { return n < 3 },
			func() Pred {
				return &checkPred{test: func(e *Engine) bool {
					n++
					return true
				}}
			},
		)
		assert.True(t, e.Execute(loop))
		assert.Equal(t, 3, n)
	})

	t.Run("zero iterations succeed immediately", func(t *testing.T) {
		e := New()
		loop := NewLoop(
			func(e *Engine) bool { return false },
			func() Pred { return Fail },
		)
		assert.True(t, e.Execute(loop))
	})

	t.Run("backtracks into earlier iterations", func(t *testing.T) {
		e := New()
		vars := []*Var{NewVar(), NewVar()}
		i := 0
		loop := NewLoop(
			func(e *Engine) bool {
				i = 0
				for _, v := range vars {
					if IsVar(v) {
						return true
					}
					i++
				}
				return false
			},
			func() Pred {
				return &domainPred{v: vars[i], values: []Term{0, 1}}
			},
		)
		// reject until both variables picked their second value
		goal := Conjunct(loop, &checkPred{test: func(e *Engine) bool {
			return Deref(vars[0]) == 1 && Deref(vars[1]) == 1
		}})
		assert.True(t, e.Execute(goal))
	})
}

func TestOnce(t *testing.T) {
	t.Run("commits to the first solution", func(t *testing.T) {
		e := New()
		v := NewVar()
		var got []Term
		goal := Conjunct(
			NewOnce(&domainPred{v: v, values: []Term{1, 2, 3}}),
			&recordPred{v: v, out: &got},
		)
		assert.False(t, e.Execute(goal))
		assert.Equal(t, []Term{1}, got)
	})

	t.Run("fails when the goal fails", func(t *testing.T) {
		e := New()
		assert.False(t, e.Execute(NewOnce(Fail)))
	})

	t.Run("choice points before the call survive", func(t *testing.T) {
		e := New()
		v, w := NewVar(), NewVar()
		var got []Term
		goal := Conjunct(
			&domainPred{v: v, values: []Term{1, 2}},
			NewOnce(&domainPred{v: w, values: []Term{10, 20}}),
			&recordPred{v: v, out: &got},
		)
		assert.False(t, e.Execute(goal))
		assert.Equal(t, []Term{1, 2}, got)
	})
}

func TestNotNot(t *testing.T) {
	t.Run("succeeds when the goal succeeds, binding nothing", func(t *testing.T) {
		e := New()
		v := NewVar()
		bound := false
		goal := Conjunct(
			NewNotNot(&domainPred{v: v, values: []Term{1, 2}}),
			&checkPred{test: func(e *Engine) bool {
				bound = !IsVar(v)
				return true
			}},
		)
		assert.True(t, e.Execute(goal))
		assert.False(t, bound)
	})

	t.Run("fails when the goal fails", func(t *testing.T) {
		e := New()
		assert.False(t, e.Execute(NewNotNot(Fail)))
	})

	t.Run("composes with surrounding choices", func(t *testing.T) {
		e := New()
		v := NewVar()
		var got []Term
		goal := Conjunct(
			&domainPred{v: v, values: []Term{1, 2}},
			NewNotNot(&checkPred{test: func(e *Engine) bool { return true }}),
			&recordPred{v: v, out: &got},
		)
		assert.False(t, e.Execute(goal))
		assert.Equal(t, []Term{1, 2}, got)
	})
}
