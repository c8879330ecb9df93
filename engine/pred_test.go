package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockChoice struct {
	mock.Mock
}

func (c *mockChoice) Apply(e *Engine) bool {
	args := c.Called(e)
	return args.Bool(0)
}

// domainPred binds v to one of its candidate values.
type domainPred struct {
	BasePred
	v      Term
	values []Term
}

func (p *domainPred) InitializeCall(e *Engine) bool {
	p.Iter = NewVarChoiceIterator(p.v, p.values...)
	return true
}

// checkPred succeeds exactly when test reports true.
type checkPred struct {
	SemiDetPred
	test func(e *Engine) bool
}

func (p *checkPred) TestChoice(e *Engine) bool { return p.test(e) }

// notePred records that control reached it.
type notePred struct {
	DetPred
	hit *int
}

func (p *notePred) InitializeCall(e *Engine) bool {
	*p.hit++
	return true
}

func TestBasePred_MoreChoices(t *testing.T) {
	t.Run("skips alternatives whose application fails", func(t *testing.T) {
		e := New()
		v := newEvenVar()
		p := &domainPred{v: v, values: []Term{1, 3, 4}}
		assert.True(t, p.InitializeCall(e))
		assert.True(t, p.MoreChoices(e))
		assert.Equal(t, 4, Deref(v))
	})

	t.Run("failed alternatives leave no bindings", func(t *testing.T) {
		e := New()
		v := newEvenVar()
		p := &domainPred{v: v, values: []Term{1, 3, 5}}
		assert.True(t, p.InitializeCall(e))
		m := e.trail.mark()
		assert.False(t, p.MoreChoices(e))
		assert.Equal(t, m, e.trail.mark())
		assert.True(t, IsVar(v))
	})

	t.Run("nil iterator has no choices", func(t *testing.T) {
		e := New()
		p := &BasePred{}
		assert.False(t, p.MoreChoices(e))
	})

	t.Run("stops at the first applicable choice", func(t *testing.T) {
		e := New()
		bad, good, untried := new(mockChoice), new(mockChoice), new(mockChoice)
		bad.On("Apply", e).Return(false).Once()
		good.On("Apply", e).Return(true).Once()
		p := &BasePred{Iter: NewSliceIterator(bad, good, untried)}
		assert.True(t, p.MoreChoices(e))
		bad.AssertExpectations(t)
		good.AssertExpectations(t)
		untried.AssertNotCalled(t, "Apply", e)
	})
}

func TestVarChoiceIterator(t *testing.T) {
	it := NewVarChoiceIterator(NewVar(), 1, 2)
	assert.True(t, it.Next())
	assert.True(t, it.Next())
	assert.False(t, it.Next())
}

func TestSliceIterator(t *testing.T) {
	v := NewVar()
	it := NewSliceIterator(VarChoice{Var: v, Value: 1})
	assert.True(t, it.Next())
	e := New()
	assert.True(t, it.Current().Apply(e))
	assert.Equal(t, 1, Deref(v))
	assert.False(t, it.Next())
}

func TestLastPred(t *testing.T) {
	a := &DetPred{}
	b := &DetPred{}
	c := &DetPred{}
	a.SetContinuation(b)
	b.SetContinuation(c)
	assert.Equal(t, Pred(c), LastPred(a))
	assert.Equal(t, Pred(c), LastPred(c))
}

func TestFail(t *testing.T) {
	e := New()
	assert.False(t, e.Execute(Fail))
}
