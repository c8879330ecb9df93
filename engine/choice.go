package engine

// A Choice is one alternative a predicate can commit to. Apply makes
// whatever bindings the alternative needs and reports whether they
// succeeded.
type Choice interface {
	Apply(e *Engine) bool
}

// ChoiceIterator yields the remaining choices of a predicate call one
// at a time. Next advances to the next choice and reports whether one
// exists; Current returns it.
type ChoiceIterator interface {
	Next() bool
	Current() Choice
}

// VarChoice binds Var to Value through unification.
type VarChoice struct {
	Var   Term
	Value Term
}

func (c VarChoice) Apply(e *Engine) bool {
	return e.Unify(c.Var, c.Value)
}

// VarChoiceIterator enumerates candidate values for a single variable.
type VarChoiceIterator struct {
	v      Term
	values []Term
	i      int
}

// NewVarChoiceIterator returns an iterator proposing each of values
// for v in order.
func NewVarChoiceIterator(v Term, values ...Term) *VarChoiceIterator {
	return &VarChoiceIterator{v: v, values: values}
}

func (it *VarChoiceIterator) Next() bool {
	if it.i >= len(it.values) {
		return false
	}
	it.i++
	return true
}

func (it *VarChoiceIterator) Current() Choice {
	return VarChoice{Var: it.v, Value: it.values[it.i-1]}
}

// SliceIterator walks a prebuilt slice of choices.
type SliceIterator struct {
	choices []Choice
	i       int
}

// NewSliceIterator returns an iterator over choices.
func NewSliceIterator(choices ...Choice) *SliceIterator {
	return &SliceIterator{choices: choices}
}

func (it *SliceIterator) Next() bool {
	if it.i >= len(it.choices) {
		return false
	}
	it.i++
	return true
}

func (it *SliceIterator) Current() Choice {
	return it.choices[it.i-1]
}
