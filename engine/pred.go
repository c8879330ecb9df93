package engine

// Pred is the calling protocol every predicate implements. The engine
// drives a call through InitializeCall once, then alternates
// MoreChoices and TestChoice until one of them fails or TestChoice
// accepts the current bindings, at which point control passes to the
// continuation.
//
// Concrete predicates embed BasePred, DetPred or SemiDetPred rather
// than implementing the interface from scratch.
type Pred interface {
	// InitializeCall prepares per-call state. Returning false fails the
	// call before any choice is tried.
	InitializeCall(e *Engine) bool

	// MoreChoices commits to the next untried alternative, returning
	// false when none remain.
	MoreChoices(e *Engine) bool

	// TestChoice checks the bindings made by the committed alternative.
	TestChoice(e *Engine) bool

	// Continuation returns the predicate called after this one succeeds.
	Continuation() Pred

	// SetContinuation installs the predicate called after this one
	// succeeds.
	SetContinuation(p Pred)

	leavesChoicePoint() bool
}

// BasePred is the embeddable base for nondeterministic predicates. A
// concrete predicate sets Iter during InitializeCall; the default
// MoreChoices then draws alternatives from it.
type BasePred struct {
	Iter ChoiceIterator
	cont Pred
}

func (p *BasePred) InitializeCall(e *Engine) bool { return true }

// MoreChoices applies alternatives from Iter until one succeeds. A
// failing alternative is rewound before the next is tried.
func (p *BasePred) MoreChoices(e *Engine) bool {
	if p.Iter == nil {
		return false
	}
	for p.Iter.Next() {
		m := e.trail.mark()
		if p.Iter.Current().Apply(e) {
			return true
		}
		e.trail.rewind(m)
	}
	return false
}

func (p *BasePred) TestChoice(e *Engine) bool { return true }

func (p *BasePred) Continuation() Pred { return p.cont }

func (p *BasePred) SetContinuation(c Pred) { p.cont = c }

func (p *BasePred) leavesChoicePoint() bool { return true }

// DetPred is the embeddable base for deterministic predicates: exactly
// one way to proceed, so no choice point is recorded and backtracking
// never returns here.
type DetPred struct {
	cont Pred
}

func (p *DetPred) InitializeCall(e *Engine) bool { return true }

func (p *DetPred) MoreChoices(e *Engine) bool { return true }

func (p *DetPred) TestChoice(e *Engine) bool { return true }

func (p *DetPred) Continuation() Pred { return p.cont }

func (p *DetPred) SetContinuation(c Pred) { p.cont = c }

func (p *DetPred) leavesChoicePoint() bool { return false }

// SemiDetPred is the embeddable base for predicates that either
// succeed once or fail, deciding in TestChoice. Like DetPred it leaves
// no choice point behind.
type SemiDetPred struct {
	DetPred
}

type failPred struct {
	BasePred
}

func (p *failPred) MoreChoices(e *Engine) bool { return false }

// Nothing runs after a failure, so the shared Fail value never
// stores a continuation.
func (p *failPred) SetContinuation(c Pred) {}

// Fail is the predicate with no alternatives. Calling it triggers
// backtracking.
var Fail Pred = &failPred{}

// LastPred follows continuations from p to the end of its chain.
func LastPred(p Pred) Pred {
	for p.Continuation() != nil {
		p = p.Continuation()
	}
	return p
}
