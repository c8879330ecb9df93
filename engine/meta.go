package engine

// Conjunct chains preds so each one's success calls the next. It
// returns the head of the chain, or nil when preds is empty.
func Conjunct(preds ...Pred) Pred {
	if len(preds) == 0 {
		return nil
	}
	for i := 0; i < len(preds)-1; i++ {
		LastPred(preds[i]).SetContinuation(preds[i+1])
	}
	return preds[0]
}

// redirector lets a predicate substitute a dynamically chosen
// successor for its structural continuation. The engine consults it
// only when the predicate succeeds, so Continuation remains a purely
// structural walk for Conjunct and LastPred.
type redirector interface {
	nextPred(e *Engine) Pred
}

// Disjunction tries each alternative in order, backtracking into the
// next one when the current alternative ultimately fails.
type Disjunction struct {
	BasePred
	Preds []Pred

	pending  []Pred
	selected Pred
}

// NewDisjunction returns a disjunction over preds.
func NewDisjunction(preds ...Pred) *Disjunction {
	return &Disjunction{Preds: preds}
}

func (d *Disjunction) InitializeCall(e *Engine) bool {
	d.pending = append(d.pending[:0], d.Preds...)
	d.selected = nil
	return true
}

func (d *Disjunction) MoreChoices(e *Engine) bool {
	if len(d.pending) == 0 {
		return false
	}
	d.selected = d.pending[0]
	d.pending = d.pending[1:]
	return true
}

// nextPred splices the selected branch in front of the disjunction's
// continuation. The walk stops at an already spliced tail so
// re-selecting a branch does not chase into the continuation chain.
func (d *Disjunction) nextPred(e *Engine) Pred {
	cont := d.Continuation()
	p := d.selected
	for p.Continuation() != nil && p.Continuation() != cont {
		p = p.Continuation()
	}
	p.SetContinuation(cont)
	return d.selected
}

// Loop repeatedly calls a fresh body while Continues holds, then
// proceeds to its continuation. The body is rebuilt every iteration so
// per-call state in its predicates starts clean.
type Loop struct {
	DetPred
	Continues func(e *Engine) bool
	Body      func() Pred
}

// NewLoop returns a loop running Body() while continues reports true.
func NewLoop(continues func(e *Engine) bool, body func() Pred) *Loop {
	return &Loop{Continues: continues, Body: body}
}

func (l *Loop) nextPred(e *Engine) Pred {
	if l.Continues != nil && !l.Continues(e) {
		return l.Continuation()
	}
	body := l.Body()
	LastPred(body).SetContinuation(l)
	return body
}

// Once calls its goal and commits to the goal's first solution,
// discarding any choice points the goal created.
type Once struct {
	DetPred
	Pred Pred

	cpMark int
	end    *onceEnd
}

// NewOnce returns a once wrapper around goal.
func NewOnce(goal Pred) *Once {
	return &Once{Pred: goal}
}

func (o *Once) InitializeCall(e *Engine) bool {
	o.cpMark = e.cpCount()
	return true
}

func (o *Once) nextPred(e *Engine) Pred {
	if o.end == nil {
		o.end = &onceEnd{once: o}
		LastPred(o.Pred).SetContinuation(o.end)
	}
	return o.Pred
}

type onceEnd struct {
	DetPred
	once *Once
}

func (p *onceEnd) nextPred(e *Engine) Pred {
	e.cutChoicePoints(p.once.cpMark)
	return p.once.Continuation()
}

// NotNot succeeds exactly when its goal has at least one solution, and
// leaves no bindings behind. The goal is run, its outcome recorded,
// and all its bindings rewound before the continuation is called.
type NotNot struct {
	BasePred
	Pred Pred

	phase     int
	succeeded bool
	cpMark    int
	end       *notNotEnd
}

// NewNotNot returns a binding-free test of goal.
func NewNotNot(goal Pred) *NotNot {
	return &NotNot{Pred: goal}
}

func (n *NotNot) InitializeCall(e *Engine) bool {
	n.phase = 0
	n.succeeded = false
	n.cpMark = e.cpCount()
	return true
}

func (n *NotNot) MoreChoices(e *Engine) bool {
	n.phase++
	return n.phase <= 2
}

func (n *NotNot) TestChoice(e *Engine) bool {
	if n.phase == 1 {
		return true
	}
	return n.succeeded
}

func (n *NotNot) nextPred(e *Engine) Pred {
	if n.phase > 1 {
		return n.Continuation()
	}
	if n.end == nil {
		n.end = &notNotEnd{notNot: n}
		LastPred(n.Pred).SetContinuation(n.end)
	}
	return n.Pred
}

type notNotEnd struct {
	SemiDetPred
	notNot *NotNot
}

// TestChoice records the goal's success and then fails on purpose so
// the engine rewinds every binding the goal made. The cut keeps the
// owning NotNot as the top choice point for the second phase.
func (p *notNotEnd) TestChoice(e *Engine) bool {
	e.cutChoicePoints(p.notNot.cpMark + 1)
	p.notNot.succeeded = true
	return false
}
