package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// choicePoint remembers a predicate to retry and the trail mark taken
// just before its current alternative was applied.
type choicePoint struct {
	pred Pred
	mark int
}

// Engine runs predicate calls over a shared trail and choice point
// stack. An Engine is not safe for concurrent use; run one search at a
// time or give each goroutine its own Engine.
type Engine struct {
	trail   trail
	cps     []choicePoint
	logger  *logrus.Logger
	running bool
}

// New returns an Engine with an empty trail and no choice points.
func New() *Engine {
	return &Engine{}
}

// SetLogger installs a logger receiving a debug-level entry at each
// port of the call loop. A nil logger disables tracing.
func (e *Engine) SetLogger(l *logrus.Logger) { e.logger = l }

func (e *Engine) cpCount() int { return len(e.cps) }

// cutChoicePoints discards choice points above n, abandoning the
// alternatives they held. The trail is untouched; bindings made by
// the cut branches stay until a surviving choice point rewinds them.
func (e *Engine) cutChoicePoints(n int) {
	for i := n; i < len(e.cps); i++ {
		e.cps[i] = choicePoint{}
	}
	e.cps = e.cps[:n]
}

// Execute runs p and the chain of continuations hanging off it,
// backtracking through choice points on failure. It reports whether
// the whole chain succeeded. Whatever the outcome, the trail and
// choice point stack are restored to their state at the time of the
// call, so bindings made by the search do not survive it; callers
// that need answers extract them inside a predicate before Execute
// returns.
//
// Execute is not re-entrant: calling it from inside a predicate of a
// running search panics. Start a separate Engine for nested searches.
func (e *Engine) Execute(p Pred) bool {
	if e.running {
		panic("engine: Execute called re-entrantly from a running search")
	}
	e.running = true
	m0 := e.trail.mark()
	cp0 := len(e.cps)
	defer func() {
		e.cutChoicePoints(cp0)
		e.trail.rewind(m0)
		e.running = false
	}()

	const (
		modeEnter = iota
		modeRetry
		modeFail
	)

	cur := p
	mode := modeEnter
	for {
		switch mode {
		case modeEnter:
			if cur == nil {
				return true
			}
			e.trace("enter", cur)
			if !cur.InitializeCall(e) {
				mode = modeFail
				continue
			}
			mode = modeRetry
		case modeRetry:
			e.trace("retry", cur)
			m := e.trail.mark()
			if !cur.MoreChoices(e) {
				mode = modeFail
				continue
			}
			if cur.leavesChoicePoint() {
				e.cps = append(e.cps, choicePoint{pred: cur, mark: m})
			}
			if !cur.TestChoice(e) {
				mode = modeFail
				continue
			}
			e.trace("succeed", cur)
			cur = next(cur, e)
			mode = modeEnter
		case modeFail:
			e.trace("fail", cur)
			if len(e.cps) == cp0 {
				return false
			}
			n := len(e.cps) - 1
			cp := e.cps[n]
			e.cps[n] = choicePoint{}
			e.cps = e.cps[:n]
			e.trail.rewind(cp.mark)
			cur = cp.pred
			mode = modeRetry
		}
	}
}

// next picks the successor of a succeeded predicate: a redirector
// chooses dynamically, everything else follows its structural
// continuation.
func next(p Pred, e *Engine) Pred {
	if r, ok := p.(redirector); ok {
		return r.nextPred(e)
	}
	return p.Continuation()
}

func (e *Engine) trace(port string, p Pred) {
	if e.logger == nil {
		return
	}
	e.logger.WithFields(logrus.Fields{
		"pred":  fmt.Sprintf("%T", p),
		"depth": len(e.cps),
		"trail": len(e.trail.entries),
	}).Debug(port)
}
