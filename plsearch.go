// Package plsearch is a search and constraint programming library
// built around logic variables, unification and backtracking. The
// engine package holds the core machinery; this package adds solution
// collection, exact decimal terms and convenience aliases for the
// common types.
package plsearch

import (
	"github.com/plsearch/plsearch/engine"
)

type (
	// Term is any value the engine can handle.
	Term = engine.Term

	// Var is a logic variable.
	Var = engine.Var

	// UpdatableVar is a backtrackable cell.
	UpdatableVar = engine.UpdatableVar

	// Pred is the predicate calling protocol.
	Pred = engine.Pred

	// Engine drives searches.
	Engine = engine.Engine
)

// NewEngine returns a fresh engine.
func NewEngine() *Engine { return engine.New() }

// NewVar returns a fresh unbound variable.
func NewVar() *Var { return engine.NewVar() }

// NewUpdatableVar returns a backtrackable cell holding initial.
func NewUpdatableVar(initial Term) *UpdatableVar {
	return engine.NewUpdatableVar(initial)
}

// Conjunct chains preds so each one's success calls the next.
func Conjunct(preds ...Pred) Pred { return engine.Conjunct(preds...) }
