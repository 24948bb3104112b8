package mealydata

import (
	"github.com/dmitrymomot/fsmkit/pkg/mealy"
)

// Table is a dense row-major transition table. It is immutable once built
// and safe for concurrent reads; construct one through Builder or
// Definition.Compile.
type Table struct {
	numStates int
	numInputs int
	cells     []cell
	defined   int
}

type cell struct {
	next mealy.State
	out  mealy.Output
	ok   bool
}

var _ mealy.TransitionTable = (*Table)(nil)

// Lookup implements mealy.TransitionTable. Arguments outside the declared
// ranges resolve to "no entry".
func (t *Table) Lookup(from mealy.State, input mealy.Symbol) (mealy.State, mealy.Output, bool) {
	if from < 0 || int(from) >= t.numStates || input < 0 || int(input) >= t.numInputs {
		return 0, 0, false
	}
	c := t.cells[int(from)*t.numInputs+int(input)]
	if !c.ok {
		return 0, 0, false
	}
	return c.next, c.out, true
}

// NumStates implements mealy.TransitionTable.
func (t *Table) NumStates() int { return t.numStates }

// NumInputs implements mealy.TransitionTable.
func (t *Table) NumInputs() int { return t.numInputs }

// Len reports how many (state, input) pairs have a transition defined.
func (t *Table) Len() int { return t.defined }
