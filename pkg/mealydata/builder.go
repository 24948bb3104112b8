package mealydata

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dmitrymomot/fsmkit/pkg/mealy"
)

// Builder accumulates transitions for a fixed state space and input
// alphabet, validating every entry as it is added.
type Builder struct {
	numStates int
	numInputs int
	cells     []cell
	defined   int
}

// NewBuilder creates a builder for a table with the given dimensions.
func NewBuilder(numStates, numInputs int) (*Builder, error) {
	if numStates <= 0 || numInputs <= 0 {
		return nil, errors.Join(ErrTableSize, fmt.Errorf("got %d states, %d inputs", numStates, numInputs))
	}
	return &Builder{
		numStates: numStates,
		numInputs: numInputs,
		cells:     make([]cell, numStates*numInputs),
	}, nil
}

// Add defines the transition (from, input) -> (next, out). At most one
// transition may exist per (from, input) pair.
func (b *Builder) Add(from mealy.State, input mealy.Symbol, next mealy.State, out mealy.Output) error {
	if from < 0 || int(from) >= b.numStates {
		return errors.Join(ErrStateRange, fmt.Errorf("from state %d, table has %d states", from, b.numStates))
	}
	if next < 0 || int(next) >= b.numStates {
		return errors.Join(ErrStateRange, fmt.Errorf("next state %d, table has %d states", next, b.numStates))
	}
	if input < 0 || int(input) >= b.numInputs {
		return errors.Join(ErrInputRange, fmt.Errorf("input %d, table has %d inputs", input, b.numInputs))
	}
	if out < 0 {
		return errors.Join(ErrOutputRange, fmt.Errorf("got output %d", out))
	}

	idx := int(from)*b.numInputs + int(input)
	if b.cells[idx].ok {
		return errors.Join(ErrDuplicateTransition, fmt.Errorf("state %d already transitions on input %d", from, input))
	}

	b.cells[idx] = cell{next: next, out: out, ok: true}
	b.defined++
	return nil
}

// Build freezes the accumulated transitions into an immutable Table. The
// builder stays usable afterwards; later Adds do not affect tables already
// built.
func (b *Builder) Build() *Table {
	return &Table{
		numStates: b.numStates,
		numInputs: b.numInputs,
		cells:     slices.Clone(b.cells),
		defined:   b.defined,
	}
}
