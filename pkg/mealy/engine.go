package mealy

import (
	"log/slog"

	"github.com/google/uuid"
)

// Engine evaluates a Mealy machine over a fixed TransitionTable. It owns a
// single mutable current state; the table is a shared read-only reference
// that must outlive the engine.
//
// Engine performs no internal synchronization. A single engine must not be
// used from multiple goroutines without external locking; the table itself
// is safe to share across engines.
type Engine struct {
	id       uuid.UUID
	table    TransitionTable
	initial  State
	current  State
	fallback bool
	closed   bool
	log      *slog.Logger
}

// ID returns the engine's instance identifier, used to correlate log lines
// and snapshots across engines that share a table.
func (e *Engine) ID() uuid.UUID {
	return e.id
}

// Current returns the state the engine is in. It never mutates the engine
// and returns ErrEngineClosed after Close.
func (e *Engine) Current() (State, error) {
	if e.closed {
		return 0, ErrEngineClosed
	}
	return e.current, nil
}

// Step consumes the inputs in order and returns one output per input, in the
// same order. The call is atomic: intermediate states are tracked locally and
// committed only after every input resolved, so any failure leaves the engine
// exactly where it was before the call.
//
// Under the default strict policy an input with no table entry aborts the
// whole call with *ErrUndefinedTransition naming the state, the input, and
// its position in the slice. With WithSelfLoopFallback the engine instead
// holds its state, records NoOutput, and keeps consuming.
//
// Step with no inputs succeeds, returns an empty output slice, and leaves
// the state untouched.
func (e *Engine) Step(inputs ...Symbol) ([]Output, error) {
	if e.closed {
		return nil, ErrEngineClosed
	}

	outputs := make([]Output, 0, len(inputs))
	cur := e.current

	for i, in := range inputs {
		next, out, ok := e.table.Lookup(cur, in)
		if !ok {
			if !e.fallback {
				return nil, NewErrUndefinedTransition(cur, in, i)
			}
			e.log.Debug("undefined transition absorbed",
				slog.Int("state", int(cur)),
				slog.Int("input", int(in)))
			outputs = append(outputs, NoOutput)
			continue
		}

		e.log.Debug("transition",
			slog.Int("from", int(cur)),
			slog.Int("input", int(in)),
			slog.Int("to", int(next)),
			slog.Int("output", int(out)))
		outputs = append(outputs, out)
		cur = next
	}

	e.current = cur
	return outputs, nil
}

// Move consumes a single input and returns its output. It is shorthand for
// Step with one symbol; on failure it returns NoOutput alongside the error.
func (e *Engine) Move(input Symbol) (Output, error) {
	outputs, err := e.Step(input)
	if err != nil {
		return NoOutput, err
	}
	return outputs[0], nil
}

// Reset returns the engine to its initial state.
func (e *Engine) Reset() error {
	if e.closed {
		return ErrEngineClosed
	}
	e.current = e.initial
	e.log.Debug("reset", slog.Int("state", int(e.initial)))
	return nil
}

// Close releases the engine's table reference and marks the handle unusable.
// Every subsequent operation, Close included, returns ErrEngineClosed.
func (e *Engine) Close() error {
	if e.closed {
		return ErrEngineClosed
	}
	e.closed = true
	e.table = nil
	e.log.Debug("closed")
	return nil
}
