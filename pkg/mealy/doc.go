// Package mealy provides a table-driven Mealy machine engine: given a
// current state and a sequence of discrete input symbols, it computes the
// next state and one output symbol per input by consulting a static
// transition table.
//
// The package deliberately does only evaluation. It never builds, parses,
// validates, or minimizes tables; any type satisfying the small
// TransitionTable interface can drive it, and the companion mealydata
// package provides the usual dense implementation plus named-symbol
// compilation.
//
// # Architecture
//
// States, inputs, and outputs are dense integer codes, so a table hit is a
// single bounds-checked lookup. The Engine owns exactly one mutable value,
// its current state; everything else it touches is immutable. Step tracks
// intermediate states in a local and commits once at the end, which makes
// every call atomic: it either consumes the full input vector or leaves the
// engine untouched.
//
// Two policies govern a (state, input) pair with no table entry:
//
//  1. Strict (default): the call fails with *ErrUndefinedTransition carrying
//     the state, the input, and the input's index, and no state change or
//     partial output escapes.
//  2. Self-loop fallback (WithSelfLoopFallback): the engine holds its state,
//     emits NoOutput for that input, and keeps going.
//
// # Usage
//
//	import "github.com/dmitrymomot/fsmkit/pkg/mealy"
//
//	eng, err := mealy.New(table, mealy.WithInitialState(0))
//	if err != nil {
//	    // table was nil or the initial state is out of range
//	}
//	defer eng.Close()
//
//	outputs, err := eng.Step(open, heat, close)
//	if err != nil {
//	    // engine still sits in its pre-Step state
//	}
//
// # Error Handling
//
// All failures are returned as values and can be classified with the helper
// predicates:
//
//	if mealy.IsUndefinedTransitionError(err) { /* bad input sequence */ }
//	if mealy.IsInvalidStateError(err)        { /* bad initial state */ }
//	if errors.Is(err, mealy.ErrEngineClosed) { /* use after Close */ }
//
// A failed Step reports the exact position that could not be consumed, so
// callers can trim or correct the input vector and retry; the engine itself
// never retries.
//
// # Concurrency
//
// An Engine is not safe for concurrent use; callers that share one across
// goroutines must serialize access themselves. TransitionTable
// implementations are required to be immutable, so one table may back any
// number of engines, each advancing independently.
package mealy
