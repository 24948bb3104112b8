package mealy

import (
	"errors"
	"fmt"
)

var (
	ErrNilTable     = errors.New("invalid table: transition table cannot be nil")
	ErrEngineClosed = errors.New("engine is closed")
)

// ErrInvalidState indicates a state code outside the table's declared range.
// It is reported at construction time, before the engine ever runs.
type ErrInvalidState struct {
	State     State
	NumStates int
}

func (e *ErrInvalidState) Error() string {
	return fmt.Sprintf("invalid state %d: table defines states [0, %d)", e.State, e.NumStates)
}

func NewErrInvalidState(state State, numStates int) *ErrInvalidState {
	return &ErrInvalidState{
		State:     state,
		NumStates: numStates,
	}
}

// ErrUndefinedTransition indicates the table has no entry for the
// (state, input) pair reached while consuming a Step call. Index is the
// position of the offending input in the call's slice; the engine's state
// is unchanged when this error is returned.
type ErrUndefinedTransition struct {
	State State
	Input Symbol
	Index int
}

func (e *ErrUndefinedTransition) Error() string {
	return fmt.Sprintf("no transition from state %d on input %d (input index %d)", e.State, e.Input, e.Index)
}

func NewErrUndefinedTransition(state State, input Symbol, index int) *ErrUndefinedTransition {
	return &ErrUndefinedTransition{
		State: state,
		Input: input,
		Index: index,
	}
}

func IsInvalidStateError(err error) bool {
	var e *ErrInvalidState
	return errors.As(err, &e)
}

func IsUndefinedTransitionError(err error) bool {
	var e *ErrUndefinedTransition
	return errors.As(err, &e)
}
