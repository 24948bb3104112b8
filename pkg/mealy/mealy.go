package mealy

// State identifies a machine state as a dense non-negative code in
// [0, NumStates) of the table it belongs to.
type State int

// Symbol identifies a discrete input event as a dense non-negative code in
// [0, NumInputs) of the table it belongs to.
type Symbol int

// Output identifies an output symbol emitted by a transition.
type Output int

// NoOutput is emitted in place of a real output when the self-loop fallback
// policy absorbs an undefined transition. It is never produced by a table hit.
const NoOutput Output = -1

// TransitionTable is the read-only transition relation an Engine evaluates.
// It maps at most one (next, out) entry to each (from, input) pair.
//
// Lookup must be pure and total: for any argument values, including ones
// outside the declared ranges, it reports ok=false rather than panicking.
// Implementations must be immutable once handed to an engine; a single table
// can then back any number of engines concurrently.
type TransitionTable interface {
	// Lookup resolves one transition. ok=false means no entry is defined
	// for the pair; next and out are meaningless in that case.
	Lookup(from State, input Symbol) (next State, out Output, ok bool)

	// NumStates reports the size of the state space. Valid states are
	// [0, NumStates).
	NumStates() int

	// NumInputs reports the size of the input alphabet. Valid inputs are
	// [0, NumInputs).
	NumInputs() int
}
