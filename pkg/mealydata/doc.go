// Package mealydata builds the transition tables the mealy engine runs.
//
// It provides two paths to a table. Builder assembles one directly from
// integer codes, validating ranges and rejecting duplicate (state, input)
// pairs as entries are added. Definition is the authoring format: a YAML
// document with named states, inputs, outputs, and transitions that Compile
// turns into a dense table plus Vocab dictionaries mapping names to the
// integer codes the engine sees. Names get codes in declaration order, so
// compiling the same definition always yields the same coding.
//
// # Usage
//
//	def, err := mealydata.LoadFile("turnstile.yaml")
//	if err != nil {
//	    return err
//	}
//	model, err := def.Compile()
//	if err != nil {
//	    return err
//	}
//
//	eng, err := model.NewEngine()
//	coin, _ := model.InputCode("coin")
//	out, err := eng.Move(coin)
//
// # Error Handling
//
// Validation failures join a class sentinel (ErrUnknownState,
// ErrDuplicateTransition, ...) with the offending detail, so callers can
// branch with errors.Is and still log the specifics:
//
//	if errors.Is(err, mealydata.ErrDuplicateTransition) { /* ambiguous table */ }
//
// Tables and models are immutable after Compile and safe to share across
// any number of engines.
package mealydata
