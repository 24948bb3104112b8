package mealydata

import "errors"

var (
	// Table construction
	ErrTableSize           = errors.New("state and input counts must be positive")
	ErrStateRange          = errors.New("state code out of table range")
	ErrInputRange          = errors.New("input code out of table range")
	ErrOutputRange         = errors.New("output code must be non-negative")
	ErrDuplicateTransition = errors.New("duplicate transition for state/input pair")

	// Definition files
	ErrFailedToReadDefinition  = errors.New("failed to read machine definition file")
	ErrFailedToParseDefinition = errors.New("failed to parse machine definition")

	// Definition content
	ErrNoStates      = errors.New("definition declares no states")
	ErrNoInputs      = errors.New("definition declares no inputs")
	ErrDuplicateName = errors.New("duplicate name in definition")
	ErrUnknownState  = errors.New("unknown state name")
	ErrUnknownInput  = errors.New("unknown input name")
	ErrUnknownOutput = errors.New("unknown output name")
)
