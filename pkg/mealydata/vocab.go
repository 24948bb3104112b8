package mealydata

import (
	"errors"
	"fmt"
	"slices"
)

// Vocab maps symbolic names to the dense integer codes the engine works
// with. Codes follow declaration order, so a definition always compiles to
// the same coding.
type Vocab struct {
	names []string
	codes map[string]int
}

func newVocab(kind string, names []string) (Vocab, error) {
	v := Vocab{
		names: slices.Clone(names),
		codes: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if _, dup := v.codes[name]; dup {
			return Vocab{}, errors.Join(ErrDuplicateName, fmt.Errorf("%s %q declared twice", kind, name))
		}
		v.codes[name] = i
	}
	return v, nil
}

// Code returns the dense code assigned to name.
func (v Vocab) Code(name string) (int, bool) {
	code, ok := v.codes[name]
	return code, ok
}

// Name returns the name assigned to code.
func (v Vocab) Name(code int) (string, bool) {
	if code < 0 || code >= len(v.names) {
		return "", false
	}
	return v.names[code], true
}

// Names returns the vocabulary in code order.
func (v Vocab) Names() []string {
	return slices.Clone(v.names)
}

// Len returns the number of names in the vocabulary.
func (v Vocab) Len() int {
	return len(v.names)
}
