package mealydata

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fsmkit/pkg/mealy"
)

// Definition is the authoring format for a machine: named states, inputs,
// and outputs plus the transitions between them. It is what machine files
// contain and what the exporters consume.
type Definition struct {
	Name        string       `yaml:"name" json:"name"`
	States      []string     `yaml:"states" json:"states"`
	Inputs      []string     `yaml:"inputs" json:"inputs"`
	Outputs     []string     `yaml:"outputs" json:"outputs"`
	Initial     string       `yaml:"initial,omitempty" json:"initial,omitempty"`
	Transitions []Transition `yaml:"transitions" json:"transitions"`
}

// Transition names one table entry: consuming Input in state From moves the
// machine to state To and emits Output.
type Transition struct {
	From   string `yaml:"from" json:"from"`
	Input  string `yaml:"input" json:"input"`
	To     string `yaml:"to" json:"to"`
	Output string `yaml:"output" json:"output"`
}

// Model is a compiled definition: the dense table plus the vocabularies
// translating between names and engine codes.
type Model struct {
	Name    string
	Table   *Table
	States  Vocab
	Inputs  Vocab
	Outputs Vocab
	Initial mealy.State
}

// ParseYAML decodes a YAML machine definition. It does not validate the
// content; Compile does.
func ParseYAML(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.Join(ErrFailedToParseDefinition, err)
	}
	return &def, nil
}

// LoadFile reads and decodes a YAML machine definition file.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDefinition, err)
	}
	return ParseYAML(data)
}

// Validate checks the definition without keeping the compiled result.
func (d *Definition) Validate() error {
	_, err := d.Compile()
	return err
}

// Compile resolves every name to a dense code and builds the transition
// table. An empty initial state defaults to the first declared state.
func (d *Definition) Compile() (*Model, error) {
	if len(d.States) == 0 {
		return nil, ErrNoStates
	}
	if len(d.Inputs) == 0 {
		return nil, ErrNoInputs
	}

	states, err := newVocab("state", d.States)
	if err != nil {
		return nil, err
	}
	inputs, err := newVocab("input", d.Inputs)
	if err != nil {
		return nil, err
	}
	outputs, err := newVocab("output", d.Outputs)
	if err != nil {
		return nil, err
	}

	initialName := d.Initial
	if initialName == "" {
		initialName = d.States[0]
	}
	initial, ok := states.Code(initialName)
	if !ok {
		return nil, errors.Join(ErrUnknownState, fmt.Errorf("initial state %q", initialName))
	}

	builder, err := NewBuilder(states.Len(), inputs.Len())
	if err != nil {
		return nil, err
	}

	for i, t := range d.Transitions {
		from, ok := states.Code(t.From)
		if !ok {
			return nil, errors.Join(ErrUnknownState, fmt.Errorf("transition %d: from %q", i, t.From))
		}
		to, ok := states.Code(t.To)
		if !ok {
			return nil, errors.Join(ErrUnknownState, fmt.Errorf("transition %d: to %q", i, t.To))
		}
		in, ok := inputs.Code(t.Input)
		if !ok {
			return nil, errors.Join(ErrUnknownInput, fmt.Errorf("transition %d: input %q", i, t.Input))
		}
		out, ok := outputs.Code(t.Output)
		if !ok {
			return nil, errors.Join(ErrUnknownOutput, fmt.Errorf("transition %d: output %q", i, t.Output))
		}

		if err := builder.Add(mealy.State(from), mealy.Symbol(in), mealy.State(to), mealy.Output(out)); err != nil {
			return nil, fmt.Errorf("transition %d (%s --%s--> %s): %w", i, t.From, t.Input, t.To, err)
		}
	}

	return &Model{
		Name:    d.Name,
		Table:   builder.Build(),
		States:  states,
		Inputs:  inputs,
		Outputs: outputs,
		Initial: mealy.State(initial),
	}, nil
}

// NewEngine constructs an engine positioned at the model's initial state.
// Options are applied after the initial-state default, so callers can still
// override it.
func (m *Model) NewEngine(opts ...mealy.Option) (*mealy.Engine, error) {
	all := make([]mealy.Option, 0, len(opts)+1)
	all = append(all, mealy.WithInitialState(m.Initial))
	all = append(all, opts...)
	return mealy.New(m.Table, all...)
}

// StateCode resolves a state name to its engine code.
func (m *Model) StateCode(name string) (mealy.State, bool) {
	code, ok := m.States.Code(name)
	return mealy.State(code), ok
}

// StateName resolves an engine state code back to its name.
func (m *Model) StateName(s mealy.State) (string, bool) {
	return m.States.Name(int(s))
}

// InputCode resolves an input name to its engine code.
func (m *Model) InputCode(name string) (mealy.Symbol, bool) {
	code, ok := m.Inputs.Code(name)
	return mealy.Symbol(code), ok
}

// OutputName resolves an output code back to its name. mealy.NoOutput has
// no name and reports false.
func (m *Model) OutputName(o mealy.Output) (string, bool) {
	return m.Outputs.Name(int(o))
}
