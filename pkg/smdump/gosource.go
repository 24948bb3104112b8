package smdump

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"

	"github.com/dmitrymomot/fsmkit/pkg/mealy"
	"github.com/dmitrymomot/fsmkit/pkg/mealydata"
)

// GoSource renders the definition as a standalone generated Go file: const
// blocks for the named states, inputs, and outputs, plus a machine type
// whose Move method walks a flat state switch. The generated machine needs
// nothing but the standard library and fails with an error on any input the
// table does not map, mirroring the engine's strict policy.
//
// Output is deterministic for a given definition and already gofmt-formatted.
func GoSource(def *mealydata.Definition, opts ...GoOption) ([]byte, error) {
	if def == nil {
		return nil, ErrNilDefinition
	}
	model, err := def.Compile()
	if err != nil {
		return nil, err
	}

	cfg := goConfig{pkgName: "machine"}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !validIdent(cfg.pkgName) {
		return nil, errors.Join(ErrBadIdentifier, fmt.Errorf("package name %q", cfg.pkgName))
	}
	if cfg.typeName == "" {
		cfg.typeName, err = deriveTypeName(def.Name)
		if err != nil {
			return nil, err
		}
	}
	if !validIdent(cfg.typeName) {
		return nil, errors.Join(ErrBadIdentifier, fmt.Errorf("type name %q", cfg.typeName))
	}

	states, err := identTable("State", model.States.Names())
	if err != nil {
		return nil, err
	}
	inputs, err := identTable("Input", model.Inputs.Names())
	if err != nil {
		return nil, err
	}
	outputs, err := identTable("Output", model.Outputs.Names())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if def.Name != "" {
		fmt.Fprintf(&buf, "// Code generated by smdump from definition %q. DO NOT EDIT.\n\n", def.Name)
	} else {
		fmt.Fprintf(&buf, "// Code generated by smdump. DO NOT EDIT.\n\n")
	}
	fmt.Fprintf(&buf, "package %s\n\n", cfg.pkgName)
	fmt.Fprintf(&buf, "import \"fmt\"\n\n")

	fmt.Fprintf(&buf, "// States of %s.\nconst (\n", cfg.typeName)
	for code, ident := range states {
		fmt.Fprintf(&buf, "%s = %d\n", ident, code)
	}
	fmt.Fprintf(&buf, ")\n\n")

	fmt.Fprintf(&buf, "// Input symbols accepted by Move.\nconst (\n")
	for code, ident := range inputs {
		fmt.Fprintf(&buf, "%s = %d\n", ident, code)
	}
	fmt.Fprintf(&buf, ")\n\n")

	if len(outputs) > 0 {
		fmt.Fprintf(&buf, "// Output symbols returned by Move.\nconst (\n")
		for code, ident := range outputs {
			fmt.Fprintf(&buf, "%s = %d\n", ident, code)
		}
		fmt.Fprintf(&buf, ")\n\n")
	}

	fmt.Fprintf(&buf, "// %s is a table-driven Mealy machine.\n", cfg.typeName)
	fmt.Fprintf(&buf, "type %s struct {\nstate int\n}\n\n", cfg.typeName)

	fmt.Fprintf(&buf, "// New%s starts the machine in its initial state.\n", cfg.typeName)
	fmt.Fprintf(&buf, "func New%s() *%s {\nreturn &%s{state: %s}\n}\n\n",
		cfg.typeName, cfg.typeName, cfg.typeName, states[model.Initial])

	fmt.Fprintf(&buf, "// State returns the current state code.\n")
	fmt.Fprintf(&buf, "func (m *%s) State() int {\nreturn m.state\n}\n\n", cfg.typeName)

	fmt.Fprintf(&buf, "// Move consumes one input symbol, advances the machine, and returns the\n")
	fmt.Fprintf(&buf, "// produced output symbol.\n")
	fmt.Fprintf(&buf, "func (m *%s) Move(input int) (int, error) {\n", cfg.typeName)
	fmt.Fprintf(&buf, "switch m.state {\n")
	for code, ident := range states {
		fmt.Fprintf(&buf, "case %s:\n", ident)
		arms := 0
		for in := range inputs {
			next, out, ok := model.Table.Lookup(mealy.State(code), mealy.Symbol(in))
			if !ok {
				continue
			}
			if arms == 0 {
				fmt.Fprintf(&buf, "switch input {\n")
			}
			fmt.Fprintf(&buf, "case %s:\n", inputs[in])
			fmt.Fprintf(&buf, "m.state = %s\n", states[next])
			fmt.Fprintf(&buf, "return %s, nil\n", outputs[out])
			arms++
		}
		if arms > 0 {
			fmt.Fprintf(&buf, "}\n")
		} else {
			fmt.Fprintf(&buf, "// no outgoing transitions\n")
		}
	}
	fmt.Fprintf(&buf, "default:\n")
	fmt.Fprintf(&buf, "return -1, fmt.Errorf(\"unrecognized internal state: %%d\", m.state)\n")
	fmt.Fprintf(&buf, "}\n")
	fmt.Fprintf(&buf, "return -1, fmt.Errorf(\"unrecognized input: %%d\", input)\n")
	fmt.Fprintf(&buf, "}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

func deriveTypeName(defName string) (string, error) {
	if defName == "" {
		return "Machine", nil
	}
	name, err := exportedIdent(defName)
	if err != nil {
		return "", err
	}
	if !validIdent(name) {
		return "", errors.Join(ErrBadIdentifier, fmt.Errorf("definition name %q, set WithTypeName", defName))
	}
	return name, nil
}
