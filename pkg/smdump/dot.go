package smdump

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/fsmkit/pkg/mealy"
	"github.com/dmitrymomot/fsmkit/pkg/mealydata"
)

// DOT renders the definition as a Graphviz digraph. States become nodes,
// every transition becomes one edge labeled "input / output" in the usual
// Mealy notation, and the initial state is marked with an entry arrow.
// Output is deterministic for a given definition.
func DOT(def *mealydata.Definition, opts ...DOTOption) ([]byte, error) {
	if def == nil {
		return nil, ErrNilDefinition
	}
	model, err := def.Compile()
	if err != nil {
		return nil, err
	}

	cfg := dotConfig{rankDir: "LR"}
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.rankDir {
	case "LR", "RL", "TB", "BT":
	default:
		return nil, errors.Join(ErrInvalidRankDir, fmt.Errorf("got %q", cfg.rankDir))
	}

	graphName := def.Name
	if graphName == "" {
		graphName = "machine"
	}

	states := model.States.Names()
	inputs := model.Inputs.Names()
	outputs := model.Outputs.Names()
	initial, _ := model.StateName(model.Initial)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", quoteDOT(graphName))
	fmt.Fprintf(&buf, "\trankdir=%s;\n", cfg.rankDir)
	fmt.Fprintf(&buf, "\tnode [shape=circle];\n\n")

	fmt.Fprintf(&buf, "\t__start [shape=point];\n")
	fmt.Fprintf(&buf, "\t__start -> %s;\n\n", quoteDOT(initial))

	for _, state := range states {
		fmt.Fprintf(&buf, "\t%s;\n", quoteDOT(state))
	}
	buf.WriteString("\n")

	for from, fromName := range states {
		for in, inName := range inputs {
			next, out, ok := model.Table.Lookup(mealy.State(from), mealy.Symbol(in))
			if !ok {
				continue
			}
			fmt.Fprintf(&buf, "\t%s -> %s [label=%s];\n",
				quoteDOT(fromName),
				quoteDOT(states[next]),
				quoteDOT(inName+" / "+outputs[out]))
		}
	}

	fmt.Fprintf(&buf, "}\n")
	return buf.Bytes(), nil
}

// quoteDOT wraps s in a double-quoted DOT string, escaping quotes and
// backslashes.
func quoteDOT(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
