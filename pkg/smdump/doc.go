// Package smdump exports compiled machine definitions as build artifacts.
//
// GoSource renders a definition as a standalone generated Go file with
// named constants and a strict Move method, so a synthesized machine can be
// embedded in a program with no dependency on this module. DOT renders the
// same definition as a Graphviz digraph with "input / output" edge labels
// for inspection and documentation.
//
// Both exporters validate the definition through mealydata.Compile first
// and produce byte-identical output for identical definitions.
//
//	src, err := smdump.GoSource(def, smdump.WithPackageName("turnstile"))
//	graph, err := smdump.DOT(def, smdump.WithRankDir("TB"))
package smdump
