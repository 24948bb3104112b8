package smdump

// GoOption configures the Go source exporter.
type GoOption func(*goConfig)

type goConfig struct {
	pkgName  string
	typeName string
}

// WithPackageName overrides the package clause of the generated file.
// The default is "machine".
func WithPackageName(name string) GoOption {
	return func(cfg *goConfig) {
		cfg.pkgName = name
	}
}

// WithTypeName overrides the generated machine type's name. The default is
// the definition's name mangled to an identifier, or "Machine" when the
// definition is unnamed.
func WithTypeName(name string) GoOption {
	return func(cfg *goConfig) {
		cfg.typeName = name
	}
}

// DOTOption configures the Graphviz exporter.
type DOTOption func(*dotConfig)

type dotConfig struct {
	rankDir string
}

// WithRankDir sets the graph's rankdir attribute (LR, RL, TB, or BT).
// The default is LR.
func WithRankDir(dir string) DOTOption {
	return func(cfg *dotConfig) {
		cfg.rankDir = dir
	}
}
