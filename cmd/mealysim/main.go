package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/dmitrymomot/fsmkit/pkg/config"
	"github.com/dmitrymomot/fsmkit/pkg/logger"
	"github.com/dmitrymomot/fsmkit/pkg/mealy"
	"github.com/dmitrymomot/fsmkit/pkg/mealydata"
	"github.com/dmitrymomot/fsmkit/pkg/smdump"
	"github.com/dmitrymomot/fsmkit/pkg/snapshot"
)

type appConfig struct {
	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		log.Fatalf("Failed to parse environment: %v", err)
	}
	lg := logger.New(
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithAttr(logger.Component("mealysim")),
	)

	var (
		file     = flag.String("f", "", "machine definition YAML file (required)")
		dump     = flag.String("dump", "", "export the machine instead of running it: go or dot")
		pkgName  = flag.String("pkg", "", "package name for -dump go")
		typeName = flag.String("type", "", "type name for -dump go")
		rankDir  = flag.String("rankdir", "", "rank direction for -dump dot: LR, RL, TB, or BT")
		from     = flag.String("from", "", "start in the named state instead of the definition's initial state")
		resume   = flag.String("resume", "", "resume from the snapshot stored under this id and save the new position back on success")
		save     = flag.String("snapshot", "", "save a snapshot under this id after a successful run")
		fallback = flag.Bool("fallback", false, "absorb undefined transitions as self-loops instead of failing")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: mealysim -f machine.yaml [flags] [input ...]\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Feeds the named input symbols to the machine and prints one\n")
		fmt.Fprintf(flag.CommandLine.Output(), "\"input / output\" line per symbol followed by the final state.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	def, err := mealydata.LoadFile(*file)
	if err != nil {
		lg.Error("failed to load definition", logger.File(*file), logger.Error(err))
		os.Exit(1)
	}

	if *dump != "" {
		if err := dumpMachine(def, *dump, *pkgName, *typeName, *rankDir); err != nil {
			lg.Error("export failed", slog.String("format", *dump), logger.Error(err))
			os.Exit(1)
		}
		return
	}

	model, err := def.Compile()
	if err != nil {
		lg.Error("invalid definition", logger.File(*file), logger.Error(err))
		os.Exit(1)
	}

	var store snapshot.Store
	if *resume != "" || *save != "" {
		var redisCfg snapshot.RedisConfig
		if err := config.Load(&redisCfg); err != nil {
			lg.Error("failed to parse redis config", logger.Error(err))
			os.Exit(1)
		}
		client, err := snapshot.ConnectRedis(ctx, redisCfg)
		if err != nil {
			lg.Error("failed to connect to redis", logger.Error(err))
			os.Exit(1)
		}
		defer client.Close()
		if store, err = snapshot.NewRedis(client); err != nil {
			lg.Error("failed to create snapshot store", logger.Error(err))
			os.Exit(1)
		}
	}

	eng, err := buildEngine(ctx, model, store, *resume, *from, *fallback, lg)
	if err != nil {
		lg.Error("failed to start machine", logger.Error(err))
		os.Exit(1)
	}
	defer eng.Close()

	inputs, err := resolveInputs(model, flag.Args())
	if err != nil {
		lg.Error("bad input", logger.Error(err))
		os.Exit(1)
	}

	outputs, err := eng.Step(inputs...)
	if err != nil {
		reportStepFailure(model, err, lg)
		os.Exit(1)
	}

	for i, out := range outputs {
		name, ok := model.OutputName(out)
		if !ok {
			name = "-"
		}
		fmt.Printf("%s / %s\n", flag.Args()[i], name)
	}

	state, err := eng.Current()
	if err != nil {
		lg.Error("failed to read state", logger.Error(err))
		os.Exit(1)
	}
	stateName, _ := model.StateName(state)
	fmt.Printf("state: %s\n", stateName)

	// A resumed run writes its new position back under the same id unless
	// -snapshot redirects it elsewhere.
	saveID := *save
	if saveID == "" {
		saveID = *resume
	}
	if saveID != "" {
		snap, err := snapshot.Take(saveID, eng)
		if err != nil {
			lg.Error("failed to take snapshot", logger.Error(err))
			os.Exit(1)
		}
		if err := store.Save(ctx, snap); err != nil {
			lg.Error("failed to save snapshot", logger.SnapshotID(saveID), logger.Error(err))
			os.Exit(1)
		}
		lg.Info("snapshot saved", logger.SnapshotID(snap.ID), logger.State(stateName))
	}
}

func dumpMachine(def *mealydata.Definition, format, pkgName, typeName, rankDir string) error {
	var (
		out []byte
		err error
	)
	switch format {
	case "go":
		var opts []smdump.GoOption
		if pkgName != "" {
			opts = append(opts, smdump.WithPackageName(pkgName))
		}
		if typeName != "" {
			opts = append(opts, smdump.WithTypeName(typeName))
		}
		out, err = smdump.GoSource(def, opts...)
	case "dot":
		var opts []smdump.DOTOption
		if rankDir != "" {
			opts = append(opts, smdump.WithRankDir(rankDir))
		}
		out, err = smdump.DOT(def, opts...)
	default:
		return fmt.Errorf("unknown dump format %q, want go or dot", format)
	}
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func buildEngine(ctx context.Context, model *mealydata.Model, store snapshot.Store, resume, from string, fallback bool, lg *slog.Logger) (*mealy.Engine, error) {
	opts := []mealy.Option{mealy.WithLogger(lg)}
	if fallback {
		opts = append(opts, mealy.WithSelfLoopFallback())
	}

	if resume != "" {
		if from != "" {
			return nil, fmt.Errorf("-resume and -from are mutually exclusive")
		}
		snap, err := store.Load(ctx, resume)
		if err != nil {
			return nil, fmt.Errorf("load snapshot %q: %w", resume, err)
		}
		name, _ := model.StateName(snap.State)
		lg.Info("resuming from snapshot", logger.SnapshotID(snap.ID), logger.State(name))
		return snapshot.Restore(snap, model.Table, opts...)
	}

	if from != "" {
		state, ok := model.StateCode(from)
		if !ok {
			return nil, fmt.Errorf("unknown state %q, defined states: %v", from, model.States.Names())
		}
		opts = append(opts, mealy.WithInitialState(state))
		return mealy.New(model.Table, opts...)
	}

	return model.NewEngine(opts...)
}

func resolveInputs(model *mealydata.Model, args []string) ([]mealy.Symbol, error) {
	inputs := make([]mealy.Symbol, 0, len(args))
	for _, arg := range args {
		in, ok := model.InputCode(arg)
		if !ok {
			return nil, fmt.Errorf("unknown input %q, defined inputs: %v", arg, model.Inputs.Names())
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func reportStepFailure(model *mealydata.Model, err error, lg *slog.Logger) {
	var undef *mealy.ErrUndefinedTransition
	if errors.As(err, &undef) {
		stateName, _ := model.StateName(undef.State)
		inputName, _ := model.Inputs.Name(int(undef.Input))
		lg.Error("undefined transition, state unchanged",
			logger.State(stateName),
			logger.Input(inputName),
			slog.Int("index", undef.Index))
		return
	}
	lg.Error("step failed", logger.Error(err))
}
