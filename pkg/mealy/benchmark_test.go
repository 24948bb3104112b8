package mealy_test

import (
	"testing"

	"github.com/dmitrymomot/fsmkit/pkg/mealy"
)

func BenchmarkEngine_Step(b *testing.B) {
	const (
		fwd  = mealy.Symbol(0)
		back = mealy.Symbol(1)
	)

	eng := mealy.MustNew(twoStateTable())

	b.ResetTimer()

	for b.Loop() {
		// Full toggle cycle keeps the table hot and the state bounded.
		_, _ = eng.Step(fwd, back, fwd, back)
	}
}

func BenchmarkEngine_Move(b *testing.B) {
	const (
		fwd  = mealy.Symbol(0)
		back = mealy.Symbol(1)
	)

	eng := mealy.MustNew(twoStateTable())

	b.ResetTimer()

	for b.Loop() {
		_, _ = eng.Move(fwd)
		_, _ = eng.Move(back)
	}
}

func BenchmarkEngine_StepWithFallback(b *testing.B) {
	const (
		fwd  = mealy.Symbol(0)
		back = mealy.Symbol(1)
		gap  = mealy.Symbol(2)
	)

	eng := mealy.MustNew(twoStateTable(), mealy.WithSelfLoopFallback())

	b.ResetTimer()

	for b.Loop() {
		// gap never resolves, exercising the self-loop path between hits.
		_, _ = eng.Step(fwd, gap, back, gap)
	}
}

func BenchmarkEngine_StepLargeVector(b *testing.B) {
	const (
		fwd  = mealy.Symbol(0)
		back = mealy.Symbol(1)
	)

	eng := mealy.MustNew(twoStateTable())

	inputs := make([]mealy.Symbol, 1024)
	for i := range inputs {
		if i%2 == 0 {
			inputs[i] = fwd
		} else {
			inputs[i] = back
		}
	}

	b.ResetTimer()

	for b.Loop() {
		_, _ = eng.Step(inputs...)
	}
}

func BenchmarkEngine_Construction(b *testing.B) {
	table := twoStateTable()

	for b.Loop() {
		_ = mealy.MustNew(table, mealy.WithInitialState(1))
	}
}
