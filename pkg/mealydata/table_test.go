package mealydata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/mealy"
	"github.com/dmitrymomot/fsmkit/pkg/mealydata"
)

func TestNewBuilder(t *testing.T) {
	t.Run("valid dimensions", func(t *testing.T) {
		b, err := mealydata.NewBuilder(3, 2)
		require.NoError(t, err)
		require.NotNil(t, b)
	})

	t.Run("zero states", func(t *testing.T) {
		_, err := mealydata.NewBuilder(0, 2)
		assert.ErrorIs(t, err, mealydata.ErrTableSize)
	})

	t.Run("negative inputs", func(t *testing.T) {
		_, err := mealydata.NewBuilder(3, -1)
		assert.ErrorIs(t, err, mealydata.ErrTableSize)
	})
}

func TestBuilderAdd(t *testing.T) {
	newBuilder := func(t *testing.T) *mealydata.Builder {
		t.Helper()
		b, err := mealydata.NewBuilder(2, 2)
		require.NoError(t, err)
		return b
	}

	t.Run("accepts in-range transition", func(t *testing.T) {
		b := newBuilder(t)
		require.NoError(t, b.Add(0, 0, 1, 0))
		require.NoError(t, b.Add(1, 1, 0, 1))

		table := b.Build()
		assert.Equal(t, 2, table.Len())
	})

	t.Run("rejects from state out of range", func(t *testing.T) {
		b := newBuilder(t)
		assert.ErrorIs(t, b.Add(2, 0, 0, 0), mealydata.ErrStateRange)
		assert.ErrorIs(t, b.Add(-1, 0, 0, 0), mealydata.ErrStateRange)
	})

	t.Run("rejects next state out of range", func(t *testing.T) {
		b := newBuilder(t)
		assert.ErrorIs(t, b.Add(0, 0, 2, 0), mealydata.ErrStateRange)
	})

	t.Run("rejects input out of range", func(t *testing.T) {
		b := newBuilder(t)
		assert.ErrorIs(t, b.Add(0, 2, 1, 0), mealydata.ErrInputRange)
		assert.ErrorIs(t, b.Add(0, -1, 1, 0), mealydata.ErrInputRange)
	})

	t.Run("rejects negative output", func(t *testing.T) {
		b := newBuilder(t)
		assert.ErrorIs(t, b.Add(0, 0, 1, mealy.NoOutput), mealydata.ErrOutputRange)
	})

	t.Run("rejects duplicate pair", func(t *testing.T) {
		b := newBuilder(t)
		require.NoError(t, b.Add(0, 0, 1, 0))
		assert.ErrorIs(t, b.Add(0, 0, 0, 1), mealydata.ErrDuplicateTransition)
	})
}

func TestTableLookup(t *testing.T) {
	b, err := mealydata.NewBuilder(2, 2)
	require.NoError(t, err)
	require.NoError(t, b.Add(0, 0, 1, 3))
	table := b.Build()

	t.Run("hit", func(t *testing.T) {
		next, out, ok := table.Lookup(0, 0)
		assert.True(t, ok)
		assert.Equal(t, mealy.State(1), next)
		assert.Equal(t, mealy.Output(3), out)

		// Lookup is pure: asking again gives the same answer.
		again, outAgain, okAgain := table.Lookup(0, 0)
		assert.Equal(t, next, again)
		assert.Equal(t, out, outAgain)
		assert.Equal(t, ok, okAgain)
	})

	t.Run("miss on undefined pair", func(t *testing.T) {
		_, _, ok := table.Lookup(0, 1)
		assert.False(t, ok)
	})

	t.Run("miss outside declared ranges", func(t *testing.T) {
		_, _, ok := table.Lookup(5, 0)
		assert.False(t, ok)

		_, _, ok = table.Lookup(0, 5)
		assert.False(t, ok)

		_, _, ok = table.Lookup(-1, -1)
		assert.False(t, ok)
	})

	t.Run("reports dimensions", func(t *testing.T) {
		assert.Equal(t, 2, table.NumStates())
		assert.Equal(t, 2, table.NumInputs())
		assert.Equal(t, 1, table.Len())
	})
}

func TestBuildIsolation(t *testing.T) {
	b, err := mealydata.NewBuilder(2, 2)
	require.NoError(t, err)
	require.NoError(t, b.Add(0, 0, 1, 0))

	table := b.Build()
	require.NoError(t, b.Add(0, 1, 1, 1))

	// The Add after Build must not leak into the frozen table.
	_, _, ok := table.Lookup(0, 1)
	assert.False(t, ok)
	assert.Equal(t, 1, table.Len())

	second := b.Build()
	_, _, ok = second.Lookup(0, 1)
	assert.True(t, ok)
	assert.Equal(t, 2, second.Len())
}
