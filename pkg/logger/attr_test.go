package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fsmkit/pkg/logger"
)

func TestError(t *testing.T) {
	t.Run("nil error yields empty attr", func(t *testing.T) {
		attr := logger.Error(nil)
		assert.Empty(t, attr.Key)
	})

	t.Run("non-nil error recorded under error key", func(t *testing.T) {
		err := errors.New("boom")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})
}

func TestDomainAttrs(t *testing.T) {
	t.Run("component", func(t *testing.T) {
		attr := logger.Component("mealysim")
		assert.Equal(t, "component", attr.Key)
		assert.Equal(t, "mealysim", attr.Value.String())
	})

	t.Run("file", func(t *testing.T) {
		attr := logger.File("machine.yaml")
		assert.Equal(t, "file", attr.Key)
		assert.Equal(t, "machine.yaml", attr.Value.String())
	})

	t.Run("state and input", func(t *testing.T) {
		assert.Equal(t, "state", logger.State("locked").Key)
		assert.Equal(t, "locked", logger.State("locked").Value.String())
		assert.Equal(t, "input", logger.Input("coin").Key)
		assert.Equal(t, "coin", logger.Input("coin").Value.String())
	})

	t.Run("snapshot id", func(t *testing.T) {
		attr := logger.SnapshotID("run-42")
		assert.Equal(t, "snapshot_id", attr.Key)
		assert.Equal(t, "run-42", attr.Value.String())
	})
}
