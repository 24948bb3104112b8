package snapshot

import (
	"time"

	"github.com/dmitrymomot/fsmkit/pkg/mealy"
)

// Snapshot captures an engine's position at a point in time. It carries no
// table data; restoring requires the same table (or a compatible one) the
// engine was running.
type Snapshot struct {
	ID      string      `json:"id"`
	State   mealy.State `json:"state"`
	TakenAt time.Time   `json:"taken_at"`
}

// Take reads the engine's current state into a snapshot. An empty id falls
// back to the engine's own instance ID. Taking a snapshot never mutates the
// engine; a closed engine surfaces mealy.ErrEngineClosed.
func Take(id string, eng *mealy.Engine) (Snapshot, error) {
	if eng == nil {
		return Snapshot{}, ErrNilEngine
	}
	cur, err := eng.Current()
	if err != nil {
		return Snapshot{}, err
	}
	if id == "" {
		id = eng.ID().String()
	}
	return Snapshot{
		ID:      id,
		State:   cur,
		TakenAt: time.Now().UTC(),
	}, nil
}

// Restore builds a fresh engine over table positioned at the snapshot's
// state. The snapshot state becomes the new engine's initial state, so Reset
// returns to it rather than to the table's conventional start. A state the
// table cannot hold surfaces mealy's *ErrInvalidState.
func Restore(snap Snapshot, table mealy.TransitionTable, opts ...mealy.Option) (*mealy.Engine, error) {
	all := make([]mealy.Option, 0, len(opts)+1)
	all = append(all, mealy.WithInitialState(snap.State))
	all = append(all, opts...)
	return mealy.New(table, all...)
}
