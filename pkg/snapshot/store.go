package snapshot

import "context"

// Store persists snapshots by id. Implementations must be safe for
// concurrent use; they are shared infrastructure, unlike the engine itself.
type Store interface {
	// Save writes the snapshot, replacing any previous one with the same ID.
	Save(ctx context.Context, snap Snapshot) error

	// Load returns the snapshot stored under id, or ErrNotFound.
	Load(ctx context.Context, id string) (Snapshot, error)

	// Delete removes the snapshot stored under id. Deleting an absent id
	// is not an error.
	Delete(ctx context.Context, id string) error
}
