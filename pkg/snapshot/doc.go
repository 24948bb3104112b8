// Package snapshot persists and resumes the position of a running machine.
//
// A Snapshot is just an id, a state code, and a timestamp; the table itself
// is never serialized, so restoring requires the table the engine was
// running. Take reads a snapshot through the engine's public API and Restore
// builds a fresh engine positioned at the saved state.
//
// The Store interface has two implementations: Memory for tests and
// single-process use, and Redis for surviving restarts or sharing positions
// across processes. Stores are safe for concurrent use.
//
//	snap, err := snapshot.Take("order-42", eng)
//	if err := store.Save(ctx, snap); err != nil { ... }
//
//	// later, possibly in another process
//	snap, err = store.Load(ctx, "order-42")
//	eng, err = snapshot.Restore(snap, table)
//
// ConnectRedis dials the server with retry from a RedisConfig, which is
// usually populated from environment variables.
package snapshot
