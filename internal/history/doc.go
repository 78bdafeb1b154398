// Package history keeps the console's recent queries in memory.
//
// A Store is shared between the Bubble Tea model, which reads snapshots to
// render, and the commands that complete queries in the background and add
// entries. All methods are safe for concurrent use; Snapshot returns copies
// so callers never observe later mutations.
//
// Nothing is persisted. The history lives only as long as the console.
package history
