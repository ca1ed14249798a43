// Package backend provides durable key-value storage for the trip workspace.
//
// The workspace never assumes synchronous access: every operation takes a
// context and may block on I/O. Keys are fixed namespaced strings, one per
// collection; values are the collection's serialized form.
package backend

import "context"

// Backend is the durable key-value contract the workspace persists through.
// Get reports absence via the boolean, not an error.
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	RemoveMany(ctx context.Context, keys []string) error
	Close() error
}
