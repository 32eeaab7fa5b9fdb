// Package kvstore is the backend analogue of the app's device storage:
// opaque string values under string keys, best-effort durability.
package kvstore

import "context"

// Store is the persistence contract for entity snapshots. The second
// return of Get reports whether the key exists.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
