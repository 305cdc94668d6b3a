// Package store defines the key/value port the analysis pipeline persists
// snapshots through. A missing key is a normal state, not an error: first
// visit, cleared storage, or a consumer running against an empty database
// all land there, and readers are expected to render placeholders.
package store

import "context"

// Store is a minimal best-effort key/value slot. Writes replace the previous
// value wholesale (last write wins, no versioning); reads report absence via
// the ok flag.
type Store interface {
	Set(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
}
