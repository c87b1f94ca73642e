// Package corpus persists conformance vectors — golden wire captures of
// MQTT packets, keyed by scenario name — behind the same generic
// Store[T] capability the teacher's session/message stores expose, so
// tooling such as cmd/mqttwiredump can keep them in memory, an embedded
// Pebble database, or a shared Redis instance interchangeably. packet/'s
// tests and fuzz targets keep their own inline copies of these vectors
// and do not load them from here. None of wire/ or packet/ depends on this package at
// runtime: it is test and development tooling, not a persisted session
// store (excluded by spec.md's Non-goals).
package corpus

import "context"

// Store is a generic key-value store over conformance vectors (or any
// other T), mirroring the teacher's store.Store[T] capability set.
type Store[T any] interface {
	Reader[T]
	Metrics

	// Save stores or updates a value by key.
	Save(ctx context.Context, key string, value T) error
	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error
	// Close closes the store.
	Close() error
}

// Reader is the read-only half of Store.
type Reader[T any] interface {
	// Load retrieves a value by key.
	Load(ctx context.Context, key string) (T, error)
	// Exists checks if a key exists.
	Exists(ctx context.Context, key string) (bool, error)
	// List returns all keys.
	List(ctx context.Context) ([]string, error)
}

// Metrics reports aggregate counts about a store.
type Metrics interface {
	// Count returns the total number of items.
	Count(ctx context.Context) (int64, error)
}
