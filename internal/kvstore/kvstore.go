// Package kvstore wraps the external key-value service behind the narrow
// surface the triage core consumes: get, set, prefix scan, multi-set,
// multi-delete and atomic increment. Values are JSON-serialized records or
// integers; keys are UTF-8 strings.
package kvstore

import "context"

type Store interface {
	// Get returns the value stored under key. ok is false on a miss.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// GetByPrefix returns the values of every key matching prefix. Order
	// is unspecified; callers sort.
	GetByPrefix(ctx context.Context, prefix string) ([]string, error)
	MSet(ctx context.Context, keys, values []string) error
	MDel(ctx context.Context, keys []string) error
	// IncrBy atomically adds delta to the integer stored under key,
	// treating a missing key as zero, and returns the new value.
	IncrBy(ctx context.Context, key string, delta int64) (int64, error)
}
