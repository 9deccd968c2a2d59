// Package settings is the console's durable client storage: a small
// key-value surface that survives restarts of the same client instance.
package settings

import "context"

// Repository is the key-value persistence contract.
//
// Get returns a nil slice (and nil error) when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
