// Package metadata is the local key/value repository of the client database.
// The token store keeps the session token and its revision counter here.
package metadata

import "context"

type Repository interface {
	// Get returns the value stored under key; found is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set inserts or overwrites key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
