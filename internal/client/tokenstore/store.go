package tokenstore

import (
	"context"

	"github.com/dmitrijs2005/photoalbum/internal/common"
)

// Key is the fixed metadata key the token is stored under.
const (
	Key         = common.TokenKey
	RevisionKey = "token_revision"
)

type Store interface {
	// Get returns the stored token. ok is false when the slot is empty.
	Get(ctx context.Context) (token string, ok bool, err error)
	// Set stores token, replacing any previous value. Set("") clears the slot.
	Set(ctx context.Context, token string) error
	// Clear empties the slot. Clearing an empty slot is a no-op.
	Clear(ctx context.Context) error
	// ClearIf empties the slot only while it still holds token.
	ClearIf(ctx context.Context, token string) (bool, error)
	// Revision counts effective mutations of the slot.
	Revision(ctx context.Context) (int64, error)
}

// Change describes the slot after a mutation was observed.
type Change struct {
	Present  bool
	Revision int64
}
