package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/photoalbum/internal/common"
	"github.com/google/uuid"
)

// MemoryRepository keeps users in a map keyed by lower-cased email.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]User)}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	key := emailKey(user.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[key]; ok {
		return nil, common.ErrorAlreadyExists
	}

	u := *user
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	r.users[key] = u

	return &u, nil
}

func (r *MemoryRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[emailKey(email)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}
