package pictures

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/photoalbum/internal/common"
)

// Repository keeps picture metadata.
type Repository interface {
	Create(ctx context.Context, p *Picture) error
	Get(ctx context.Context, id string) (*Picture, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Picture, error)
	Delete(ctx context.Context, id string) error
}

type MemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]Picture
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]Picture)}
}

func (r *MemoryRepository) Create(ctx context.Context, p *Picture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[p.ID]; ok {
		return common.ErrorAlreadyExists
	}
	r.byID[p.ID] = *p
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*Picture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &p, nil
}

// ListByOwner returns the owner's pictures, oldest first.
func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]Picture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Picture, 0)
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}
