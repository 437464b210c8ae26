// Package pictures stores uploaded pictures for their owners: metadata in a
// Repository, bytes in a BlobStore.
package pictures

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/photoalbum/internal/common"
	"github.com/dmitrijs2005/photoalbum/internal/logging"
	"github.com/google/uuid"
)

type Service struct {
	repo  Repository
	blobs BlobStore
	log   logging.Logger
	now   func() time.Time
}

func NewService(repo Repository, blobs BlobStore, log logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{repo: repo, blobs: blobs, log: log, now: time.Now}
}

func (s *Service) List(ctx context.Context, ownerID string) ([]Picture, error) {
	list, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: list pictures: %w", common.ErrorInternal, err)
	}
	return list, nil
}

// Upload stores data under a fresh name. Empty data yields
// common.ErrorValidation.
func (s *Service) Upload(ctx context.Context, ownerID, filename string, data []byte) (*Picture, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty picture", common.ErrorValidation)
	}

	filename = cleanFilename(filename)
	id := uuid.NewString()
	p := &Picture{
		ID:          id,
		OwnerID:     ownerID,
		Filename:    filename,
		StorageName: id + strings.ToLower(filepath.Ext(filename)),
		ContentType: http.DetectContentType(data),
		Size:        int64(len(data)),
		CreatedAt:   s.now().UTC(),
	}

	if err := s.blobs.Put(ctx, p.StorageName, bytes.NewReader(data), p.Size, p.ContentType); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if derr := s.blobs.Delete(ctx, p.StorageName); derr != nil {
			s.log.Warn(ctx, "orphaned blob", "name", p.StorageName, "error", derr)
		}
		return nil, fmt.Errorf("%w: save picture: %w", common.ErrorInternal, err)
	}

	s.log.Info(ctx, "picture uploaded", "id", p.ID, "owner", ownerID, "size", p.Size)
	return p, nil
}

// Delete removes the owner's picture. Pictures of other owners are reported
// as common.ErrorNotFound.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	if p.OwnerID != ownerID {
		return common.ErrorNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	if err := s.blobs.Delete(ctx, p.StorageName); err != nil && !errors.Is(err, common.ErrorNotFound) {
		s.log.Warn(ctx, "orphaned blob", "name", p.StorageName, "error", err)
	}
	return nil
}

// Open returns the stored bytes for a storage name.
func (s *Service) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := s.blobs.Get(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return rc, nil
}

func cleanFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == "/" || name == "" {
		return "picture"
	}
	return name
}
