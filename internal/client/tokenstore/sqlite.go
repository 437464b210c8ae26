package tokenstore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/photoalbum/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/photoalbum/internal/dbx"
)

// SQLiteStore keeps the token in the metadata table of the local database.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context) (string, bool, error) {
	v, found, err := metadata.NewSQLiteRepository(s.db).Get(ctx, Key)
	if err != nil {
		return "", false, fmt.Errorf("read token: %w", err)
	}
	if !found || len(v) == 0 {
		return "", false, nil
	}
	return string(v), true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	if token == "" {
		return s.Clear(ctx)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		current, found, err := repo.Get(ctx, Key)
		if err != nil {
			return err
		}
		if found && string(current) == token {
			return nil
		}

		if err := repo.Set(ctx, Key, []byte(token)); err != nil {
			return err
		}
		return bumpRevision(ctx, repo)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.clear(ctx, func(string) bool { return true })
	return err
}

func (s *SQLiteStore) ClearIf(ctx context.Context, token string) (bool, error) {
	return s.clear(ctx, func(current string) bool { return current == token })
}

func (s *SQLiteStore) clear(ctx context.Context, match func(current string) bool) (bool, error) {
	cleared := false
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		current, found, err := repo.Get(ctx, Key)
		if err != nil {
			return err
		}
		if !found || !match(string(current)) {
			return nil
		}

		if err := repo.Delete(ctx, Key); err != nil {
			return err
		}
		cleared = true
		return bumpRevision(ctx, repo)
	})
	if err != nil {
		return false, fmt.Errorf("clear token: %w", err)
	}
	return cleared, nil
}

func (s *SQLiteStore) Revision(ctx context.Context) (int64, error) {
	return readRevision(ctx, metadata.NewSQLiteRepository(s.db))
}

func readRevision(ctx context.Context, repo metadata.Repository) (int64, error) {
	v, found, err := repo.Get(ctx, RevisionKey)
	if err != nil {
		return 0, fmt.Errorf("read token revision: %w", err)
	}
	if !found {
		return 0, nil
	}
	n, err := strconv.ParseInt(string(v), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse token revision %q: %w", v, err)
	}
	return n, nil
}

func bumpRevision(ctx context.Context, repo metadata.Repository) error {
	n, err := readRevision(ctx, repo)
	if err != nil {
		return err
	}
	return repo.Set(ctx, RevisionKey, []byte(strconv.FormatInt(n+1, 10)))
}
