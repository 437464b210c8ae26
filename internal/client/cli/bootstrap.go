package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/photoalbum/internal/client/client"
	"github.com/dmitrijs2005/photoalbum/internal/client/config"
	"github.com/dmitrijs2005/photoalbum/internal/client/repositories"
	"github.com/dmitrijs2005/photoalbum/internal/client/services"
	"github.com/dmitrijs2005/photoalbum/internal/client/session"
	"github.com/dmitrijs2005/photoalbum/internal/client/tokenstore"
	"github.com/dmitrijs2005/photoalbum/internal/logging"
)

// NewAppFromConfig wires the local database, the transport, the services and
// the session gate. The returned close func releases the database.
func NewAppFromConfig(ctx context.Context, cfg *config.Config, in io.Reader, out, logOut io.Writer) (*App, func() error, error) {
	log, err := logging.New(cfg.LogFormat, cfg.LogLevel, logOut)
	if err != nil {
		return nil, nil, err
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	repos, err := repositories.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := tokenstore.NewSQLiteStore(repos.DB)
	api := client.NewHTTPClient(cfg.ServerURL, cfg.RequestTimeout, log.With("component", "http"))
	auth := services.NewAuthService(api)

	sess := &session.Context{
		Store:    store,
		Gate:     session.NewGate(store, auth, log.With("component", "session")),
		Auth:     auth,
		Pictures: services.NewPictureService(api, store),
		Logger:   log,
	}

	broker := tokenstore.NewBroker()
	watcher := tokenstore.NewWatcher(store, broker, cfg.TokenPollInterval, log.With("component", "token-watcher"))

	return NewApp(sess, broker, watcher, in, out), repos.Close, nil
}
