// Package server wires the development photo-album backend: users, picture
// storage, the chi router and the HTTP server lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/photoalbum/internal/logging"
	"github.com/dmitrijs2005/photoalbum/internal/server/auth"
	"github.com/dmitrijs2005/photoalbum/internal/server/config"
	"github.com/dmitrijs2005/photoalbum/internal/server/httpapi"
	"github.com/dmitrijs2005/photoalbum/internal/server/pictures"
	"github.com/dmitrijs2005/photoalbum/internal/server/users"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config  *config.Config
	logger  logging.Logger
	handler http.Handler
}

func NewApp(ctx context.Context, c *config.Config, logOut io.Writer) (*App, error) {
	logger, err := logging.New(c.LogFormat, c.LogLevel, logOut)
	if err != nil {
		return nil, err
	}

	blobs, err := newBlobStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	issuer := auth.NewIssuer([]byte(c.SecretKey), c.TokenTTL)
	us := users.NewService(users.NewMemoryRepository(), issuer)
	ps := pictures.NewService(pictures.NewMemoryRepository(), blobs, logger.With("component", "pictures"))

	handler := httpapi.NewRouter(httpapi.Options{
		Users:          us,
		Pictures:       ps,
		Tokens:         issuer,
		Logger:         logger,
		MaxUploadBytes: c.MaxUploadBytes,
	})

	return &App{config: c, logger: logger, handler: handler}, nil
}

func newBlobStore(ctx context.Context, c *config.Config) (pictures.BlobStore, error) {
	if c.Storage == config.StorageS3 {
		client, err := pictures.NewS3Client(ctx, pictures.S3Settings{
			User:         c.S3RootUser,
			Password:     c.S3RootPassword,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
		})
		if err != nil {
			return nil, err
		}
		return pictures.NewS3Store(client, c.S3Bucket), nil
	}
	return pictures.NewFSStore(c.UploadDir)
}

// Handler returns the API router.
func (app *App) Handler() http.Handler {
	return app.handler
}

// Run listens on the configured address until ctx is cancelled or the
// process receives SIGINT/SIGTERM, then shuts the server down gracefully.
func (app *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.config.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", app.config.ListenAddr, err)
	}
	return app.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (app *App) Serve(ctx context.Context, ln net.Listener) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Handler:           app.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "Starting server", "addr", ln.Addr().String(), "storage", app.config.Storage)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info(context.Background(), "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
