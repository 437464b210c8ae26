package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/photoalbum/internal/client/services"
)

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

func (a *App) List(ctx context.Context) error {
	pics, err := a.sess.Pictures.List(ctx)
	if err != nil {
		return a.handleResourceError(ctx, err)
	}

	if len(pics) == 0 {
		a.println("No pictures uploaded yet.")
		return nil
	}

	a.println(fmt.Sprintf("Your pictures (%d):", len(pics)))
	for _, p := range pics {
		a.println(fmt.Sprintf("  %s  %s  %s", p.ID, p.Filename, a.sess.Pictures.URL(p)))
	}
	return nil
}

func (a *App) Upload(ctx context.Context, path string) error {
	if path == "" {
		var err error
		if path, err = getSimpleText(a.reader, "Path to picture", a.out); err != nil {
			return err
		}
	}

	var data []byte
	if path != "" {
		var err error
		if data, err = readFile(path); err != nil {
			a.println("Cannot read file:", err)
			return nil
		}
	}

	pic, err := a.sess.Pictures.Upload(ctx, data, filepath.Base(path))
	if err != nil {
		return a.handleResourceError(ctx, err)
	}

	a.println(fmt.Sprintf("Picture uploaded successfully: %s", pic.Filename))
	return a.List(ctx)
}

func (a *App) Delete(ctx context.Context, id string) error {
	if id == "" {
		var err error
		if id, err = getSimpleText(a.reader, "Picture id", a.out); err != nil {
			return err
		}
	}

	if !Confirm(a.reader, "Are you sure you want to delete this picture?", a.out) {
		a.println("Cancelled.")
		return nil
	}

	if err := a.sess.Pictures.Delete(ctx, id); err != nil {
		return a.handleResourceError(ctx, err)
	}

	a.println("Picture deleted successfully.")
	return a.List(ctx)
}

// handleResourceError reports err; an expired session also clears the
// stored token so every view falls back to logged out.
func (a *App) handleResourceError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrSessionExpired):
		if cerr := a.sess.Store.Clear(ctx); cerr != nil {
			a.sess.Logger.Error(ctx, "clearing expired token failed", "error", cerr)
		}
		a.refreshSession(ctx)
		a.println(services.Message(err))
	case errors.Is(err, services.ErrUnauthenticated):
		a.println("Not logged in")
	default:
		a.sess.Logger.Warn(ctx, "picture request failed", "error", err)
		a.println(services.Message(err))
	}
	return nil
}
