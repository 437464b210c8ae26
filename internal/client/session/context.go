package session

import (
	"github.com/dmitrijs2005/photoalbum/internal/client/services"
	"github.com/dmitrijs2005/photoalbum/internal/client/tokenstore"
	"github.com/dmitrijs2005/photoalbum/internal/logging"
)

// Context is the bundle handed to every view. Views never reach for
// package-level state; everything they need travels here.
type Context struct {
	Store    tokenstore.Store
	Gate     *Gate
	Auth     services.AuthService
	Pictures services.PictureService
	Logger   logging.Logger
}
