// Package httpapi exposes the photo-album REST API over chi.
package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/photoalbum/internal/logging"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Options carries the router's dependencies.
type Options struct {
	Users          UserService
	Pictures       PictureService
	Tokens         TokenVerifier
	Logger         logging.Logger
	MaxUploadBytes int64
}

// NewRouter wires the handlers.
//
// Routes:
//
//	POST   /register                 public
//	POST   /login                    public
//	GET    /uploads/{name}           public
//	GET    /verify-token             x-access-token
//	GET    /api/pictures             x-access-token
//	POST   /api/upload-picture       x-access-token, multipart "image"
//	DELETE /api/delete-picture/{id}  x-access-token
func NewRouter(opts Options) http.Handler {
	h := &Handlers{
		users:          opts.Users,
		pictures:       opts.Pictures,
		maxUploadBytes: opts.MaxUploadBytes,
	}

	r := chi.NewRouter()
	r.Use(
		RequestID(),
		Logging(opts.Logger),
		Recover(),
		chiMiddleware.CleanPath,
	)

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Get("/uploads/{name}", h.ServeUpload)

	r.Group(func(r chi.Router) {
		r.Use(RequireToken(opts.Tokens))

		r.Get("/verify-token", h.VerifyToken)
		r.Route("/api", func(r chi.Router) {
			r.Get("/pictures", h.ListPictures)
			r.Post("/upload-picture", h.UploadPicture)
			r.Delete("/delete-picture/{id}", h.DeletePicture)
		})
	})

	return r
}
