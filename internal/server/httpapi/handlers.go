package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/dmitrijs2005/photoalbum/internal/common"
	"github.com/dmitrijs2005/photoalbum/internal/server/pictures"
	"github.com/go-chi/chi/v5"
)

// UserService registers and logs in users, returning session tokens.
type UserService interface {
	Register(ctx context.Context, email, password, fullName string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// PictureService manages the pictures of one owner at a time.
type PictureService interface {
	List(ctx context.Context, ownerID string) ([]pictures.Picture, error)
	Upload(ctx context.Context, ownerID, filename string, data []byte) (*pictures.Picture, error)
	Delete(ctx context.Context, ownerID, id string) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// TokenVerifier resolves a session token to its user id.
type TokenVerifier interface {
	UserID(token string) (string, error)
}

// multipartOverhead leaves room for multipart headers on top of the file.
const multipartOverhead = 64 << 10

type Handlers struct {
	users          UserService
	pictures       PictureService
	maxUploadBytes int64
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	token, err := h.users.Register(r.Context(), in.Email, in.Password, in.FullName)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, tokenResponse{Token: token, Message: msgRegistered})
	case errors.Is(err, common.ErrorValidation):
		writeError(w, http.StatusBadRequest, msgMissingFields)
	case errors.Is(err, common.ErrorAlreadyExists):
		writeError(w, http.StatusConflict, msgUserExists)
	default:
		h.internal(w, r, "register", err)
	}
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, msgBadRequest)
		return
	}
	if in.Email == "" || in.Password == "" {
		writeError(w, http.StatusBadRequest, msgMissingLogin)
		return
	}

	token, err := h.users.Login(r.Context(), in.Email, in.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, tokenResponse{Token: token})
	case errors.Is(err, common.ErrorUnauthorized):
		writeError(w, http.StatusUnauthorized, msgBadLogin)
	default:
		h.internal(w, r, "login", err)
	}
}

// VerifyToken only runs behind RequireToken, so reaching it means the token
// is valid.
func (h *Handlers) VerifyToken(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, resultResponse{Success: true, UserID: userIDFrom(r.Context())})
}

func (h *Handlers) ListPictures(w http.ResponseWriter, r *http.Request) {
	list, err := h.pictures.List(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.internal(w, r, "list pictures", err)
		return
	}

	out := picturesResponse{Success: true, Pictures: make([]pictureDTO, 0, len(list))}
	for _, p := range list {
		out.Pictures = append(out.Pictures, toDTO(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) UploadPicture(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)

	file, header, err := r.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, msgTooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, msgNoFile)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgNoFile)
		return
	}
	if int64(len(data)) > h.maxUploadBytes {
		writeError(w, http.StatusRequestEntityTooLarge, msgTooLarge)
		return
	}

	p, err := h.pictures.Upload(r.Context(), userIDFrom(r.Context()), header.Filename, data)
	switch {
	case err == nil:
		dto := toDTO(*p)
		writeJSON(w, http.StatusCreated, resultResponse{Success: true, Message: msgUploaded, Picture: &dto})
	case errors.Is(err, common.ErrorValidation):
		writeError(w, http.StatusBadRequest, msgNoFile)
	default:
		h.internal(w, r, "upload picture", err)
	}
}

func (h *Handlers) DeletePicture(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.pictures.Delete(r.Context(), userIDFrom(r.Context()), id)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, resultResponse{Success: true, Message: msgDeleted})
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, msgNotFound)
	default:
		h.internal(w, r, "delete picture", err)
	}
}

// ServeUpload streams stored picture bytes; it is public like a static dir.
func (h *Handlers) ServeUpload(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	rc, err := h.pictures.Open(r.Context(), name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			http.NotFound(w, r)
			return
		}
		h.internal(w, r, "open upload", err)
		return
	}
	defer rc.Close()

	ct := mime.TypeByExtension(filepath.Ext(name))
	if ct == "" {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if _, err := io.Copy(w, rc); err != nil {
		loggerFrom(r.Context()).Warn(r.Context(), "serve upload", "name", name, "error", err)
	}
}

func (h *Handlers) internal(w http.ResponseWriter, r *http.Request, op string, err error) {
	loggerFrom(r.Context()).Error(r.Context(), op+" failed", "error", err)
	writeError(w, http.StatusInternalServerError, msgInternal)
}
