package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/photoalbum/internal/client/client"
	"github.com/dmitrijs2005/photoalbum/internal/client/models"
	"github.com/dmitrijs2005/photoalbum/internal/client/tokenstore"
)

const (
	notLoggedInMessage    = "Not logged in"
	sessionExpiredMessage = "Your session has expired. Please log in again."
	listFallback          = "An error occurred while fetching pictures."
	uploadFallback        = "An error occurred while uploading the file."
	deleteFallback        = "Failed to delete picture"
)

// PictureService reaches the protected picture endpoints. The token is read
// from the store on every call and never cached. The store is never
// modified here: on ErrSessionExpired the caller decides what to do.
type PictureService interface {
	List(ctx context.Context) ([]models.Picture, error)
	Upload(ctx context.Context, data []byte, filename string) (models.Picture, error)
	Delete(ctx context.Context, id string) error
	// URL returns the address the picture bytes can be fetched from.
	URL(p models.Picture) string
}

type pictureService struct {
	client client.Client
	store  tokenstore.Store
}

func NewPictureService(c client.Client, store tokenstore.Store) PictureService {
	return &pictureService{client: c, store: store}
}

func (s *pictureService) List(ctx context.Context) ([]models.Picture, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.ListPictures(ctx, token)
	if err != nil {
		return nil, resourceError(err, listFallback)
	}
	if !resp.Success || resp.Pictures == nil {
		return []models.Picture{}, nil
	}
	return resp.Pictures, nil
}

func (s *pictureService) Upload(ctx context.Context, data []byte, filename string) (models.Picture, error) {
	if len(data) == 0 {
		return models.Picture{}, &Error{Kind: ErrInvalidInput, Message: "Please select a file to upload."}
	}
	if filename == "" {
		return models.Picture{}, &Error{Kind: ErrInvalidInput, Message: "File name is required."}
	}

	token, err := s.token(ctx)
	if err != nil {
		return models.Picture{}, err
	}

	resp, err := s.client.UploadPicture(ctx, token, filename, data)
	if err != nil {
		return models.Picture{}, resourceError(err, uploadFallback)
	}
	if !resp.Success {
		return models.Picture{}, &Error{Kind: ErrFailed, Message: orDefault(resp.Problem(), uploadFallback)}
	}
	if resp.Picture != nil {
		return *resp.Picture, nil
	}
	return models.Picture{Filename: filename}, nil
}

func (s *pictureService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &Error{Kind: ErrInvalidInput, Message: "Picture id is required."}
	}

	token, err := s.token(ctx)
	if err != nil {
		return err
	}

	resp, err := s.client.DeletePicture(ctx, token, id)
	if err != nil {
		return resourceError(err, deleteFallback)
	}
	if !resp.Success {
		return &Error{Kind: ErrFailed, Message: orDefault(resp.Error, deleteFallback)}
	}
	return nil
}

func (s *pictureService) URL(p models.Picture) string {
	return p.URL(s.client.BaseURL())
}

func (s *pictureService) token(ctx context.Context) (string, error) {
	token, ok, err := s.store.Get(ctx)
	if err != nil {
		return "", &Error{Kind: ErrFailed, Message: "Unable to read the session token.", Err: err}
	}
	if !ok {
		return "", &Error{Kind: ErrUnauthenticated, Message: notLoggedInMessage}
	}
	return token, nil
}

func resourceError(err error, fallback string) error {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return &Error{Kind: ErrSessionExpired, Message: sessionExpiredMessage, Err: err}
	case errors.Is(err, client.ErrUnavailable):
		return &Error{Kind: ErrNetwork, Message: networkMessage, Err: err}
	case errors.Is(err, client.ErrBadResponse):
		return &Error{Kind: ErrFailed, Message: badReplyMessage, Err: err}
	case errors.As(err, &apiErr):
		return &Error{Kind: ErrFailed, Message: orDefault(apiErr.Body.Problem(), fallback), Err: err}
	default:
		return &Error{Kind: ErrFailed, Message: fallback, Err: err}
	}
}
