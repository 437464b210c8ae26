package client

import (
	"context"

	"github.com/dmitrijs2005/photoalbum/internal/client/models"
)

// Client is the service contract used by the auth and picture services.
type Client interface {
	BaseURL() string
	Register(ctx context.Context, email, password, fullName string) (*Response, error)
	Login(ctx context.Context, email, password string) (*Response, error)
	VerifyToken(ctx context.Context, token string) error
	ListPictures(ctx context.Context, token string) (*Response, error)
	UploadPicture(ctx context.Context, token, filename string, data []byte) (*Response, error)
	DeletePicture(ctx context.Context, token, id string) (*Response, error)
}

// Response is the union of all reply bodies the service sends.
type Response struct {
	Token    string           `json:"token,omitempty"`
	Success  bool             `json:"success,omitempty"`
	Message  string           `json:"message,omitempty"`
	Error    string           `json:"error,omitempty"`
	Details  string           `json:"details,omitempty"`
	Pictures []models.Picture `json:"pictures,omitempty"`
	Picture  *models.Picture  `json:"picture,omitempty"`
}

// FirstMessage returns the first non-empty of message, error and details.
func (r Response) FirstMessage() string {
	for _, s := range []string{r.Message, r.Error, r.Details} {
		if s != "" {
			return s
		}
	}
	return ""
}

// Problem returns the first non-empty of error and details.
func (r Response) Problem() string {
	if r.Error != "" {
		return r.Error
	}
	return r.Details
}
