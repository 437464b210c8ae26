// Package services holds the client application services: authentication
// against the photo-album service and access to the user's pictures.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/photoalbum/internal/client/client"
)

const (
	registerFallback = "Registration failed. Please try again."
	loginFallback    = "Login failed. Please try again."
	networkMessage   = "Unable to reach the server. Please try again."
	badReplyMessage  = "Unexpected response from the server."
)

// AuthService obtains and checks session tokens. It never reads or writes
// the token store; persisting the token is up to the caller.
type AuthService interface {
	Register(ctx context.Context, fullName, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	// Verify returns nil only when the service accepts token.
	Verify(ctx context.Context, token string) error
}

type authService struct {
	client client.Client
}

func NewAuthService(c client.Client) AuthService {
	return &authService{client: c}
}

// Register forwards the fields exactly as given.
func (a *authService) Register(ctx context.Context, fullName, email, password string) (string, error) {
	resp, err := a.client.Register(ctx, email, password, fullName)
	return tokenFrom(resp, err, registerFallback)
}

func (a *authService) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := a.client.Login(ctx, email, password)
	return tokenFrom(resp, err, loginFallback)
}

func (a *authService) Verify(ctx context.Context, token string) error {
	err := a.client.VerifyToken(ctx, token)
	if err == nil {
		return nil
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) && !errors.Is(err, client.ErrUnavailable) {
		return &Error{Kind: ErrRejected, Message: apiErr.Body.FirstMessage(), Err: err}
	}
	if errors.Is(err, client.ErrUnavailable) {
		return &Error{Kind: ErrNetwork, Message: networkMessage, Err: err}
	}
	return &Error{Kind: ErrRejected, Err: err}
}

func tokenFrom(resp *client.Response, err error, fallback string) (string, error) {
	if err != nil {
		var apiErr *client.APIError
		switch {
		case errors.As(err, &apiErr) && !errors.Is(err, client.ErrUnavailable):
			return "", &Error{Kind: ErrRejected, Message: orDefault(apiErr.Body.FirstMessage(), fallback), Err: err}
		case errors.Is(err, client.ErrUnavailable):
			return "", &Error{Kind: ErrNetwork, Message: networkMessage, Err: err}
		case errors.Is(err, client.ErrBadResponse):
			return "", &Error{Kind: ErrRejected, Message: badReplyMessage, Err: err}
		default:
			return "", &Error{Kind: ErrRejected, Message: fallback, Err: err}
		}
	}

	if resp.Token != "" {
		return resp.Token, nil
	}
	// a 2xx without a token still counts as a rejection
	return "", &Error{Kind: ErrRejected, Message: orDefault(resp.FirstMessage(), fallback)}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
