// Package common contains constants, sentinel errors and small helpers shared
// by the photoalbum client and the development backend.
package common

const (
	// AccessTokenHeaderName is the HTTP header that carries the session token
	// on verification and protected picture requests.
	AccessTokenHeaderName = "x-access-token"

	// RequestIDHeaderName correlates a client request with backend logs.
	RequestIDHeaderName = "X-Request-Id"

	// TokenKey is the well-known key of the persisted token slot.
	TokenKey = "token"
)
