// Package client is the HTTP transport for the photo-album REST API.
//
// HTTPClient issues one request per call, attaching the x-access-token header
// on protected endpoints and an X-Request-Id header on every request. Bodies
// are decoded into Response, which carries every field the service may send.
//
// Non-2xx replies are returned as *APIError. APIError unwraps to one of the
// sentinel errors so callers can branch with errors.Is:
//
//   - ErrUnauthorized for 401 and 403,
//   - ErrUnavailable for 502, 503, 504 and transport failures,
//   - ErrRejected for everything else.
//
// The client keeps no token state; callers pass the token on every call.
package client
