package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/photoalbum/internal/common"
	"github.com/dmitrijs2005/photoalbum/internal/logging"
	"github.com/google/uuid"
)

// Middleware is a plain net/http middleware.
type Middleware func(http.Handler) http.Handler

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyLogger
	ctxKeyUserID
)

var newRequestID = func() (string, error) {
	return common.MakeRandHexString(16)
}

// RequestID keeps an incoming X-Request-Id or makes a new one and echoes it
// back on the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(common.RequestIDHeaderName)
			if id == "" {
				var err error
				if id, err = newRequestID(); err != nil || id == "" {
					id = uuid.NewString()
				}
				r.Header.Set(common.RequestIDHeaderName, id)
			}
			w.Header().Set(common.RequestIDHeaderName, id)

			ctx := context.WithValue(r.Context(), ctxKeyRequestID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Logging puts a request-scoped logger into the context and writes one line
// per request once the handler returns.
func Logging(l logging.Logger) Middleware {
	if l == nil {
		l = logging.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLogger := l
			if rid, ok := r.Context().Value(ctxKeyRequestID).(string); ok && rid != "" {
				reqLogger = reqLogger.With("request_id", rid)
			}
			r = r.WithContext(context.WithValue(r.Context(), ctxKeyLogger, reqLogger))

			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)

			reqLogger.Info(r.Context(), "http",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"dur", time.Since(start),
				"bytes", sw.count,
			)
		})
	}
}

// Recover turns a panic into a 500 without leaking details to the client.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					loggerFrom(r.Context()).Error(r.Context(), "panic", "path", r.URL.Path, "reason", rec)
					writeError(w, http.StatusInternalServerError, msgInternal)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequireToken authenticates the x-access-token header and stores the user id
// in the request context.
func RequireToken(tokens TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(common.AccessTokenHeaderName)
			if token == "" {
				writeError(w, http.StatusUnauthorized, msgNoToken)
				return
			}

			userID, err := tokens.UserID(token)
			if err != nil {
				lvl := "invalid"
				if errors.Is(err, common.ErrTokenExpired) {
					lvl = "expired"
				}
				loggerFrom(r.Context()).Debug(r.Context(), "token rejected", "reason", lvl)
				writeError(w, http.StatusUnauthorized, msgBadToken)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func loggerFrom(ctx context.Context) logging.Logger {
	if l, ok := ctx.Value(ctxKeyLogger).(logging.Logger); ok {
		return l
	}
	return logging.Nop()
}

func userIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyUserID).(string)
	return id
}

// statusWriter records the status code and byte count of a response.
type statusWriter struct {
	http.ResponseWriter
	status int
	count  int
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w}
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(p)
	w.count += n
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
