package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/photoalbum/internal/common"
	"github.com/dmitrijs2005/photoalbum/internal/logging"
	"github.com/google/uuid"
)

// maxResponseBytes caps how much of a reply body is read.
const maxResponseBytes = 4 << 20

type HTTPClient struct {
	baseURL   string
	http      *http.Client
	log       logging.Logger
	requestID func() string
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	if log == nil {
		log = logging.Nop()
	}
	return &HTTPClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: timeout},
		log:       log,
		requestID: uuid.NewString,
	}
}

func (c *HTTPClient) BaseURL() string { return c.baseURL }

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName,omitempty"`
}

func (c *HTTPClient) Register(ctx context.Context, email, password, fullName string) (*Response, error) {
	return c.postJSON(ctx, "/register", credentials{Email: email, Password: password, FullName: fullName})
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*Response, error) {
	return c.postJSON(ctx, "/login", credentials{Email: email, Password: password})
}

func (c *HTTPClient) VerifyToken(ctx context.Context, token string) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/verify-token", token, nil)
	if err != nil {
		return err
	}
	resp, status, err := c.do(req)
	if err != nil && !errors.Is(err, ErrBadResponse) {
		return err
	}
	// anything but a plain 200 is a rejection
	if status != http.StatusOK {
		return &APIError{Status: status, Body: *resp}
	}
	return nil
}

func (c *HTTPClient) ListPictures(ctx context.Context, token string) (*Response, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/pictures", token, nil)
	if err != nil {
		return nil, err
	}
	return c.doChecked(req)
}

func (c *HTTPClient) UploadPicture(ctx context.Context, token, filename string, data []byte) (*Response, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	h.Set("Content-Type", http.DetectContentType(data))
	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/upload-picture", token, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.doChecked(req)
}

func (c *HTTPClient) DeletePicture(ctx context.Context, token, id string) (*Response, error) {
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/delete-picture/"+url.PathEscape(id), token, nil)
	if err != nil {
		return nil, err
	}
	return c.doChecked(req)
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, payload any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, "", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doChecked(req)
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, c.requestID())
	if token != "" {
		req.Header.Set(common.AccessTokenHeaderName, token)
	}
	return req, nil
}

// doChecked turns non-2xx replies into *APIError and undecodable 2xx
// replies into ErrBadResponse.
func (c *HTTPClient) doChecked(req *http.Request) (*Response, error) {
	resp, status, err := c.do(req)
	if err != nil && !errors.Is(err, ErrBadResponse) {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &APIError{Status: status, Body: *resp}
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// do returns a non-nil Response whenever the status is known. A body that is
// not valid JSON yields an empty Response together with ErrBadResponse.
func (c *HTTPClient) do(req *http.Request) (*Response, int, error) {
	ctx := req.Context()
	start := time.Now()
	log := c.log.With(
		"request_id", req.Header.Get(common.RequestIDHeaderName),
		"method", req.Method,
		"path", req.URL.Path,
	)

	res, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return nil, 0, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		log.Warn(ctx, "reading response failed", "status", res.StatusCode, "error", err)
		return nil, 0, fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	var out Response
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			log.Warn(ctx, "response is not valid JSON", "status", res.StatusCode, "error", err)
			return &Response{}, res.StatusCode, fmt.Errorf("%w: decode body: %w", ErrBadResponse, err)
		}
	}

	log.Debug(ctx, "request done", "status", res.StatusCode, "duration", time.Since(start))
	return &out, res.StatusCode, nil
}
