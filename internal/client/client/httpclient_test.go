package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/photoalbum/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*HTTPClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := NewHTTPClient(srv.URL+"/", 2*time.Second, nil)
	return c, srv
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewHTTPClient_TrimsBaseURL(t *testing.T) {
	c := NewHTTPClient("http://localhost:4000///", time.Second, nil)
	assert.Equal(t, "http://localhost:4000", c.BaseURL())
}

func TestRegister_SendsFieldsVerbatim(t *testing.T) {
	var got map[string]string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(common.RequestIDHeaderName))
		assert.Empty(t, r.Header.Get(common.AccessTokenHeaderName))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusOK, map[string]string{"token": "T1"})
	})

	resp, err := c.Register(context.Background(), " a@b.co ", " Secret1x ", " Ann ")
	require.NoError(t, err)
	assert.Equal(t, "T1", resp.Token)
	assert.Equal(t, map[string]string{"email": " a@b.co ", "password": " Secret1x ", "fullName": " Ann "}, got)
}

func TestLogin_OmitsFullName(t *testing.T) {
	var got map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeJSON(w, http.StatusOK, map[string]string{"token": "T1"})
	})

	_, err := c.Login(context.Background(), "a@b.co", "pw")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"email": "a@b.co", "password": "pw"}, got)
}

func TestLogin_ErrorStatusBecomesAPIError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
	})

	_, err := c.Login(context.Background(), "a@b.co", "bad")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid email or password", apiErr.Body.Error)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid email or password")
}

func TestVerifyToken(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"ok", http.StatusOK, nil},
		{"no content is not ok", http.StatusNoContent, ErrRejected},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"server error", http.StatusInternalServerError, ErrRejected},
		{"bad gateway", http.StatusBadGateway, ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/verify-token", r.URL.Path)
				assert.Equal(t, "T1", r.Header.Get(common.AccessTokenHeaderName))
				w.WriteHeader(tt.status)
			})

			err := c.VerifyToken(context.Background(), "T1")
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListPictures_DecodesPictures(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/pictures", r.URL.Path)
		assert.Equal(t, "T1", r.Header.Get(common.AccessTokenHeaderName))
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"pictures": []map[string]string{
				{"id": "p1", "filename": "cat.jpg", "filePath": "uploads/p1.jpg"},
			},
		})
	})

	resp, err := c.ListPictures(context.Background(), "T1")
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Len(t, resp.Pictures, 1)
	assert.Equal(t, "p1", resp.Pictures[0].ID)
	assert.Equal(t, "cat.jpg", resp.Pictures[0].Filename)
	assert.Equal(t, "uploads/p1.jpg", resp.Pictures[0].FilePath)
}

func TestUploadPicture_SendsMultipartImageField(t *testing.T) {
	payload := []byte("\x89PNG\r\n\x1a\nrest-of-image")
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/upload-picture", r.URL.Path)
		assert.Equal(t, "T1", r.Header.Get(common.AccessTokenHeaderName))

		f, hdr, err := r.FormFile("image")
		require.NoError(t, err)
		defer f.Close()
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, payload, data)
		assert.Equal(t, "cat.png", hdr.Filename)
		assert.Equal(t, "image/png", hdr.Header.Get("Content-Type"))

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Picture uploaded successfully",
			"picture": map[string]string{"id": "p1", "filename": "cat.png", "filePath": "uploads/p1.png"},
		})
	})

	resp, err := c.UploadPicture(context.Background(), "T1", "cat.png", payload)
	require.NoError(t, err)
	require.NotNil(t, resp.Picture)
	assert.Equal(t, "p1", resp.Picture.ID)
	assert.Equal(t, "Picture uploaded successfully", resp.Message)
}

func TestDeletePicture_EscapesID(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/delete-picture/a%2Fb%20c", r.URL.EscapedPath())
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Picture deleted"})
	})

	resp, err := c.DeletePicture(context.Background(), "T1", "a/b c")
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestDeletePicture_Forbidden(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "Failed to authenticate token"})
	})

	_, err := c.DeletePicture(context.Background(), "T1", "p1")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestNonJSONErrorBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "<html>oops</html>", http.StatusInternalServerError)
	})

	_, err := c.ListPictures(context.Background(), "T1")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, Response{}, apiErr.Body)
	assert.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, "http 500: Internal Server Error", err.Error())
}

func TestUndecodableSuccessBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"pictures":[{"id":{"nested":1}}]}`)
	})

	resp, err := c.ListPictures(context.Background(), "T1")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrBadResponse)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestVerifyToken_IgnoresBodyOnSuccess(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "OK")
	})

	assert.NoError(t, c.VerifyToken(context.Background(), "T1"))
}

func TestListPictures_NumericIDs(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"pictures":[{"id":42,"filename":"photo.jpg","filePath":"uploads/42.jpg"}]}`)
	})

	resp, err := c.ListPictures(context.Background(), "T1")
	require.NoError(t, err)
	require.Len(t, resp.Pictures, 1)
	assert.Equal(t, "42", resp.Pictures[0].ID)
	assert.Equal(t, "photo.jpg", resp.Pictures[0].Filename)
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, time.Second, nil)
	_, err := c.Login(context.Background(), "a@b.co", "pw")
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.ErrorIs(t, c.VerifyToken(context.Background(), "T1"), ErrUnavailable)
}

func TestEachRequestGetsFreshRequestID(t *testing.T) {
	var ids []string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, r.Header.Get(common.RequestIDHeaderName))
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.VerifyToken(context.Background(), "T1"))
	require.NoError(t, c.VerifyToken(context.Background(), "T1"))
	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestResponse_MessagePrecedence(t *testing.T) {
	assert.Equal(t, "m", Response{Message: "m", Error: "e", Details: "d"}.FirstMessage())
	assert.Equal(t, "e", Response{Error: "e", Details: "d"}.FirstMessage())
	assert.Equal(t, "d", Response{Details: "d"}.FirstMessage())
	assert.Empty(t, Response{}.FirstMessage())

	assert.Equal(t, "e", Response{Message: "m", Error: "e", Details: "d"}.Problem())
	assert.Equal(t, "d", Response{Message: "m", Details: "d"}.Problem())
}
