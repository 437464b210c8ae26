package services

import (
	"context"
	"sync/atomic"

	"github.com/dmitrijs2005/photoalbum/internal/client/client"
)

// fakeClient implements client.Client; each call records its arguments and
// returns the preset values.
type fakeClient struct {
	calls atomic.Int32

	RegisterResp *client.Response
	RegisterErr  error
	LastRegister [3]string

	LoginResp *client.Response
	LoginErr  error
	LastLogin [2]string

	VerifyErr  error
	LastVerify string

	ListResp  *client.Response
	ListErr   error
	LastToken string

	UploadResp     *client.Response
	UploadErr      error
	LastUploadName string
	LastUploadData []byte

	DeleteResp *client.Response
	DeleteErr  error
	LastDelete string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) BaseURL() string { return "http://albums.test" }

func (f *fakeClient) Register(_ context.Context, email, password, fullName string) (*client.Response, error) {
	f.calls.Add(1)
	f.LastRegister = [3]string{email, password, fullName}
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeClient) Login(_ context.Context, email, password string) (*client.Response, error) {
	f.calls.Add(1)
	f.LastLogin = [2]string{email, password}
	return f.LoginResp, f.LoginErr
}

func (f *fakeClient) VerifyToken(_ context.Context, token string) error {
	f.calls.Add(1)
	f.LastVerify = token
	return f.VerifyErr
}

func (f *fakeClient) ListPictures(_ context.Context, token string) (*client.Response, error) {
	f.calls.Add(1)
	f.LastToken = token
	return f.ListResp, f.ListErr
}

func (f *fakeClient) UploadPicture(_ context.Context, token, filename string, data []byte) (*client.Response, error) {
	f.calls.Add(1)
	f.LastToken = token
	f.LastUploadName = filename
	f.LastUploadData = data
	return f.UploadResp, f.UploadErr
}

func (f *fakeClient) DeletePicture(_ context.Context, token, id string) (*client.Response, error) {
	f.calls.Add(1)
	f.LastToken = token
	f.LastDelete = id
	return f.DeleteResp, f.DeleteErr
}
