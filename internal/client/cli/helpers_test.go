package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/photoalbum/internal/client/models"
	"github.com/dmitrijs2005/photoalbum/internal/client/services"
	"github.com/dmitrijs2005/photoalbum/internal/client/session"
	"github.com/dmitrijs2005/photoalbum/internal/client/tokenstore"
	"github.com/dmitrijs2005/photoalbum/internal/logging"
)

type fakeAuth struct {
	mu sync.Mutex

	regArgs  [3]string
	regToken string
	regErr   error

	loginArgs  [2]string
	loginToken string
	loginErr   error

	valid       map[string]bool
	verifyCalls int
}

func (f *fakeAuth) Register(_ context.Context, fullName, email, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.regArgs = [3]string{fullName, email, password}
	return f.regToken, f.regErr
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginArgs = [2]string{email, password}
	return f.loginToken, f.loginErr
}

func (f *fakeAuth) Verify(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verifyCalls++
	if f.valid[token] {
		return nil
	}
	return &services.Error{Kind: services.ErrRejected}
}

type fakePictures struct {
	listed  []models.Picture
	listErr error
	lists   int

	uploadName string
	uploadData []byte
	uploadErr  error

	deleted   string
	deleteErr error
}

func (f *fakePictures) List(context.Context) ([]models.Picture, error) {
	f.lists++
	return f.listed, f.listErr
}

func (f *fakePictures) Upload(_ context.Context, data []byte, filename string) (models.Picture, error) {
	f.uploadName, f.uploadData = filename, data
	if f.uploadErr != nil {
		return models.Picture{}, f.uploadErr
	}
	return models.Picture{ID: "new", Filename: filename}, nil
}

func (f *fakePictures) Delete(_ context.Context, id string) error {
	f.deleted = id
	return f.deleteErr
}

func (f *fakePictures) URL(p models.Picture) string {
	return "http://albums.test/" + p.FilePath
}

type harness struct {
	app   *App
	out   *bytes.Buffer
	store *tokenstore.MemoryStore
	auth  *fakeAuth
	pics  *fakePictures
}

// newHarness builds an App over in-memory fakes. input feeds every prompt.
func newHarness(t *testing.T, input string) *harness {
	t.Helper()

	origTerm := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = origTerm })

	store := tokenstore.NewMemoryStore()
	auth := &fakeAuth{valid: map[string]bool{}}
	pics := &fakePictures{}
	gate := session.NewGate(store, auth, nil)
	out := &bytes.Buffer{}

	sess := &session.Context{
		Store:    store,
		Gate:     gate,
		Auth:     auth,
		Pictures: pics,
		Logger:   logging.Nop(),
	}
	broker := tokenstore.NewBroker()
	app := NewApp(sess, broker, tokenstore.NewWatcher(store, broker, 10*time.Millisecond, nil), strings.NewReader(input), out)

	return &harness{app: app, out: out, store: store, auth: auth, pics: pics}
}

// loginAs stores token, marks it valid and resolves the gate.
func (h *harness) loginAs(t *testing.T, token string) {
	t.Helper()
	h.auth.valid[token] = true
	if err := h.store.Set(context.Background(), token); err != nil {
		t.Fatal(err)
	}
	h.app.refreshSession(context.Background())
}

func (h *harness) setInput(s string) {
	h.app.reader = bufio.NewReader(strings.NewReader(s))
}

func (h *harness) token(t *testing.T) (string, bool) {
	t.Helper()
	tok, ok, err := h.store.Get(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return tok, ok
}
