package cli

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/photoalbum/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHome_ShowsState(t *testing.T) {
	h := newHarness(t, "")

	require.NoError(t, h.app.Home(context.Background()))
	assert.Contains(t, h.out.String(), "Checking your session...")

	h.app.refreshSession(context.Background())
	h.out.Reset()
	require.NoError(t, h.app.Home(context.Background()))
	assert.Contains(t, h.out.String(), "You are not logged in.")
	assert.Contains(t, h.out.String(), "register")

	h.loginAs(t, "T1")
	h.out.Reset()
	require.NoError(t, h.app.Home(context.Background()))
	assert.Contains(t, h.out.String(), "You are logged in.")
	assert.NotContains(t, h.out.String(), "register")
}

func TestHome_ShowsRejectionReason(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.store.Set(context.Background(), "stale"))
	h.app.refreshSession(context.Background())

	require.NoError(t, h.app.Home(context.Background()))
	assert.Contains(t, h.out.String(), session.ReasonVerificationFailed)
}

func TestRun_ResolvesSessionAndExits(t *testing.T) {
	h := newHarness(t, "foobar\nexit\n")
	h.auth.valid["T1"] = true
	require.NoError(t, h.store.Set(context.Background(), "T1"))

	done := make(chan struct{})
	go func() {
		h.app.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return")
	}

	out := h.out.String()
	assert.Contains(t, out, "Welcome to photoalbum")
	assert.Contains(t, out, "You are logged in.")
	assert.Contains(t, out, "photoalbum (logged in)>")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "Bye!")
}

func TestWaitForSession_Timeout(t *testing.T) {
	h := newHarness(t, "")

	start := time.Now()
	s := h.app.waitForSession(context.Background(), 20*time.Millisecond)

	assert.Equal(t, session.Unknown, s.Status)
	assert.Less(t, time.Since(start), time.Second)
}
