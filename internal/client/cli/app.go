package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/photoalbum/internal/client/session"
	"github.com/dmitrijs2005/photoalbum/internal/client/tokenstore"
)

type App struct {
	sess    *session.Context
	broker  *tokenstore.Broker
	watcher *tokenstore.Watcher
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(sess *session.Context, broker *tokenstore.Broker, watcher *tokenstore.Watcher, in io.Reader, out io.Writer) *App {
	return &App{
		sess:    sess,
		broker:  broker,
		watcher: watcher,
		reader:  bufio.NewReader(in),
		out:     &lockedWriter{w: out},
	}
}

// lockedWriter serializes writes from the REPL and the session reporter.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// Run blocks until the user leaves the REPL or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	changes, unsubscribe := a.broker.Subscribe()
	defer unsubscribe()

	// the baseline must precede the gate's first read of the store
	a.watcher.Baseline(ctx)
	go a.watcher.Run(ctx)
	go a.sess.Gate.Run(ctx, changes)
	go a.reportSessionChanges(ctx)

	a.Root(ctx)
}

// reportSessionChanges tells the user when a session in use is rejected on
// re-verification. Plain logouts from another client only show in the prompt.
func (a *App) reportSessionChanges(ctx context.Context) {
	states, cancel := a.sess.Gate.Subscribe()
	defer cancel()

	last := a.sess.Gate.State().Status
	for {
		select {
		case <-ctx.Done():
			return
		case s, ok := <-states:
			if !ok {
				return
			}
			if s.Reason != "" && last == session.Authenticated {
				a.println("\n" + s.Reason)
			}
			if s.Status != session.Unknown {
				last = s.Status
			}
		}
	}
}

// waitForSession blocks until the gate leaves Unknown or timeout passes.
func (a *App) waitForSession(ctx context.Context, timeout time.Duration) session.State {
	states, cancel := a.sess.Gate.Subscribe()
	defer cancel()

	if s := a.state(); s.Status != session.Unknown {
		return s
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case s, ok := <-states:
			if !ok || s.Status != session.Unknown {
				return a.state()
			}
		case <-timer.C:
			return a.state()
		case <-ctx.Done():
			return a.state()
		}
	}
}

func (a *App) state() session.State {
	return a.sess.Gate.State()
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// refreshSession re-resolves the gate right away instead of waiting for the
// watcher's next poll.
func (a *App) refreshSession(ctx context.Context) session.State {
	return a.sess.Gate.Activate(ctx)
}
