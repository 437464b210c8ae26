package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/photoalbum/internal/client/services"
	"github.com/dmitrijs2005/photoalbum/internal/client/tokenstore"
	"github.com/dmitrijs2005/photoalbum/internal/logging"
)

// Verifier checks a token with the service. services.AuthService satisfies it.
type Verifier interface {
	Verify(ctx context.Context, token string) error
}

var _ Verifier = (services.AuthService)(nil)

type Gate struct {
	store    tokenstore.Store
	verifier Verifier
	log      logging.Logger

	mu     sync.Mutex
	seq    uint64
	state  State
	nextID int
	subs   map[int]chan State
}

func NewGate(store tokenstore.Store, verifier Verifier, log logging.Logger) *Gate {
	if log == nil {
		log = logging.Nop()
	}
	return &Gate{
		store:    store,
		verifier: verifier,
		log:      log,
		subs:     make(map[int]chan State),
	}
}

// State returns the current snapshot.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Activate resolves the session from the token currently in the store and
// returns the state this activation settled on. When a newer activation
// started meanwhile, the result is discarded and the newer state is
// returned instead.
func (g *Gate) Activate(ctx context.Context) State {
	seq := g.begin()

	token, ok, err := g.store.Get(ctx)
	if err != nil {
		g.log.Warn(ctx, "session: reading token failed", "error", err)
		return g.finish(seq, State{Status: Unauthenticated})
	}
	if !ok {
		return g.finish(seq, State{Status: Unauthenticated})
	}

	if err := g.verifier.Verify(ctx, token); err != nil {
		if !g.current(seq) {
			g.log.Debug(ctx, "session: dropping stale verification failure", "seq", seq)
			return g.State()
		}
		g.log.Info(ctx, "session: token rejected", "error", err)
		// only the token that failed is removed; a newer one stays
		if _, cerr := g.store.ClearIf(ctx, token); cerr != nil {
			g.log.Warn(ctx, "session: clearing rejected token failed", "error", cerr)
		}
		return g.finish(seq, State{Status: Unauthenticated, Reason: ReasonVerificationFailed})
	}

	return g.finish(seq, State{Status: Authenticated})
}

// Run activates once and then once per change received, until ctx is done
// or changes is closed. Activations run concurrently; stale ones lose.
func (g *Gate) Run(ctx context.Context, changes <-chan tokenstore.Change) {
	var wg sync.WaitGroup
	defer wg.Wait()

	activate := func() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Activate(ctx)
		}()
	}

	activate()
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			activate()
		}
	}
}

// Subscribe streams state transitions. The channel holds only the latest
// state; cancel closes it.
func (g *Gate) Subscribe() (<-chan State, func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.nextID
	g.nextID++
	ch := make(chan State, 1)
	g.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			delete(g.subs, id)
			close(ch)
		})
	}
}

func (g *Gate) begin() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	g.setLocked(State{Status: Unknown})
	return g.seq
}

func (g *Gate) current(seq uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return seq == g.seq
}

func (g *Gate) finish(seq uint64, s State) State {
	g.mu.Lock()
	defer g.mu.Unlock()
	if seq != g.seq {
		return g.state
	}
	g.setLocked(s)
	return s
}

func (g *Gate) setLocked(s State) {
	if g.state == s {
		return
	}
	g.state = s
	for _, ch := range g.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- s:
		default:
		}
	}
}
