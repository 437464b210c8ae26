package tokenstore

import (
	"context"
	"time"

	"github.com/dmitrijs2005/photoalbum/internal/logging"
)

const DefaultPollInterval = time.Second

// Watcher polls a Store's revision and publishes a Change whenever it moves.
type Watcher struct {
	store    Store
	broker   *Broker
	interval time.Duration
	log      logging.Logger

	last   int64
	primed bool
}

func NewWatcher(store Store, broker *Broker, interval time.Duration, log logging.Logger) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Watcher{store: store, broker: broker, interval: interval, log: log}
}

// Baseline records the current revision as already seen. Writes made after
// it returns are published by Run. Call it before anything else reads the
// store and before starting Run in a goroutine; Run takes its own baseline
// otherwise.
func (w *Watcher) Baseline(ctx context.Context) {
	last, err := w.store.Revision(ctx)
	if err != nil {
		w.log.Warn(ctx, "token watcher: initial revision read failed", "error", err)
		last = -1
	}
	w.last, w.primed = last, true
}

// Run blocks until ctx is cancelled. The baseline revision is not published.
func (w *Watcher) Run(ctx context.Context) {
	if !w.primed {
		w.Baseline(ctx)
	}
	last := w.last

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			last = w.poll(ctx, last)
		}
	}
}

func (w *Watcher) poll(ctx context.Context, last int64) int64 {
	rev, err := w.store.Revision(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.log.Warn(ctx, "token watcher: revision read failed", "error", err)
		}
		return last
	}
	if rev == last {
		return last
	}

	_, present, err := w.store.Get(ctx)
	if err != nil {
		w.log.Warn(ctx, "token watcher: token read failed", "error", err)
		return last
	}

	w.log.Debug(ctx, "token slot changed", "revision", rev, "present", present)
	w.broker.Publish(Change{Present: present, Revision: rev})
	return rev
}
