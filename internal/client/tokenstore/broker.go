package tokenstore

import "sync"

// Broker fans Change notifications out to subscribers. Publish never blocks:
// each subscriber has a one-slot buffer that always holds the latest change.
type Broker struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Change
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[int]chan Change)}
}

// Subscribe registers a new subscriber. cancel unregisters it and closes the
// channel; calling cancel more than once is safe.
func (b *Broker) Subscribe() (<-chan Change, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Change, 1)
	b.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (b *Broker) Publish(c Change) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		// drop the stale pending change, if any, then deliver
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- c:
		default:
		}
	}
}
