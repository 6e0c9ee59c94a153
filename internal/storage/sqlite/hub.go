package sqlite

import "sync"

// hub fans out table-change signals to active watchers. Signals are coalesced:
// a watcher that has not drained its channel still recomputes once and observes
// the newest state, never one older than its last delivery.
type hub struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]chan struct{}
}

func newHub() *hub {
	return &hub{subs: make(map[string]map[int]chan struct{})}
}

// Subscribe registers a watcher for one table.
func (h *hub) Subscribe(table string) (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	ch := make(chan struct{}, 1)
	if h.subs[table] == nil {
		h.subs[table] = make(map[int]chan struct{})
	}
	h.subs[table][id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs[table], id)
	}
	return ch, cancel
}

// Notify signals every watcher of the table without blocking.
func (h *hub) Notify(table string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs[table] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
