package engine

import (
	"sync"
	"time"

	"github.com/getmockd/igdmock/internal/id"
	"github.com/getmockd/igdmock/pkg/requestlog"
)

// DefaultLogCapacity is the per-log entry cap used when none is
// configured. Once full, the oldest entries are evicted first.
const DefaultLogCapacity = 1000

// MemoryRequestLog implements requestlog.RequestStore with an in-memory
// FIFO buffer.
type MemoryRequestLog struct {
	mu          sync.RWMutex
	entries     []requestlog.Request
	maxEntries  int
	subMu       sync.RWMutex
	subscribers map[requestlog.RequestSubscriber]struct{}
}

var _ requestlog.RequestStore = (*MemoryRequestLog)(nil)

// NewMemoryRequestLog creates a request log holding up to maxEntries
// entries. Zero or negative means DefaultLogCapacity.
func NewMemoryRequestLog(maxEntries int) *MemoryRequestLog {
	if maxEntries <= 0 {
		maxEntries = DefaultLogCapacity
	}
	return &MemoryRequestLog{
		entries:     make([]requestlog.Request, 0, maxEntries),
		maxEntries:  maxEntries,
		subscribers: make(map[requestlog.RequestSubscriber]struct{}),
	}
}

// Record implements requestlog.RequestStore.
func (l *MemoryRequestLog) Record(r requestlog.Request) {
	if r.ID == "" {
		r.ID = id.New("req")
	}
	if r.ReceivedAt.IsZero() {
		r.ReceivedAt = time.Now()
	}

	l.mu.Lock()
	if len(l.entries) >= l.maxEntries {
		l.entries = l.entries[1:]
	}
	l.entries = append(l.entries, r)
	l.mu.Unlock()

	l.subMu.RLock()
	for sub := range l.subscribers {
		select {
		case sub <- r:
		default:
			// Drop if the subscriber is slow.
		}
	}
	l.subMu.RUnlock()
}

// List implements requestlog.RequestStore.
func (l *MemoryRequestLog) List() []requestlog.Request {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]requestlog.Request, len(l.entries))
	copy(out, l.entries)
	return out
}

// Clear implements requestlog.RequestStore.
func (l *MemoryRequestLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make([]requestlog.Request, 0, l.maxEntries)
}

// Count implements requestlog.RequestStore.
func (l *MemoryRequestLog) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Subscribe implements requestlog.RequestStore.
func (l *MemoryRequestLog) Subscribe() (requestlog.RequestSubscriber, func()) {
	ch := make(requestlog.RequestSubscriber, 100)

	l.subMu.Lock()
	l.subscribers[ch] = struct{}{}
	l.subMu.Unlock()

	unsubscribe := func() {
		l.subMu.Lock()
		delete(l.subscribers, ch)
		l.subMu.Unlock()
		close(ch)
	}
	return ch, unsubscribe
}

// MemoryDiscoveryLog implements requestlog.DiscoveryStore with an
// in-memory FIFO buffer.
type MemoryDiscoveryLog struct {
	mu          sync.RWMutex
	entries     []requestlog.Discovery
	maxEntries  int
	subMu       sync.RWMutex
	subscribers map[requestlog.DiscoverySubscriber]struct{}
}

var _ requestlog.DiscoveryStore = (*MemoryDiscoveryLog)(nil)

// NewMemoryDiscoveryLog creates a discovery log holding up to maxEntries
// entries. Zero or negative means DefaultLogCapacity.
func NewMemoryDiscoveryLog(maxEntries int) *MemoryDiscoveryLog {
	if maxEntries <= 0 {
		maxEntries = DefaultLogCapacity
	}
	return &MemoryDiscoveryLog{
		entries:     make([]requestlog.Discovery, 0, maxEntries),
		maxEntries:  maxEntries,
		subscribers: make(map[requestlog.DiscoverySubscriber]struct{}),
	}
}

// Record implements requestlog.DiscoveryStore.
func (l *MemoryDiscoveryLog) Record(d requestlog.Discovery) {
	if d.ID == "" {
		d.ID = id.New("dsc")
	}
	if d.ReceivedAt.IsZero() {
		d.ReceivedAt = time.Now()
	}

	l.mu.Lock()
	if len(l.entries) >= l.maxEntries {
		l.entries = l.entries[1:]
	}
	l.entries = append(l.entries, d)
	l.mu.Unlock()

	l.subMu.RLock()
	for sub := range l.subscribers {
		select {
		case sub <- d:
		default:
		}
	}
	l.subMu.RUnlock()
}

// List implements requestlog.DiscoveryStore.
func (l *MemoryDiscoveryLog) List() []requestlog.Discovery {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]requestlog.Discovery, len(l.entries))
	copy(out, l.entries)
	return out
}

// Clear implements requestlog.DiscoveryStore.
func (l *MemoryDiscoveryLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make([]requestlog.Discovery, 0, l.maxEntries)
}

// Count implements requestlog.DiscoveryStore.
func (l *MemoryDiscoveryLog) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Subscribe implements requestlog.DiscoveryStore.
func (l *MemoryDiscoveryLog) Subscribe() (requestlog.DiscoverySubscriber, func()) {
	ch := make(requestlog.DiscoverySubscriber, 100)

	l.subMu.Lock()
	l.subscribers[ch] = struct{}{}
	l.subMu.Unlock()

	unsubscribe := func() {
		l.subMu.Lock()
		delete(l.subscribers, ch)
		l.subMu.Unlock()
		close(ch)
	}
	return ch, unsubscribe
}
