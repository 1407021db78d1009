package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/getmockd/igdmock/pkg/igd"
	"github.com/getmockd/igdmock/pkg/mock"
	"github.com/getmockd/igdmock/pkg/requestlog"
)

// Registry holds the registered mocks and the logs of everything the
// device received. It owns the selection algorithm: mocks are scanned in
// priority order, ties broken by registration order, and the first
// eligible match answers.
//
// All methods are safe for concurrent use. Dispatches run in parallel
// under a read lock; registration and clearing take the write lock, so a
// dispatch sees either the pre-change mock list or the post-change one,
// never a partial state.
type Registry struct {
	mu    sync.RWMutex
	mocks []*mock.Mock

	requests    requestlog.RequestStore
	discoveries requestlog.DiscoveryStore
	start       time.Time
}

// NewRegistry creates a Registry backed by the given log stores. Nil
// stores default to in-memory logs with the default capacity.
func NewRegistry(requests requestlog.RequestStore, discoveries requestlog.DiscoveryStore) *Registry {
	if requests == nil {
		requests = NewMemoryRequestLog(0)
	}
	if discoveries == nil {
		discoveries = NewMemoryDiscoveryLog(0)
	}
	return &Registry{
		requests:    requests,
		discoveries: discoveries,
		start:       time.Now(),
	}
}

// Register adds a mock to the registry. The registry owns the mock from
// this point on. Mocks with equal priority keep their registration order
// across any number of registrations; the mock becomes visible to
// dispatches only once registration completes.
func (r *Registry) Register(m *mock.Mock) {
	if m == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mocks = append(r.mocks, m)
	sort.SliceStable(r.mocks, func(i, j int) bool {
		return r.mocks[i].Priority() > r.mocks[j].Priority()
	})
}

// Dispatch answers one normalized request. It first appends a
// received-request record, unconditionally, then scans the mocks in
// priority order and returns the response of the first eligible mock
// whose matcher accepts the request. The second return is false when no
// mock matched; the transport layer turns that into a protocol fault.
//
// A mock whose quota is taken by a concurrent dispatch between the match
// test and the commit is skipped and the scan continues, so quotas are a
// hard cap.
func (r *Registry) Dispatch(req *igd.Request) (igd.Response, bool) {
	r.requests.Record(requestlog.Request{
		Action:      req.ActionName,
		ServiceType: req.ServiceType,
		Body:        req.Body,
		Elapsed:     time.Since(r.start),
	})

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.mocks {
		if !m.TryMatch(req) {
			continue
		}
		if resp, ok := m.Answer(req); ok {
			return resp, true
		}
	}
	return igd.Response{}, false
}

// RecordDiscovery appends one received-discovery record. The SSDP
// responder calls it for each valid search probe.
func (r *Registry) RecordDiscovery(source, searchTarget, man string, maxWait int, raw string) {
	r.discoveries.Record(requestlog.Discovery{
		Source:       source,
		SearchTarget: searchTarget,
		Man:          man,
		MaxWait:      maxWait,
		Raw:          raw,
		Elapsed:      time.Since(r.start),
	})
}

// Clear removes all registered mocks. Both logs are left untouched.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mocks = nil
}

// ClearReceivedRequests empties the received-request log. Mocks and the
// discovery log are left untouched.
func (r *Registry) ClearReceivedRequests() {
	r.requests.Clear()
}

// ClearReceivedDiscoveries empties the received-discovery log. Mocks and
// the request log are left untouched.
func (r *Registry) ClearReceivedDiscoveries() {
	r.discoveries.Clear()
}

// ReceivedRequests returns a copy of the received-request log in arrival
// order.
func (r *Registry) ReceivedRequests() []requestlog.Request {
	return r.requests.List()
}

// ReceivedDiscoveries returns a copy of the received-discovery log in
// arrival order.
func (r *Registry) ReceivedDiscoveries() []requestlog.Discovery {
	return r.discoveries.List()
}

// RequestLog returns the request store, for subscriptions.
func (r *Registry) RequestLog() requestlog.RequestStore {
	return r.requests
}

// DiscoveryLog returns the discovery store, for subscriptions.
func (r *Registry) DiscoveryLog() requestlog.DiscoveryStore {
	return r.discoveries
}

// Mocks returns the number of registered mocks.
func (r *Registry) Mocks() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.mocks)
}
