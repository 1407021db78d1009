package mock

import (
	"sync/atomic"

	"github.com/getmockd/igdmock/pkg/igd"
	"github.com/getmockd/igdmock/pkg/matching"
	"github.com/getmockd/igdmock/pkg/responder"
)

// Option configures a Mock at construction time.
type Option func(*Mock)

// WithPriority sets the mock's priority. Higher priorities are checked
// first; the default is 0.
func WithPriority(priority int) Option {
	return func(m *Mock) { m.priority = priority }
}

// WithMaxMatches caps how many dispatches the mock may answer. Once the cap
// is reached the mock is permanently ineligible. The default is unlimited.
func WithMaxMatches(n uint32) Option {
	return func(m *Mock) {
		m.max = n
		m.limited = true
	}
}

// Mock is one registered behavior: a matcher deciding which requests it
// answers, a responder producing the answer, a priority, and an optional
// quota with its match counter.
type Mock struct {
	matcher   matching.Matcher
	responder responder.Responder
	priority  int
	max       uint32
	limited   bool
	matched   atomic.Uint32
}

// New builds a Mock from a matcher and a responder. Both must be non-nil.
func New(m matching.Matcher, r responder.Responder, opts ...Option) *Mock {
	mk := &Mock{matcher: m, responder: r}
	for _, opt := range opts {
		opt(mk)
	}
	return mk
}

// Priority returns the mock's priority.
func (m *Mock) Priority() int { return m.priority }

// MaxMatches returns the quota and whether one is set.
func (m *Mock) MaxMatches() (uint32, bool) { return m.max, m.limited }

// Matched returns how many dispatches this mock has answered.
func (m *Mock) Matched() uint32 { return m.matched.Load() }

// Action reports the action kind the mock's matcher selects.
func (m *Mock) Action() igd.Action { return m.matcher.Action() }

// Eligible reports whether the mock may still answer: either no quota is
// set, or fewer than MaxMatches dispatches have been answered.
func (m *Mock) Eligible() bool {
	return !m.limited || m.matched.Load() < m.max
}

// TryMatch reports whether the mock is eligible and its matcher accepts
// the request. It never mutates the mock.
func (m *Mock) TryMatch(req *igd.Request) bool {
	return m.Eligible() && m.matcher.Matches(req)
}

// Answer commits the match and renders the response. The quota slot is
// claimed with a compare-and-swap at commit time, making the quota a hard
// cap: when a concurrent dispatch takes the last slot between TryMatch and
// Answer, Answer returns false without invoking the responder and the
// caller moves on to the next mock.
func (m *Mock) Answer(req *igd.Request) (igd.Response, bool) {
	if m.limited {
		for {
			n := m.matched.Load()
			if n >= m.max {
				return igd.Response{}, false
			}
			if m.matched.CompareAndSwap(n, n+1) {
				break
			}
		}
	} else {
		m.matched.Add(1)
	}
	return m.responder.Respond(req), true
}
