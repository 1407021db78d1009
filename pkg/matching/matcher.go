package matching

import "github.com/getmockd/igdmock/pkg/igd"

// Matcher decides whether a mock answers a given request.
type Matcher interface {
	// Action reports the kind this matcher selects, or igd.ActionAny for
	// the wildcard.
	Action() igd.Action

	// Matches reports whether the request satisfies this matcher. It must
	// be a pure function of its inputs and safe for concurrent use.
	Matches(req *igd.Request) bool
}

// actionMatcher matches every request of exactly one kind, or everything
// when the kind is the wildcard.
type actionMatcher igd.Action

var _ Matcher = actionMatcher("")

func (m actionMatcher) Action() igd.Action { return igd.Action(m) }

func (m actionMatcher) Matches(req *igd.Request) bool {
	switch igd.Action(m) {
	case igd.ActionAny:
		return true
	case igd.ActionUnknown:
		return false
	}
	return req.Action() == igd.Action(m)
}

// Any returns the wildcard matcher. It matches every request, including
// operations outside the supported action set.
func Any() Matcher { return actionMatcher(igd.ActionAny) }

// ForAction returns a matcher for every request of exactly the given kind.
// For parameterized actions this is equivalent to an empty criteria.
// Requests for operations outside the supported set are reachable only
// through Any; ForAction(igd.ActionUnknown) matches nothing.
func ForAction(a igd.Action) Matcher { return actionMatcher(a) }

// ExternalIPAddress matches every GetExternalIPAddress request.
func ExternalIPAddress() Matcher { return actionMatcher(igd.ActionGetExternalIPAddress) }

// StatusInfo matches every GetStatusInfo request.
func StatusInfo() Matcher { return actionMatcher(igd.ActionGetStatusInfo) }

// CommonLinkProperties matches every GetCommonLinkProperties request.
func CommonLinkProperties() Matcher { return actionMatcher(igd.ActionGetCommonLinkProperties) }

// TotalBytesReceived matches every GetTotalBytesReceived request.
func TotalBytesReceived() Matcher { return actionMatcher(igd.ActionGetTotalBytesReceived) }

// TotalBytesSent matches every GetTotalBytesSent request.
func TotalBytesSent() Matcher { return actionMatcher(igd.ActionGetTotalBytesSent) }
