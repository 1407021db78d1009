// Package matching decides which requests a mock answers.
//
// A Matcher pairs an action kind with optional per-field criteria. The
// package provides three families:
//
//   - Any: the wildcard, matching every request of every kind, including
//     operations outside the supported set.
//   - Kind-only matchers (ExternalIPAddress, StatusInfo,
//     CommonLinkProperties, TotalBytesReceived, TotalBytesSent, or the
//     generic ForAction): match every request of exactly their kind.
//   - Criteria matchers (AddPortMapping, DeletePortMapping, GenericEntry,
//     SpecificEntry): match their kind, narrowed field by field with fluent
//     With* setters. A criteria with no constraints set behaves like a
//     kind-only matcher for its kind.
//
// Criteria values use value receivers: every With* call returns an updated
// copy, so a partially-built criteria can be reused as a base without the
// derived matchers interfering with each other, and a criteria attached to
// a mock can never change afterward.
//
// Field rules: ports and the entry index compare for exact equality;
// protocols compare case-insensitively against the TCP/UDP token set;
// internal client addresses compare by canonical string form; descriptions
// match by case-sensitive substring containment. Unconstrained fields never
// reject a request.
//
// Matches is a pure function of the matcher and the request. Matchers carry
// no state and are safe for concurrent use by any number of dispatches.
package matching
