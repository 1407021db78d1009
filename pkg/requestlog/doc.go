// Package requestlog provides the types and interfaces for recording what
// the mock device received, so tests can assert on it afterward.
//
// Two record kinds exist. Request captures one inbound control-protocol
// call; exactly one is appended per call, in arrival order, whether or not
// any mock answered it. Discovery captures one valid SSDP search probe.
// Records are purely observational: the matching algorithm never consults
// them.
//
// RequestStore and DiscoveryStore define the storage contract. Stores are
// append-only under concurrent writers, return copies on read, and support
// subscriptions so a test can block until a client's call or probe arrives
// instead of polling. The in-memory implementations live in pkg/engine.
//
// This is a leaf package with no internal dependencies, allowing it to be
// imported by any package without creating import cycles.
package requestlog
