// Package engine provides the core mock device engine: the registry that
// selects which mock answers an incoming request, the in-memory logs of
// received requests and discovery probes, and the server that ties the
// registry to its HTTP and SSDP transports.
//
// Registry is the heart of the package. It holds mocks in priority order
// (ties broken by registration order) and dispatches each normalized
// request against them: the request is logged first, unconditionally, then
// the first eligible mock whose matcher accepts it answers. Dispatch is
// safe under true parallel execution; see Registry.Dispatch for the exact
// contract.
//
// Server wraps a Registry with the wire surface of a UPnP Internet Gateway
// Device: the description documents, the SOAP control endpoints, and an
// optional SSDP discovery responder. Multiple Server instances in one
// process are fully independent.
package engine
