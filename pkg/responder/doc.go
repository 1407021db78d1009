// Package responder builds the response behaviors mocks answer with.
//
// Three behaviors cover everything a test needs:
//
//   - Success() starts a templated success response. Fluent With* setters
//     fill any of the fields a supported action's payload can carry; fields
//     left unset render with their protocol-defined defaults. The template
//     renders the payload that fits the incoming request's action, so one
//     success responder attached to a wildcard mock answers every action
//     sensibly. Action names outside the supported set render an empty,
//     well-formed response element.
//   - Fault(code, description) always answers with the same UPnP fault,
//     regardless of the request.
//   - Func(fn) delegates entirely to the supplied function for behaviors
//     the template cannot express (draining quotas, request-dependent
//     payloads, raw bodies). The function must be safe for concurrent
//     calls.
//
// Responders are immutable values, carry no per-call state, and may be
// shared by any number of mocks. Counting happens in the mock, not here.
package responder
