package responder

import "github.com/getmockd/igdmock/pkg/igd"

// Responder produces the response a matched mock answers with.
type Responder interface {
	// Respond renders the response for the given request. Implementations
	// are stateless and safe for concurrent use.
	Respond(req *igd.Request) igd.Response
}

// Func adapts a plain function into a Responder.
type Func func(req *igd.Request) igd.Response

var _ Responder = Func(nil)

// Respond implements Responder.
func (f Func) Respond(req *igd.Request) igd.Response { return f(req) }

// faultResponder answers every request with the same UPnP fault.
type faultResponder struct {
	code        int
	description string
}

var _ Responder = faultResponder{}

// Fault returns a responder that always answers with the given UPnP error
// code and description.
func Fault(code int, description string) Responder {
	return faultResponder{code: code, description: description}
}

// Respond implements Responder.
func (f faultResponder) Respond(*igd.Request) igd.Response {
	return igd.Fault(f.code, f.description)
}
