package igd

// Body is the parsed parameter record of an inbound request. Exactly one
// concrete body type exists per parameterized action; nullary and unknown
// actions carry a nil Body.
type Body interface {
	body()
}

// AddPortMappingBody holds the parameters of an AddPortMapping request.
type AddPortMappingBody struct {
	RemoteHost     string
	ExternalPort   uint16
	Protocol       string
	InternalPort   uint16
	InternalClient string
	Enabled        bool
	Description    string
	LeaseDuration  uint32
}

// DeletePortMappingBody holds the parameters of a DeletePortMapping request.
type DeletePortMappingBody struct {
	RemoteHost   string
	ExternalPort uint16
	Protocol     string
}

// GenericEntryBody holds the parameters of a GetGenericPortMappingEntry
// request.
type GenericEntryBody struct {
	Index uint32
}

// SpecificEntryBody holds the parameters of a GetSpecificPortMappingEntry
// request.
type SpecificEntryBody struct {
	RemoteHost   string
	ExternalPort uint16
	Protocol     string
}

func (AddPortMappingBody) body()    {}
func (DeletePortMappingBody) body() {}
func (GenericEntryBody) body()      {}
func (SpecificEntryBody) body()     {}

// Request is one normalized inbound control call. The codec builds it once
// per call; matchers read it and never mutate it.
type Request struct {
	// ActionName is the wire-exact action name from the SOAPACTION header,
	// preserved verbatim even when the action is not in the supported set.
	ActionName string

	// ServiceType is the service URN the caller declared in the SOAPACTION
	// header, which may differ from the action's canonical service.
	ServiceType string

	// Body is the parsed parameter record, or nil for nullary and unknown
	// actions.
	Body Body
}

// Action resolves the request's action name against the supported set,
// returning ActionUnknown for names outside it.
func (r *Request) Action() Action {
	a, _ := ParseAction(r.ActionName)
	return a
}

// Known reports whether the action name is in the supported set.
func (r *Request) Known() bool {
	_, ok := ParseAction(r.ActionName)
	return ok
}
