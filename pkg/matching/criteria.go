package matching

import (
	"net/netip"
	"strings"

	"github.com/getmockd/igdmock/pkg/igd"
)

// AddPortMappingCriteria matches AddPortMapping requests, narrowed by any
// combination of its With* constraints.
type AddPortMappingCriteria struct {
	externalPort   *uint16
	protocol       *igd.Protocol
	internalPort   *uint16
	internalClient *netip.Addr
	description    *string
}

var _ Matcher = AddPortMappingCriteria{}

// AddPortMapping returns an unconstrained AddPortMapping criteria.
func AddPortMapping() AddPortMappingCriteria { return AddPortMappingCriteria{} }

// WithExternalPort constrains the mapping's external port.
func (c AddPortMappingCriteria) WithExternalPort(port uint16) AddPortMappingCriteria {
	c.externalPort = &port
	return c
}

// WithProtocol constrains the mapping's protocol.
func (c AddPortMappingCriteria) WithProtocol(p igd.Protocol) AddPortMappingCriteria {
	c.protocol = &p
	return c
}

// WithInternalPort constrains the mapping's internal port.
func (c AddPortMappingCriteria) WithInternalPort(port uint16) AddPortMappingCriteria {
	c.internalPort = &port
	return c
}

// WithInternalClient constrains the mapping's internal client address.
func (c AddPortMappingCriteria) WithInternalClient(addr netip.Addr) AddPortMappingCriteria {
	c.internalClient = &addr
	return c
}

// WithDescription constrains the mapping description to contain the given
// substring (case-sensitive).
func (c AddPortMappingCriteria) WithDescription(substr string) AddPortMappingCriteria {
	c.description = &substr
	return c
}

// Action implements Matcher.
func (c AddPortMappingCriteria) Action() igd.Action { return igd.ActionAddPortMapping }

// Matches implements Matcher.
func (c AddPortMappingCriteria) Matches(req *igd.Request) bool {
	b, ok := req.Body.(igd.AddPortMappingBody)
	if !ok {
		return false
	}
	if c.externalPort != nil && b.ExternalPort != *c.externalPort {
		return false
	}
	if c.protocol != nil && !protocolEqual(b.Protocol, *c.protocol) {
		return false
	}
	if c.internalPort != nil && b.InternalPort != *c.internalPort {
		return false
	}
	if c.internalClient != nil && b.InternalClient != c.internalClient.String() {
		return false
	}
	if c.description != nil && !strings.Contains(b.Description, *c.description) {
		return false
	}
	return true
}

// DeletePortMappingCriteria matches DeletePortMapping requests.
type DeletePortMappingCriteria struct {
	externalPort *uint16
	protocol     *igd.Protocol
}

var _ Matcher = DeletePortMappingCriteria{}

// DeletePortMapping returns an unconstrained DeletePortMapping criteria.
func DeletePortMapping() DeletePortMappingCriteria { return DeletePortMappingCriteria{} }

// WithExternalPort constrains the mapping's external port.
func (c DeletePortMappingCriteria) WithExternalPort(port uint16) DeletePortMappingCriteria {
	c.externalPort = &port
	return c
}

// WithProtocol constrains the mapping's protocol.
func (c DeletePortMappingCriteria) WithProtocol(p igd.Protocol) DeletePortMappingCriteria {
	c.protocol = &p
	return c
}

// Action implements Matcher.
func (c DeletePortMappingCriteria) Action() igd.Action { return igd.ActionDeletePortMapping }

// Matches implements Matcher.
func (c DeletePortMappingCriteria) Matches(req *igd.Request) bool {
	b, ok := req.Body.(igd.DeletePortMappingBody)
	if !ok {
		return false
	}
	if c.externalPort != nil && b.ExternalPort != *c.externalPort {
		return false
	}
	if c.protocol != nil && !protocolEqual(b.Protocol, *c.protocol) {
		return false
	}
	return true
}

// GenericEntryCriteria matches GetGenericPortMappingEntry requests.
type GenericEntryCriteria struct {
	index *uint32
}

var _ Matcher = GenericEntryCriteria{}

// GenericEntry returns an unconstrained GetGenericPortMappingEntry criteria.
func GenericEntry() GenericEntryCriteria { return GenericEntryCriteria{} }

// WithIndex constrains the requested entry index.
func (c GenericEntryCriteria) WithIndex(index uint32) GenericEntryCriteria {
	c.index = &index
	return c
}

// Action implements Matcher.
func (c GenericEntryCriteria) Action() igd.Action { return igd.ActionGetGenericPortMappingEntry }

// Matches implements Matcher.
func (c GenericEntryCriteria) Matches(req *igd.Request) bool {
	b, ok := req.Body.(igd.GenericEntryBody)
	if !ok {
		return false
	}
	return c.index == nil || b.Index == *c.index
}

// SpecificEntryCriteria matches GetSpecificPortMappingEntry requests.
type SpecificEntryCriteria struct {
	externalPort *uint16
	protocol     *igd.Protocol
}

var _ Matcher = SpecificEntryCriteria{}

// SpecificEntry returns an unconstrained GetSpecificPortMappingEntry
// criteria.
func SpecificEntry() SpecificEntryCriteria { return SpecificEntryCriteria{} }

// WithExternalPort constrains the mapping's external port.
func (c SpecificEntryCriteria) WithExternalPort(port uint16) SpecificEntryCriteria {
	c.externalPort = &port
	return c
}

// WithProtocol constrains the mapping's protocol.
func (c SpecificEntryCriteria) WithProtocol(p igd.Protocol) SpecificEntryCriteria {
	c.protocol = &p
	return c
}

// Action implements Matcher.
func (c SpecificEntryCriteria) Action() igd.Action { return igd.ActionGetSpecificPortMappingEntry }

// Matches implements Matcher.
func (c SpecificEntryCriteria) Matches(req *igd.Request) bool {
	b, ok := req.Body.(igd.SpecificEntryBody)
	if !ok {
		return false
	}
	if c.externalPort != nil && b.ExternalPort != *c.externalPort {
		return false
	}
	if c.protocol != nil && !protocolEqual(b.Protocol, *c.protocol) {
		return false
	}
	return true
}

// protocolEqual compares a wire protocol value against a criteria token,
// case-insensitively on the wire side.
func protocolEqual(wire string, token igd.Protocol) bool {
	return strings.ToUpper(wire) == string(token)
}
