package soap

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/getmockd/igdmock/pkg/igd"
)

// ParseSOAPAction splits a SOAPACTION header value into its service type
// and action name. The wire format is `"urn:...:WANIPConnection:1#AddPortMapping"`;
// surrounding quotes are stripped and the split is on the last '#'. A
// value with no '#' is all service type and an empty action name.
func ParseSOAPAction(header string) (serviceType, actionName string) {
	v := strings.Trim(header, "\"")
	idx := strings.LastIndex(v, "#")
	if idx < 0 {
		return v, ""
	}
	return v[:idx], v[idx+1:]
}

// DecodeRequest builds the normalized request for one control call from
// its SOAPACTION header and envelope body. It always succeeds; see the
// package comment for the default rules.
func DecodeRequest(soapAction string, body []byte) *igd.Request {
	serviceType, actionName := ParseSOAPAction(soapAction)

	req := &igd.Request{
		ActionName:  actionName,
		ServiceType: serviceType,
	}

	params := parseParams(body, actionName)
	switch igd.Action(actionName) {
	case igd.ActionAddPortMapping:
		req.Body = igd.AddPortMappingBody{
			RemoteHost:     params.text("NewRemoteHost"),
			ExternalPort:   params.uint16("NewExternalPort"),
			Protocol:       params.textOr("NewProtocol", "TCP"),
			InternalPort:   params.uint16("NewInternalPort"),
			InternalClient: params.text("NewInternalClient"),
			Enabled:        params.boolOr("NewEnabled", true),
			Description:    params.text("NewPortMappingDescription"),
			LeaseDuration:  params.uint32("NewLeaseDuration"),
		}
	case igd.ActionDeletePortMapping:
		req.Body = igd.DeletePortMappingBody{
			RemoteHost:   params.text("NewRemoteHost"),
			ExternalPort: params.uint16("NewExternalPort"),
			Protocol:     params.textOr("NewProtocol", "TCP"),
		}
	case igd.ActionGetGenericPortMappingEntry:
		req.Body = igd.GenericEntryBody{
			Index: params.uint32("NewPortMappingIndex"),
		}
	case igd.ActionGetSpecificPortMappingEntry:
		req.Body = igd.SpecificEntryBody{
			RemoteHost:   params.text("NewRemoteHost"),
			ExternalPort: params.uint16("NewExternalPort"),
			Protocol:     params.textOr("NewProtocol", "TCP"),
		}
	}
	return req
}

// params holds the parameter elements of one decoded action element.
type params map[string]string

// parseParams extracts the parameter values for the given action from the
// envelope body. A body that does not parse as XML, or that carries no
// recognizable action element, yields an empty set and every lookup falls
// back to its default.
func parseParams(body []byte, actionName string) params {
	p := params{}
	if len(body) == 0 {
		return p
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return p
	}

	el := findActionElement(doc, actionName)
	if el == nil {
		return p
	}
	for _, child := range el.ChildElements() {
		p[child.Tag] = child.Text()
	}
	return p
}

// findActionElement locates the action element inside the envelope Body,
// matching by local name so any namespace prefix works. When the Body's
// children don't carry the expected name, the first child is used, the
// same leniency real gateways show.
func findActionElement(doc *etree.Document, actionName string) *etree.Element {
	bodyEl := doc.FindElement("//*[local-name()='Body']")
	if bodyEl == nil {
		return nil
	}
	children := bodyEl.ChildElements()
	if len(children) == 0 {
		return nil
	}
	for _, child := range children {
		if child.Tag == actionName {
			return child
		}
	}
	return children[0]
}

func (p params) text(name string) string {
	return p[name]
}

func (p params) textOr(name, def string) string {
	if v, ok := p[name]; ok && v != "" {
		return v
	}
	return def
}

func (p params) uint16(name string) uint16 {
	n, err := strconv.ParseUint(p[name], 10, 16)
	if err != nil {
		return 0
	}
	return uint16(n)
}

func (p params) uint32(name string) uint32 {
	n, err := strconv.ParseUint(p[name], 10, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}

func (p params) boolOr(name string, def bool) bool {
	v, ok := p[name]
	if !ok {
		return def
	}
	return v == "1" || strings.EqualFold(v, "true")
}
