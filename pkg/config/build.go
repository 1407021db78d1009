package config

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/getmockd/igdmock/pkg/igd"
	"github.com/getmockd/igdmock/pkg/matching"
	"github.com/getmockd/igdmock/pkg/mock"
	"github.com/getmockd/igdmock/pkg/responder"
)

// Build turns the mock definitions into mocks ready for registration, in
// file order. Errors carry the definition's index so a long file stays
// debuggable.
func (c *Config) Build() ([]*mock.Mock, error) {
	mocks := make([]*mock.Mock, 0, len(c.Mocks))
	for i, def := range c.Mocks {
		m, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("mocks[%d]: %w", i, err)
		}
		mocks = append(mocks, m)
	}
	return mocks, nil
}

func (d MockDef) build() (*mock.Mock, error) {
	matcher, err := d.buildMatcher()
	if err != nil {
		return nil, err
	}
	resp, err := d.buildResponder()
	if err != nil {
		return nil, err
	}

	var opts []mock.Option
	if d.Priority != 0 {
		opts = append(opts, mock.WithPriority(d.Priority))
	}
	if d.Times != 0 {
		opts = append(opts, mock.WithMaxMatches(d.Times))
	}
	return mock.New(matcher, resp, opts...), nil
}

func (d MockDef) buildMatcher() (matching.Matcher, error) {
	if strings.EqualFold(d.Action, "any") || d.Action == "*" {
		if d.Match != nil {
			return nil, fmt.Errorf("match criteria do not apply to the wildcard action")
		}
		return matching.Any(), nil
	}

	action, ok := igd.ParseAction(d.Action)
	if !ok {
		return nil, fmt.Errorf("unknown action %q", d.Action)
	}
	if d.Match == nil {
		return matching.ForAction(action), nil
	}

	switch action {
	case igd.ActionAddPortMapping:
		return d.Match.buildAddPortMapping()
	case igd.ActionDeletePortMapping:
		return d.Match.buildDeletePortMapping()
	case igd.ActionGetGenericPortMappingEntry:
		return d.Match.buildGenericEntry()
	case igd.ActionGetSpecificPortMappingEntry:
		return d.Match.buildSpecificEntry()
	default:
		return nil, fmt.Errorf("match criteria do not apply to %s", action)
	}
}

func (m MatchDef) buildAddPortMapping() (matching.Matcher, error) {
	if m.Index != nil {
		return nil, fmt.Errorf("match.index does not apply to AddPortMapping")
	}
	c := matching.AddPortMapping()
	if m.ExternalPort != nil {
		c = c.WithExternalPort(*m.ExternalPort)
	}
	if m.Protocol != "" {
		p, ok := igd.ParseProtocol(m.Protocol)
		if !ok {
			return nil, fmt.Errorf("unknown protocol %q", m.Protocol)
		}
		c = c.WithProtocol(p)
	}
	if m.InternalPort != nil {
		c = c.WithInternalPort(*m.InternalPort)
	}
	if m.InternalClient != "" {
		addr, err := netip.ParseAddr(m.InternalClient)
		if err != nil {
			return nil, fmt.Errorf("invalid internal_client %q: %w", m.InternalClient, err)
		}
		c = c.WithInternalClient(addr)
	}
	if m.Description != "" {
		c = c.WithDescription(m.Description)
	}
	return c, nil
}

func (m MatchDef) buildDeletePortMapping() (matching.Matcher, error) {
	if err := m.rejectBeyondPortProtocol("DeletePortMapping"); err != nil {
		return nil, err
	}
	c := matching.DeletePortMapping()
	if m.ExternalPort != nil {
		c = c.WithExternalPort(*m.ExternalPort)
	}
	if m.Protocol != "" {
		p, ok := igd.ParseProtocol(m.Protocol)
		if !ok {
			return nil, fmt.Errorf("unknown protocol %q", m.Protocol)
		}
		c = c.WithProtocol(p)
	}
	return c, nil
}

func (m MatchDef) buildGenericEntry() (matching.Matcher, error) {
	if m.ExternalPort != nil || m.Protocol != "" || m.InternalPort != nil ||
		m.InternalClient != "" || m.Description != "" {
		return nil, fmt.Errorf("only match.index applies to GetGenericPortMappingEntry")
	}
	c := matching.GenericEntry()
	if m.Index != nil {
		c = c.WithIndex(*m.Index)
	}
	return c, nil
}

func (m MatchDef) buildSpecificEntry() (matching.Matcher, error) {
	if err := m.rejectBeyondPortProtocol("GetSpecificPortMappingEntry"); err != nil {
		return nil, err
	}
	c := matching.SpecificEntry()
	if m.ExternalPort != nil {
		c = c.WithExternalPort(*m.ExternalPort)
	}
	if m.Protocol != "" {
		p, ok := igd.ParseProtocol(m.Protocol)
		if !ok {
			return nil, fmt.Errorf("unknown protocol %q", m.Protocol)
		}
		c = c.WithProtocol(p)
	}
	return c, nil
}

func (m MatchDef) rejectBeyondPortProtocol(action string) error {
	if m.InternalPort != nil {
		return fmt.Errorf("match.internal_port does not apply to %s", action)
	}
	if m.InternalClient != "" {
		return fmt.Errorf("match.internal_client does not apply to %s", action)
	}
	if m.Description != "" {
		return fmt.Errorf("match.description does not apply to %s", action)
	}
	if m.Index != nil {
		return fmt.Errorf("match.index does not apply to %s", action)
	}
	return nil
}

func (d MockDef) buildResponder() (responder.Responder, error) {
	if d.Respond != nil && d.Fault != nil {
		return nil, fmt.Errorf("respond and fault are mutually exclusive")
	}
	if d.Fault != nil {
		if d.Fault.Code == 0 {
			return nil, fmt.Errorf("fault.code is required")
		}
		return responder.Fault(d.Fault.Code, d.Fault.Description), nil
	}
	if d.Respond == nil {
		return responder.Success(), nil
	}
	return d.Respond.build()
}

func (r RespondDef) build() (responder.Responder, error) {
	b := responder.Success()
	if r.ExternalIP != "" {
		ip, err := netip.ParseAddr(r.ExternalIP)
		if err != nil {
			return nil, fmt.Errorf("invalid external_ip %q: %w", r.ExternalIP, err)
		}
		b = b.WithExternalIP(ip)
	}
	if r.ConnectionStatus != "" {
		b = b.WithConnectionStatus(r.ConnectionStatus)
	}
	if r.LastConnectionError != "" {
		b = b.WithLastConnectionError(r.LastConnectionError)
	}
	if r.Uptime != nil {
		b = b.WithUptime(*r.Uptime)
	}
	if r.RemoteHost != "" {
		b = b.WithRemoteHost(r.RemoteHost)
	}
	if r.ExternalPort != nil {
		b = b.WithExternalPort(*r.ExternalPort)
	}
	if r.Protocol != "" {
		p, ok := igd.ParseProtocol(r.Protocol)
		if !ok {
			return nil, fmt.Errorf("unknown protocol %q", r.Protocol)
		}
		b = b.WithProtocol(p.String())
	}
	if r.InternalPort != nil {
		b = b.WithInternalPort(*r.InternalPort)
	}
	if r.InternalClient != "" {
		b = b.WithInternalClient(r.InternalClient)
	}
	if r.Enabled != nil {
		b = b.WithEnabled(*r.Enabled)
	}
	if r.Description != "" {
		b = b.WithDescription(r.Description)
	}
	if r.LeaseDuration != nil {
		b = b.WithLeaseDuration(*r.LeaseDuration)
	}
	if r.WANAccessType != "" {
		b = b.WithWANAccessType(r.WANAccessType)
	}
	if r.UpstreamBitRate != nil {
		b = b.WithUpstreamBitRate(*r.UpstreamBitRate)
	}
	if r.DownstreamBitRate != nil {
		b = b.WithDownstreamBitRate(*r.DownstreamBitRate)
	}
	if r.PhysicalLinkStatus != "" {
		b = b.WithPhysicalLinkStatus(r.PhysicalLinkStatus)
	}
	if r.TotalBytes != nil {
		b = b.WithTotalBytes(*r.TotalBytes)
	}
	return b, nil
}
