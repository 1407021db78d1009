package responder

import (
	"bytes"
	"fmt"
	"net/netip"
	"strconv"

	"github.com/getmockd/igdmock/pkg/igd"
)

// SuccessBuilder is a templated success responder. Its With* setters return
// updated copies, so a builder can be staged and reused; the zero value
// renders every payload with protocol defaults.
type SuccessBuilder struct {
	externalIP          *netip.Addr
	connectionStatus    *string
	lastConnectionError *string
	uptime              *uint32
	remoteHost          *string
	externalPort        *uint16
	protocol            *string
	internalPort        *uint16
	internalClient      *string
	enabled             *bool
	description         *string
	leaseDuration       *uint32
	wanAccessType       *string
	upstreamBitRate     *uint32
	downstreamBitRate   *uint32
	physicalLinkStatus  *string
	totalBytes          *uint64
}

var _ Responder = SuccessBuilder{}

// Success returns a templated success responder with no fields set.
func Success() SuccessBuilder { return SuccessBuilder{} }

// WithExternalIP sets the address for GetExternalIPAddress payloads.
func (b SuccessBuilder) WithExternalIP(ip netip.Addr) SuccessBuilder {
	b.externalIP = &ip
	return b
}

// WithConnectionStatus sets the status for GetStatusInfo payloads.
func (b SuccessBuilder) WithConnectionStatus(status string) SuccessBuilder {
	b.connectionStatus = &status
	return b
}

// WithLastConnectionError sets the error token for GetStatusInfo payloads.
func (b SuccessBuilder) WithLastConnectionError(errToken string) SuccessBuilder {
	b.lastConnectionError = &errToken
	return b
}

// WithUptime sets the uptime seconds for GetStatusInfo payloads.
func (b SuccessBuilder) WithUptime(seconds uint32) SuccessBuilder {
	b.uptime = &seconds
	return b
}

// WithRemoteHost sets the remote host for port mapping entry payloads.
func (b SuccessBuilder) WithRemoteHost(host string) SuccessBuilder {
	b.remoteHost = &host
	return b
}

// WithExternalPort sets the external port for port mapping entry payloads.
func (b SuccessBuilder) WithExternalPort(port uint16) SuccessBuilder {
	b.externalPort = &port
	return b
}

// WithProtocol sets the protocol for port mapping entry payloads.
func (b SuccessBuilder) WithProtocol(protocol string) SuccessBuilder {
	b.protocol = &protocol
	return b
}

// WithInternalPort sets the internal port for port mapping entry payloads.
func (b SuccessBuilder) WithInternalPort(port uint16) SuccessBuilder {
	b.internalPort = &port
	return b
}

// WithInternalClient sets the internal client for port mapping entry
// payloads.
func (b SuccessBuilder) WithInternalClient(client string) SuccessBuilder {
	b.internalClient = &client
	return b
}

// WithEnabled sets the enabled flag for port mapping entry payloads.
func (b SuccessBuilder) WithEnabled(enabled bool) SuccessBuilder {
	b.enabled = &enabled
	return b
}

// WithDescription sets the description for port mapping entry payloads.
func (b SuccessBuilder) WithDescription(description string) SuccessBuilder {
	b.description = &description
	return b
}

// WithLeaseDuration sets the lease seconds for port mapping entry payloads.
func (b SuccessBuilder) WithLeaseDuration(seconds uint32) SuccessBuilder {
	b.leaseDuration = &seconds
	return b
}

// WithWANAccessType sets the access type for GetCommonLinkProperties
// payloads.
func (b SuccessBuilder) WithWANAccessType(accessType string) SuccessBuilder {
	b.wanAccessType = &accessType
	return b
}

// WithUpstreamBitRate sets the upstream rate for GetCommonLinkProperties
// payloads.
func (b SuccessBuilder) WithUpstreamBitRate(rate uint32) SuccessBuilder {
	b.upstreamBitRate = &rate
	return b
}

// WithDownstreamBitRate sets the downstream rate for GetCommonLinkProperties
// payloads.
func (b SuccessBuilder) WithDownstreamBitRate(rate uint32) SuccessBuilder {
	b.downstreamBitRate = &rate
	return b
}

// WithPhysicalLinkStatus sets the link status for GetCommonLinkProperties
// payloads.
func (b SuccessBuilder) WithPhysicalLinkStatus(status string) SuccessBuilder {
	b.physicalLinkStatus = &status
	return b
}

// WithTotalBytes sets the counter for GetTotalBytesReceived and
// GetTotalBytesSent payloads.
func (b SuccessBuilder) WithTotalBytes(n uint64) SuccessBuilder {
	b.totalBytes = &n
	return b
}

// Respond implements Responder.
func (b SuccessBuilder) Respond(req *igd.Request) igd.Response {
	return igd.Payload(b.render(req.ActionName))
}

func (b SuccessBuilder) render(action string) string {
	switch igd.Action(action) {
	case igd.ActionGetExternalIPAddress:
		return b.renderExternalIP()
	case igd.ActionGetStatusInfo:
		return b.renderStatusInfo()
	case igd.ActionAddPortMapping, igd.ActionDeletePortMapping:
		return renderEmpty(action)
	case igd.ActionGetGenericPortMappingEntry, igd.ActionGetSpecificPortMappingEntry:
		return b.renderMappingEntry(action)
	case igd.ActionGetCommonLinkProperties:
		return b.renderLinkProperties()
	case igd.ActionGetTotalBytesReceived:
		return b.renderTotalBytes(action, "NewTotalBytesReceived")
	case igd.ActionGetTotalBytesSent:
		return b.renderTotalBytes(action, "NewTotalBytesSent")
	default:
		// Unrecognized names still get a well-formed empty response
		// element so the wire contract holds for forward compatibility.
		return fmt.Sprintf("<u:%[1]sResponse xmlns:u=%[2]q></u:%[1]sResponse>",
			action, igd.ServiceWANIPConnection)
	}
}

func (b SuccessBuilder) renderExternalIP() string {
	ip := ""
	if b.externalIP != nil {
		ip = b.externalIP.String()
	}
	var buf bytes.Buffer
	openElement(&buf, "GetExternalIPAddress", igd.ServiceWANIPConnection)
	writeField(&buf, "NewExternalIPAddress", ip)
	closeElement(&buf, "GetExternalIPAddress")
	return buf.String()
}

func (b SuccessBuilder) renderStatusInfo() string {
	var buf bytes.Buffer
	openElement(&buf, "GetStatusInfo", igd.ServiceWANIPConnection)
	writeField(&buf, "NewConnectionStatus", strOr(b.connectionStatus, "Connected"))
	writeField(&buf, "NewLastConnectionError", strOr(b.lastConnectionError, "ERROR_NONE"))
	writeField(&buf, "NewUptime", u32Or(b.uptime, 0))
	closeElement(&buf, "GetStatusInfo")
	return buf.String()
}

func renderEmpty(action string) string {
	var buf bytes.Buffer
	openElement(&buf, action, igd.ServiceWANIPConnection)
	closeElement(&buf, action)
	return buf.String()
}

func (b SuccessBuilder) renderMappingEntry(action string) string {
	enabled := "1"
	if b.enabled != nil && !*b.enabled {
		enabled = "0"
	}
	var buf bytes.Buffer
	openElement(&buf, action, igd.ServiceWANIPConnection)
	writeField(&buf, "NewRemoteHost", strOr(b.remoteHost, ""))
	writeField(&buf, "NewExternalPort", u16Or(b.externalPort, 0))
	writeField(&buf, "NewProtocol", strOr(b.protocol, "TCP"))
	writeField(&buf, "NewInternalPort", u16Or(b.internalPort, 0))
	writeField(&buf, "NewInternalClient", strOr(b.internalClient, ""))
	writeField(&buf, "NewEnabled", enabled)
	writeField(&buf, "NewPortMappingDescription", strOr(b.description, ""))
	writeField(&buf, "NewLeaseDuration", u32Or(b.leaseDuration, 0))
	closeElement(&buf, action)
	return buf.String()
}

func (b SuccessBuilder) renderLinkProperties() string {
	var buf bytes.Buffer
	openElement(&buf, "GetCommonLinkProperties", igd.ServiceWANCommonInterfaceConfig)
	writeField(&buf, "NewWANAccessType", strOr(b.wanAccessType, "Cable"))
	writeField(&buf, "NewLayer1UpstreamMaxBitRate", u32Or(b.upstreamBitRate, 10000000))
	writeField(&buf, "NewLayer1DownstreamMaxBitRate", u32Or(b.downstreamBitRate, 100000000))
	writeField(&buf, "NewPhysicalLinkStatus", strOr(b.physicalLinkStatus, "Up"))
	closeElement(&buf, "GetCommonLinkProperties")
	return buf.String()
}

func (b SuccessBuilder) renderTotalBytes(action, field string) string {
	n := uint64(0)
	if b.totalBytes != nil {
		n = *b.totalBytes
	}
	var buf bytes.Buffer
	openElement(&buf, action, igd.ServiceWANCommonInterfaceConfig)
	writeField(&buf, field, strconv.FormatUint(n, 10))
	closeElement(&buf, action)
	return buf.String()
}

func openElement(buf *bytes.Buffer, action, serviceType string) {
	fmt.Fprintf(buf, "<u:%sResponse xmlns:u=%q>\n", action, serviceType)
}

func closeElement(buf *bytes.Buffer, action string) {
	fmt.Fprintf(buf, "</u:%sResponse>", action)
}

func writeField(buf *bytes.Buffer, name, value string) {
	fmt.Fprintf(buf, "<%s>%s</%s>\n", name, escapeXML(value), name)
}

func strOr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

func u16Or(p *uint16, def uint16) string {
	if p != nil {
		return strconv.FormatUint(uint64(*p), 10)
	}
	return strconv.FormatUint(uint64(def), 10)
}

func u32Or(p *uint32, def uint32) string {
	if p != nil {
		return strconv.FormatUint(uint64(*p), 10)
	}
	return strconv.FormatUint(uint64(def), 10)
}
