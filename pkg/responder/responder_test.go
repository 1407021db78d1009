package responder

import (
	"net/netip"
	"strings"
	"testing"

	"github.com/getmockd/igdmock/pkg/igd"
)

func request(action string) *igd.Request {
	a, _ := igd.ParseAction(action)
	return &igd.Request{ActionName: action, ServiceType: a.ServiceType()}
}

func payload(t *testing.T, r Responder, action string) string {
	t.Helper()
	resp := r.Respond(request(action))
	if resp.Kind != igd.ResponsePayload {
		t.Fatalf("Respond kind = %v, want payload", resp.Kind)
	}
	return resp.XML
}

func TestSuccessExternalIP(t *testing.T) {
	xml := payload(t, Success().WithExternalIP(netip.MustParseAddr("203.0.113.1")), "GetExternalIPAddress")

	want := "<u:GetExternalIPAddressResponse xmlns:u=\"urn:schemas-upnp-org:service:WANIPConnection:1\">\n" +
		"<NewExternalIPAddress>203.0.113.1</NewExternalIPAddress>\n" +
		"</u:GetExternalIPAddressResponse>"
	if xml != want {
		t.Errorf("rendered payload mismatch:\ngot:  %q\nwant: %q", xml, want)
	}
}

func TestSuccessExternalIPDefaultsEmpty(t *testing.T) {
	xml := payload(t, Success(), "GetExternalIPAddress")
	if !strings.Contains(xml, "<NewExternalIPAddress></NewExternalIPAddress>") {
		t.Errorf("default external IP not empty: %q", xml)
	}
}

func TestSuccessStatusInfoDefaults(t *testing.T) {
	xml := payload(t, Success(), "GetStatusInfo")
	for _, want := range []string{
		"<u:GetStatusInfoResponse xmlns:u=\"urn:schemas-upnp-org:service:WANIPConnection:1\">",
		"<NewConnectionStatus>Connected</NewConnectionStatus>",
		"<NewLastConnectionError>ERROR_NONE</NewLastConnectionError>",
		"<NewUptime>0</NewUptime>",
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("status payload missing %q:\n%s", want, xml)
		}
	}
}

func TestSuccessStatusInfoFields(t *testing.T) {
	r := Success().WithConnectionStatus("Disconnected").WithLastConnectionError("ERROR_ISP_DISCONNECT").WithUptime(4242)
	xml := payload(t, r, "GetStatusInfo")
	for _, want := range []string{
		"<NewConnectionStatus>Disconnected</NewConnectionStatus>",
		"<NewLastConnectionError>ERROR_ISP_DISCONNECT</NewLastConnectionError>",
		"<NewUptime>4242</NewUptime>",
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("status payload missing %q:\n%s", want, xml)
		}
	}
}

func TestSuccessEmptyBodies(t *testing.T) {
	for _, action := range []string{"AddPortMapping", "DeletePortMapping"} {
		xml := payload(t, Success(), action)
		want := "<u:" + action + "Response xmlns:u=\"urn:schemas-upnp-org:service:WANIPConnection:1\">\n</u:" + action + "Response>"
		if xml != want {
			t.Errorf("%s payload = %q, want %q", action, xml, want)
		}
	}
}

func TestSuccessMappingEntryDefaults(t *testing.T) {
	xml := payload(t, Success(), "GetGenericPortMappingEntry")
	for _, want := range []string{
		"<u:GetGenericPortMappingEntryResponse xmlns:u=\"urn:schemas-upnp-org:service:WANIPConnection:1\">",
		"<NewRemoteHost></NewRemoteHost>",
		"<NewExternalPort>0</NewExternalPort>",
		"<NewProtocol>TCP</NewProtocol>",
		"<NewInternalPort>0</NewInternalPort>",
		"<NewInternalClient></NewInternalClient>",
		"<NewEnabled>1</NewEnabled>",
		"<NewPortMappingDescription></NewPortMappingDescription>",
		"<NewLeaseDuration>0</NewLeaseDuration>",
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("entry payload missing %q:\n%s", want, xml)
		}
	}
}

func TestSuccessMappingEntryFields(t *testing.T) {
	r := Success().
		WithRemoteHost("198.51.100.7").
		WithExternalPort(8080).
		WithProtocol("UDP").
		WithInternalPort(9090).
		WithInternalClient("192.168.1.23").
		WithEnabled(false).
		WithDescription("game server").
		WithLeaseDuration(600)
	xml := payload(t, r, "GetSpecificPortMappingEntry")

	if !strings.HasPrefix(xml, "<u:GetSpecificPortMappingEntryResponse") {
		t.Errorf("specific entry rendered with wrong element name:\n%s", xml)
	}
	for _, want := range []string{
		"<NewRemoteHost>198.51.100.7</NewRemoteHost>",
		"<NewExternalPort>8080</NewExternalPort>",
		"<NewProtocol>UDP</NewProtocol>",
		"<NewInternalPort>9090</NewInternalPort>",
		"<NewInternalClient>192.168.1.23</NewInternalClient>",
		"<NewEnabled>0</NewEnabled>",
		"<NewPortMappingDescription>game server</NewPortMappingDescription>",
		"<NewLeaseDuration>600</NewLeaseDuration>",
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("entry payload missing %q:\n%s", want, xml)
		}
	}
}

func TestSuccessLinkPropertiesDefaults(t *testing.T) {
	xml := payload(t, Success(), "GetCommonLinkProperties")
	for _, want := range []string{
		"<u:GetCommonLinkPropertiesResponse xmlns:u=\"urn:schemas-upnp-org:service:WANCommonInterfaceConfig:1\">",
		"<NewWANAccessType>Cable</NewWANAccessType>",
		"<NewLayer1UpstreamMaxBitRate>10000000</NewLayer1UpstreamMaxBitRate>",
		"<NewLayer1DownstreamMaxBitRate>100000000</NewLayer1DownstreamMaxBitRate>",
		"<NewPhysicalLinkStatus>Up</NewPhysicalLinkStatus>",
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("link payload missing %q:\n%s", want, xml)
		}
	}
}

func TestSuccessTotalBytes(t *testing.T) {
	recv := payload(t, Success().WithTotalBytes(123456789), "GetTotalBytesReceived")
	if !strings.Contains(recv, "<NewTotalBytesReceived>123456789</NewTotalBytesReceived>") {
		t.Errorf("bytes received payload wrong:\n%s", recv)
	}
	if !strings.Contains(recv, "WANCommonInterfaceConfig:1") {
		t.Errorf("bytes received payload in wrong namespace:\n%s", recv)
	}

	sent := payload(t, Success(), "GetTotalBytesSent")
	if !strings.Contains(sent, "<NewTotalBytesSent>0</NewTotalBytesSent>") {
		t.Errorf("bytes sent default wrong:\n%s", sent)
	}
}

func TestSuccessUnknownAction(t *testing.T) {
	xml := payload(t, Success(), "RequestTermination")
	want := "<u:RequestTerminationResponse xmlns:u=\"urn:schemas-upnp-org:service:WANIPConnection:1\"></u:RequestTerminationResponse>"
	if xml != want {
		t.Errorf("unknown action payload = %q, want %q", xml, want)
	}
}

func TestSuccessEscapesValues(t *testing.T) {
	xml := payload(t, Success().WithDescription(`a <b> & "c"`), "GetGenericPortMappingEntry")
	if !strings.Contains(xml, "<NewPortMappingDescription>a &lt;b&gt; &amp; &quot;c&quot;</NewPortMappingDescription>") {
		t.Errorf("description not escaped:\n%s", xml)
	}
}

func TestSuccessBuilderCopies(t *testing.T) {
	base := Success().WithProtocol("UDP")
	a := base.WithExternalPort(80)
	_ = base.WithExternalPort(81)

	xml := payload(t, a, "GetGenericPortMappingEntry")
	if !strings.Contains(xml, "<NewExternalPort>80</NewExternalPort>") {
		t.Errorf("derived builder lost its port:\n%s", xml)
	}
	baseXML := payload(t, base, "GetGenericPortMappingEntry")
	if !strings.Contains(baseXML, "<NewExternalPort>0</NewExternalPort>") {
		t.Errorf("base builder gained a port:\n%s", baseXML)
	}
}

func TestFaultResponder(t *testing.T) {
	r := Fault(igd.ErrCodeConflictInMappingEntry, "ConflictInMappingEntry")
	for _, action := range []string{"AddPortMapping", "GetExternalIPAddress", "Whatever"} {
		resp := r.Respond(request(action))
		if resp.Kind != igd.ResponseFault {
			t.Fatalf("Respond(%s) kind = %v, want fault", action, resp.Kind)
		}
		if resp.Code != 718 || resp.Description != "ConflictInMappingEntry" {
			t.Errorf("Respond(%s) = (%d, %q)", action, resp.Code, resp.Description)
		}
	}
}

func TestFuncResponder(t *testing.T) {
	r := Func(func(req *igd.Request) igd.Response {
		if req.ActionName == "GetExternalIPAddress" {
			return igd.RawBody("text/plain", []byte("raw"))
		}
		return igd.Fault(igd.ErrCodeActionFailed, "ActionFailed")
	})

	raw := r.Respond(request("GetExternalIPAddress"))
	if raw.Kind != igd.ResponseRaw || string(raw.Data) != "raw" || raw.ContentType != "text/plain" {
		t.Errorf("custom raw response wrong: %+v", raw)
	}
	fault := r.Respond(request("AddPortMapping"))
	if fault.Kind != igd.ResponseFault || fault.Code != 501 {
		t.Errorf("custom fault response wrong: %+v", fault)
	}
}
