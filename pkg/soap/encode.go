package soap

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/getmockd/igdmock/pkg/igd"
)

// ContentType is the media type every SOAP exchange and description
// document uses on the wire.
const ContentType = `text/xml; charset="utf-8"`

// Namespace is the SOAP 1.1 envelope namespace; control is the UPnP
// error namespace used inside fault details.
const (
	envelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"
	encodingStyle     = "http://schemas.xmlsoap.org/soap/encoding/"
	controlNamespace  = "urn:schemas-upnp-org:control-1-0"
)

const (
	envelopeStart = `<?xml version="1.0"?>` + "\n" +
		`<s:Envelope xmlns:s="` + envelopeNamespace + `" s:encodingStyle="` + encodingStyle + `">` + "\n" +
		`<s:Body>` + "\n"
	envelopeEnd = "\n</s:Body>\n</s:Envelope>"
)

// EncodeResponse turns a response model value into its HTTP rendering.
// Payloads wrap in the standard envelope with status 200; faults render
// the UPnPError fault envelope with status 500, the pairing UPnP
// prescribes; raw responses pass through verbatim with status 200.
func EncodeResponse(resp igd.Response) (contentType string, body []byte, status int) {
	switch resp.Kind {
	case igd.ResponseFault:
		return ContentType, FaultEnvelope(resp.Code, resp.Description), http.StatusInternalServerError
	case igd.ResponseRaw:
		return resp.ContentType, resp.Data, http.StatusOK
	default:
		return ContentType, Envelope(resp.XML), http.StatusOK
	}
}

// Envelope wraps an inner body element in the SOAP envelope.
func Envelope(inner string) []byte {
	var buf bytes.Buffer
	buf.WriteString(envelopeStart)
	buf.WriteString(inner)
	buf.WriteString(envelopeEnd)
	return buf.Bytes()
}

// FaultEnvelope renders the UPnP fault envelope for the given error code
// and description: faultcode s:Client, faultstring UPnPError, and the
// code/description pair inside a UPnPError detail element.
func FaultEnvelope(code int, description string) []byte {
	var buf bytes.Buffer
	buf.WriteString(envelopeStart)
	buf.WriteString("<s:Fault>\n")
	buf.WriteString("<faultcode>s:Client</faultcode>\n")
	buf.WriteString("<faultstring>UPnPError</faultstring>\n")
	buf.WriteString("<detail>\n")
	buf.WriteString(`<UPnPError xmlns="` + controlNamespace + `">` + "\n")
	buf.WriteString("<errorCode>" + strconv.Itoa(code) + "</errorCode>\n")
	buf.WriteString("<errorDescription>" + escapeXML(description) + "</errorDescription>\n")
	buf.WriteString("</UPnPError>\n")
	buf.WriteString("</detail>\n")
	buf.WriteString("</s:Fault>")
	buf.WriteString(envelopeEnd)
	return buf.Bytes()
}

// escapeXML escapes the five XML special characters in interpolated values.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
