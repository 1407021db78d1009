package igd

// ResponseKind discriminates the three response model variants.
type ResponseKind int

const (
	// ResponsePayload is a successful SOAP response; XML carries the inner
	// body element and the codec supplies the envelope.
	ResponsePayload ResponseKind = iota

	// ResponseFault is a UPnP protocol fault with a numeric error code.
	ResponseFault

	// ResponseRaw is an opaque HTTP body sent verbatim with the given
	// content type, bypassing SOAP rendering entirely.
	ResponseRaw
)

// Response is what a mock decided to answer. It is a closed union of a
// payload, a fault, and a raw body; construct values with Payload, Fault,
// or RawBody.
type Response struct {
	Kind ResponseKind

	// XML is the inner response element for ResponsePayload.
	XML string

	// Code and Description describe a ResponseFault.
	Code        int
	Description string

	// ContentType and Data carry a ResponseRaw body.
	ContentType string
	Data        []byte
}

// Payload builds a successful SOAP response around the given inner body
// element.
func Payload(xml string) Response {
	return Response{Kind: ResponsePayload, XML: xml}
}

// Fault builds a UPnP fault response.
func Fault(code int, description string) Response {
	return Response{Kind: ResponseFault, Code: code, Description: description}
}

// RawBody builds an opaque response sent with the given content type.
func RawBody(contentType string, data []byte) Response {
	return Response{Kind: ResponseRaw, ContentType: contentType, Data: data}
}
