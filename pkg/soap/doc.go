// Package soap is the wire codec between HTTP and the protocol model: it
// turns a SOAPACTION header plus an envelope body into a normalized
// igd.Request, and an igd.Response back into HTTP response bytes.
//
// Decoding never fails. Parameters follow the wire conventions of real IGD
// clients: missing or unparseable numeric values decode to 0, a missing
// protocol decodes to "TCP", a missing enabled flag decodes to true, and
// missing strings decode to empty. An action name outside the supported
// set yields a request carrying the raw name and no body; the engine still
// logs it and offers it to wildcard mocks. The dispatch core therefore
// never sees malformed input, only normalized requests.
package soap
