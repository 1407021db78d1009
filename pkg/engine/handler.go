package engine

import (
	"io"
	"net/http"

	"github.com/getmockd/igdmock/pkg/device"
	"github.com/getmockd/igdmock/pkg/igd"
	"github.com/getmockd/igdmock/pkg/soap"
)

// maxControlBodySize bounds SOAP request bodies; control messages are a
// few hundred bytes in practice.
const maxControlBodySize = 1 << 20

// routes mounts the fixed IGD HTTP surface: the description documents and
// the two SOAP control endpoints.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+device.DescriptionPath, s.handleDocument(device.Description(s.identity)))
	mux.HandleFunc("GET "+device.IPConnSCPDPath, s.handleDocument(device.WANIPConnectionSCPD()))
	mux.HandleFunc("GET "+device.CommonIFCSCPDPath, s.handleDocument(device.WANCommonInterfaceConfigSCPD()))
	mux.HandleFunc("POST "+device.IPConnControlPath, s.handleControl)
	mux.HandleFunc("POST "+device.CommonIFCControlPath, s.handleControl)
	return mux
}

// handleDocument serves a fixed XML document.
func (s *Server) handleDocument(doc []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", soap.ContentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(doc)
	}
}

// handleControl decodes one SOAP control call, dispatches it against the
// registry, and encodes whatever came back. When no mock matches, the
// client sees UPnP error 401 "Invalid Action", the fault real gateways
// answer unrecognized calls with.
func (s *Server) handleControl(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxControlBodySize))
	if err != nil {
		body = nil
	}
	defer func() { _ = r.Body.Close() }()

	req := soap.DecodeRequest(r.Header.Get("SOAPAction"), body)

	resp, ok := s.registry.Dispatch(req)
	if !ok {
		s.log.Debug("no mock matched", "action", req.ActionName)
		resp = igd.Fault(igd.ErrCodeInvalidAction, "Invalid Action")
	}

	contentType, payload, status := soap.EncodeResponse(resp)
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}
