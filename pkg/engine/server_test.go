package engine

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/getmockd/igdmock/pkg/device"
	"github.com/getmockd/igdmock/pkg/matching"
	"github.com/getmockd/igdmock/pkg/responder"
)

func startServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	s := NewServer(opts...)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Stop(ctx)
	})
	return s
}

func TestServerLifecycle(t *testing.T) {
	s := startServer(t)

	if s.HTTPAddr() == nil {
		t.Fatal("no HTTP address after Start")
	}
	if !strings.HasPrefix(s.URL(), "http://127.0.0.1:") {
		t.Errorf("URL = %q", s.URL())
	}
	if s.ControlURL() != s.URL()+device.IPConnControlPath {
		t.Errorf("ControlURL = %q", s.ControlURL())
	}
	if s.DescriptionURL() != s.URL()+device.DescriptionPath {
		t.Errorf("DescriptionURL = %q", s.DescriptionURL())
	}
	// SSDP is off by default.
	if s.SSDPAddr() != nil {
		t.Errorf("SSDPAddr = %v", s.SSDPAddr())
	}

	resp, err := http.Get(s.DescriptionURL())
	if err != nil {
		t.Fatalf("GET description: %v", err)
	}
	data, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(data), "InternetGatewayDevice") {
		t.Errorf("description fetch: status %d", resp.StatusCode)
	}
}

func TestServerDoubleStart(t *testing.T) {
	s := startServer(t)
	if err := s.Start(context.Background()); err == nil {
		t.Error("second Start should fail")
	}
}

func TestServerStopIdempotent(t *testing.T) {
	s := NewServer()
	if err := s.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := s.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := s.Stop(ctx); err != nil {
		t.Errorf("second Stop: %v", err)
	}
}

func TestServerIdentityOption(t *testing.T) {
	s := startServer(t, WithIdentity(device.Identity{FriendlyName: "Custom GW", UDN: "uuid:custom"}))

	resp, err := http.Get(s.DescriptionURL())
	if err != nil {
		t.Fatal(err)
	}
	data, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(data), "Custom GW") || !strings.Contains(string(data), "uuid:custom") {
		t.Errorf("identity not applied: %s", data)
	}
}

func TestServerWithSSDPEphemeralPort(t *testing.T) {
	s := startServer(t, WithSSDP(true), WithSSDPPort(0))
	if s.SSDPAddr() == nil {
		t.Fatal("SSDP enabled but no address")
	}
}

func TestServerSugar(t *testing.T) {
	s := NewServer()
	s.Mock(matching.Any(), responder.Success())
	s.MockWithPriority(matching.ExternalIPAddress(), responder.Fault(501, "ActionFailed"), 5)
	s.MockWithTimes(matching.StatusInfo(), responder.Success(), 2)

	if s.Registry().Mocks() != 3 {
		t.Errorf("mocks = %d", s.Registry().Mocks())
	}

	s.ClearMocks()
	if s.Registry().Mocks() != 0 {
		t.Errorf("mocks after clear = %d", s.Registry().Mocks())
	}
}

func TestServerLogCapacityOption(t *testing.T) {
	s := NewServer(WithLogCapacity(2))
	for i := 0; i < 5; i++ {
		s.Registry().Dispatch(extIPRequest())
	}
	if got := len(s.ReceivedRequests()); got != 2 {
		t.Errorf("log entries = %d, want 2", got)
	}
}
