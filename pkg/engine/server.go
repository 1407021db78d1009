package engine

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/getmockd/igdmock/pkg/device"
	"github.com/getmockd/igdmock/pkg/logging"
	"github.com/getmockd/igdmock/pkg/matching"
	"github.com/getmockd/igdmock/pkg/mock"
	"github.com/getmockd/igdmock/pkg/requestlog"
	"github.com/getmockd/igdmock/pkg/responder"
	"github.com/getmockd/igdmock/pkg/ssdp"
)

// Server is one mock IGD instance: a Registry plus its HTTP control
// surface and optional SSDP discovery responder. Instances are fully
// independent; any number can run in one process.
type Server struct {
	bind        string
	httpPort    int
	ssdpEnabled bool
	ssdpPort    int
	identity    device.Identity
	log         *slog.Logger
	logCapacity int

	registry   *Registry
	httpServer *http.Server
	listener   net.Listener
	discovery  *ssdp.Responder

	mu      sync.Mutex
	running bool
}

// Option configures a Server at construction time.
type Option func(*Server)

// WithHTTPPort sets the HTTP listen port. The default 0 binds an
// ephemeral port.
func WithHTTPPort(port int) Option {
	return func(s *Server) { s.httpPort = port }
}

// WithBindAddress sets the address the HTTP listener binds to. The
// default is 127.0.0.1.
func WithBindAddress(addr string) Option {
	return func(s *Server) { s.bind = addr }
}

// WithSSDP enables or disables the SSDP discovery responder. Disabled by
// default.
func WithSSDP(enabled bool) Option {
	return func(s *Server) { s.ssdpEnabled = enabled }
}

// WithSSDPPort sets the SSDP listen port. The default is 1900, the
// protocol's well-known port; 0 binds an ephemeral port.
func WithSSDPPort(port int) Option {
	return func(s *Server) { s.ssdpPort = port }
}

// WithIdentity sets the device identity used in the description documents
// and discovery responses. Unset fields keep their defaults.
func WithIdentity(id device.Identity) Option {
	return func(s *Server) { s.identity = id }
}

// WithLogger sets the operational logger. The default discards all
// output.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithLogCapacity caps both received logs at n entries each, oldest
// evicted first. The default is DefaultLogCapacity.
func WithLogCapacity(n int) Option {
	return func(s *Server) { s.logCapacity = n }
}

// NewServer creates a Server. It does not bind anything until Start.
func NewServer(opts ...Option) *Server {
	s := &Server{
		bind:     "127.0.0.1",
		ssdpPort: ssdp.DefaultPort,
		log:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.identity = s.identity.WithDefaults()
	s.registry = NewRegistry(
		NewMemoryRequestLog(s.logCapacity),
		NewMemoryDiscoveryLog(s.logCapacity),
	)
	return s
}

// Start binds the HTTP listener, mounts the device routes, starts the
// SSDP responder when enabled, and begins serving in the background. An
// SSDP bind failure is logged as a warning and leaves the HTTP side
// running; an HTTP bind failure fails the whole start.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("server is already running")
	}

	lc := net.ListenConfig{}
	listener, err := lc.Listen(ctx, "tcp", fmt.Sprintf("%s:%d", s.bind, s.httpPort))
	if err != nil {
		return fmt.Errorf("failed to bind HTTP listener: %w", err)
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler:      s.routes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.log.Info("starting HTTP server", "addr", listener.Addr().String())
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("HTTP server error", "error", err)
		}
	}()

	if s.ssdpEnabled {
		s.discovery = ssdp.New(ssdp.Config{
			Port:     s.ssdpPort,
			UDN:      s.identity.UDN,
			Location: fmt.Sprintf("http://%s%s", listener.Addr().String(), device.DescriptionPath),
			Record:   s.registry.RecordDiscovery,
			Logger:   s.log,
		})
		if err := s.discovery.Start(); err != nil {
			s.log.Warn("SSDP responder failed to start, discovery disabled", "error", err)
			s.discovery = nil
		} else {
			s.log.Info("SSDP responder started", "addr", s.discovery.Addr().String())
		}
	}

	s.running = true
	return nil
}

// Stop gracefully shuts down the HTTP server and the SSDP responder. In-
// flight requests are given until the context's deadline to complete.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	var errs []error
	if s.discovery != nil {
		if err := s.discovery.Close(); err != nil {
			errs = append(errs, fmt.Errorf("SSDP shutdown: %w", err))
		}
		s.discovery = nil
	}
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("HTTP shutdown: %w", err))
		}
	}

	s.running = false
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// Registry returns the server's mock registry.
func (s *Server) Registry() *Registry { return s.registry }

// HTTPAddr returns the bound HTTP address, or nil before Start.
func (s *Server) HTTPAddr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// SSDPAddr returns the bound SSDP address, or nil when discovery is
// disabled or failed to start.
func (s *Server) SSDPAddr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.discovery == nil {
		return nil
	}
	return s.discovery.Addr()
}

// URL returns the base URL of the HTTP server.
func (s *Server) URL() string {
	addr := s.HTTPAddr()
	if addr == nil {
		return ""
	}
	return "http://" + addr.String()
}

// ControlURL returns the WANIPConnection control URL, the endpoint most
// IGD clients send port-mapping actions to.
func (s *Server) ControlURL() string {
	return s.URL() + device.IPConnControlPath
}

// DescriptionURL returns the device description URL.
func (s *Server) DescriptionURL() string {
	return s.URL() + device.DescriptionPath
}

// Mock registers a mock with default priority and no quota.
func (s *Server) Mock(m matching.Matcher, r responder.Responder) {
	s.registry.Register(mock.New(m, r))
}

// MockWithPriority registers a mock with the given priority. Higher
// priorities are checked first.
func (s *Server) MockWithPriority(m matching.Matcher, r responder.Responder, priority int) {
	s.registry.Register(mock.New(m, r, mock.WithPriority(priority)))
}

// MockWithTimes registers a mock that answers at most n dispatches.
func (s *Server) MockWithTimes(m matching.Matcher, r responder.Responder, n uint32) {
	s.registry.Register(mock.New(m, r, mock.WithMaxMatches(n)))
}

// ClearMocks removes all registered mocks, leaving both logs untouched.
func (s *Server) ClearMocks() { s.registry.Clear() }

// ReceivedRequests returns the received-request log in arrival order.
func (s *Server) ReceivedRequests() []requestlog.Request {
	return s.registry.ReceivedRequests()
}

// ClearReceivedRequests empties the received-request log.
func (s *Server) ClearReceivedRequests() { s.registry.ClearReceivedRequests() }

// ReceivedDiscoveries returns the received-discovery log in arrival
// order.
func (s *Server) ReceivedDiscoveries() []requestlog.Discovery {
	return s.registry.ReceivedDiscoveries()
}

// ClearReceivedDiscoveries empties the received-discovery log.
func (s *Server) ClearReceivedDiscoveries() { s.registry.ClearReceivedDiscoveries() }
