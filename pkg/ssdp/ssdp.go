package ssdp

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/textproto"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/net/ipv4"

	"github.com/getmockd/igdmock/internal/version"
)

const (
	// DefaultPort is the well-known SSDP port.
	DefaultPort = 1900

	// MulticastAddress is the SSDP multicast group.
	MulticastAddress = "239.255.255.250"

	deviceType = "urn:schemas-upnp-org:device:InternetGatewayDevice:1"
)

// RecordFunc receives every valid probe before it is answered. The
// source is the client's UDP address, maxWait is the MX header as an
// integer or -1 when absent or malformed, and raw is the datagram text.
type RecordFunc func(source, searchTarget, man string, maxWait int, raw string)

// Config configures a Responder.
type Config struct {
	// Port is the UDP port to listen on. 0 binds an ephemeral port,
	// which is only useful for tests probing via unicast.
	Port int

	// UDN is the device's unique device name, used in the USN response
	// header.
	UDN string

	// Location is the absolute URL of the device description document.
	Location string

	// Record is called for every valid probe. May be nil.
	Record RecordFunc

	// Logger receives operational output. May be nil.
	Logger *slog.Logger
}

// Responder answers SSDP M-SEARCH probes for an Internet Gateway Device.
type Responder struct {
	port     int
	response []byte
	record   RecordFunc
	log      *slog.Logger

	conn   *net.UDPConn
	closed atomic.Bool
	done   chan struct{}
}

// New creates a Responder. Nothing is bound until Start.
func New(cfg Config) *Responder {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Responder{
		port:     cfg.Port,
		response: renderResponse(cfg.UDN, cfg.Location),
		record:   cfg.Record,
		log:      log,
		done:     make(chan struct{}),
	}
}

// Start binds the UDP socket, joins the SSDP multicast group, and starts
// the read loop. The socket is opened with address reuse so the
// responder can share port 1900 with other SSDP participants on the
// host. A multicast join failure is logged and tolerated; unicast probes
// still reach the socket.
func (r *Responder) Start() error {
	lc := net.ListenConfig{Control: controlReuse}
	pc, err := lc.ListenPacket(context.Background(), "udp4", fmt.Sprintf("0.0.0.0:%d", r.port))
	if err != nil {
		return fmt.Errorf("failed to bind SSDP socket: %w", err)
	}
	r.conn = pc.(*net.UDPConn)

	group := &net.UDPAddr{IP: net.ParseIP(MulticastAddress)}
	if err := ipv4.NewPacketConn(r.conn).JoinGroup(nil, group); err != nil {
		r.log.Warn("SSDP multicast join failed, responding to unicast only", "error", err)
	}

	go r.readLoop()
	return nil
}

// Addr returns the bound UDP address, or nil before Start.
func (r *Responder) Addr() net.Addr {
	if r.conn == nil {
		return nil
	}
	return r.conn.LocalAddr()
}

// Close stops the responder. It does not return until the read loop has
// exited, so no probe is answered after Close.
func (r *Responder) Close() error {
	if r.conn == nil {
		return nil
	}
	if r.closed.CompareAndSwap(false, true) {
		err := r.conn.Close()
		<-r.done
		return err
	}
	<-r.done
	return nil
}

func (r *Responder) readLoop() {
	defer close(r.done)

	buf := make([]byte, 2048)
	for {
		n, src, err := r.conn.ReadFromUDP(buf)
		if err != nil {
			if r.closed.Load() {
				return
			}
			r.log.Warn("SSDP read error", "error", err)
			continue
		}

		probe, ok := ParseProbe(buf[:n])
		if !ok {
			continue
		}
		r.log.Debug("SSDP probe", "source", src.String(), "st", probe.SearchTarget)

		if r.record != nil {
			r.record(src.String(), probe.SearchTarget, probe.Man, probe.MaxWait, probe.Raw)
		}
		if _, err := r.conn.WriteToUDP(r.response, src); err != nil {
			r.log.Warn("SSDP response write failed", "source", src.String(), "error", err)
		}
	}
}

// Probe is a parsed M-SEARCH request.
type Probe struct {
	// SearchTarget is the ST header.
	SearchTarget string

	// Man is the MAN header as received, quotes included.
	Man string

	// MaxWait is the MX header as an integer, or -1 when absent or
	// malformed.
	MaxWait int

	// Raw is the full datagram text.
	Raw string
}

// ParseProbe parses a datagram as an M-SEARCH probe. It reports false
// for anything that is not an M-SEARCH, or whose search target the
// gateway has no business answering.
func ParseProbe(data []byte) (Probe, bool) {
	tp := textproto.NewReader(bufio.NewReader(bytes.NewReader(data)))

	line, err := tp.ReadLine()
	if err != nil || !strings.HasPrefix(line, "M-SEARCH ") {
		return Probe{}, false
	}
	hdr, err := tp.ReadMIMEHeader()
	if err != nil && len(hdr) == 0 {
		return Probe{}, false
	}

	st := hdr.Get("St")
	if !answerable(st) {
		return Probe{}, false
	}

	maxWait := -1
	if mx, err := strconv.Atoi(strings.TrimSpace(hdr.Get("Mx"))); err == nil {
		maxWait = mx
	}

	return Probe{
		SearchTarget: st,
		Man:          hdr.Get("Man"),
		MaxWait:      maxWait,
		Raw:          string(data),
	}, true
}

// answerable reports whether a search target addresses an Internet
// Gateway Device or one of its services.
func answerable(st string) bool {
	switch {
	case st == "ssdp:all", st == "upnp:rootdevice":
		return true
	case strings.HasPrefix(st, "urn:schemas-upnp-org:device:InternetGatewayDevice"):
		return true
	case strings.HasPrefix(st, "urn:schemas-upnp-org:service:WANIPConnection"):
		return true
	}
	return false
}

// renderResponse builds the fixed unicast answer. The gateway always
// advertises itself as the root IGD regardless of which accepted target
// the probe asked for.
func renderResponse(udn, location string) []byte {
	var b strings.Builder
	b.WriteString("HTTP/1.1 200 OK\r\n")
	b.WriteString("CACHE-CONTROL: max-age=1800\r\n")
	b.WriteString("ST: " + deviceType + "\r\n")
	b.WriteString("USN: " + udn + "::" + deviceType + "\r\n")
	b.WriteString("EXT:\r\n")
	b.WriteString("SERVER: igdmock/" + version.Version + " UPnP/1.0\r\n")
	b.WriteString("LOCATION: " + location + "\r\n")
	b.WriteString("\r\n")
	return []byte(b.String())
}
