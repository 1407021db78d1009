package requestlog

import "time"

// Request captures one received control-protocol call.
type Request struct {
	// ID is a unique identifier for the log entry.
	ID string `json:"id"`

	// Action is the wire-exact action name, preserved even for operations
	// outside the supported set.
	Action string `json:"action"`

	// ServiceType is the service URN the caller declared in the SOAPACTION
	// header.
	ServiceType string `json:"serviceType"`

	// Body is the parsed parameter record the matcher saw, or nil for
	// nullary and unknown actions.
	Body any `json:"body,omitempty"`

	// Elapsed is how long after server start the call arrived.
	Elapsed time.Duration `json:"elapsed"`

	// ReceivedAt is the wall-clock arrival time.
	ReceivedAt time.Time `json:"receivedAt"`
}

// Discovery captures one valid SSDP search probe.
type Discovery struct {
	// ID is a unique identifier for the log entry.
	ID string `json:"id"`

	// Source is the probe's source address.
	Source string `json:"source"`

	// SearchTarget is the probe's ST header value.
	SearchTarget string `json:"searchTarget"`

	// Man is the probe's MAN header value as received, usually
	// `"ssdp:discover"`.
	Man string `json:"man,omitempty"`

	// MaxWait is the probe's MX header value in seconds, or -1 when absent
	// or not a number.
	MaxWait int `json:"maxWait"`

	// Raw is the full probe text as received off the wire.
	Raw string `json:"raw"`

	// Elapsed is how long after server start the probe arrived.
	Elapsed time.Duration `json:"elapsed"`

	// ReceivedAt is the wall-clock arrival time.
	ReceivedAt time.Time `json:"receivedAt"`
}
