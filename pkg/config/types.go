package config

// Config is the top-level configuration file structure.
type Config struct {
	// HTTPPort is the control server's listen port. 0 binds an ephemeral
	// port.
	HTTPPort int `yaml:"http_port" json:"http_port"`

	// BindAddress is the address the HTTP listener binds to.
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	SSDP   SSDPConfig   `yaml:"ssdp" json:"ssdp"`
	Device DeviceConfig `yaml:"device" json:"device"`
	Log    LogConfig    `yaml:"log" json:"log"`

	// LogCapacity caps the received-request and received-discovery logs.
	// 0 keeps the engine default.
	LogCapacity int `yaml:"log_capacity" json:"log_capacity"`

	// Mocks are registered in file order at startup.
	Mocks []MockDef `yaml:"mocks" json:"mocks"`
}

// SSDPConfig configures the discovery responder.
type SSDPConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
	Port    int  `yaml:"port" json:"port"`
}

// DeviceConfig overrides the device identity advertised in the
// description document. Empty fields keep their defaults.
type DeviceConfig struct {
	FriendlyName string `yaml:"friendly_name" json:"friendly_name"`
	Manufacturer string `yaml:"manufacturer" json:"manufacturer"`
	ModelName    string `yaml:"model_name" json:"model_name"`
	UDN          string `yaml:"udn" json:"udn"`
}

// LogConfig configures operational logging.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// MockDef is one declarative mock: an action, optional match criteria,
// and a response. Exactly one of Respond and Fault may be set; when both
// are absent the mock answers with an all-defaults success template.
type MockDef struct {
	// Action is the action name, or "any" for the wildcard.
	Action string `yaml:"action" json:"action"`

	// Priority orders mocks; higher values are checked first.
	Priority int `yaml:"priority" json:"priority"`

	// Times caps how many dispatches the mock answers. 0 means
	// unlimited.
	Times uint32 `yaml:"times" json:"times"`

	Match   *MatchDef   `yaml:"match,omitempty" json:"match,omitempty"`
	Respond *RespondDef `yaml:"respond,omitempty" json:"respond,omitempty"`
	Fault   *FaultDef   `yaml:"fault,omitempty" json:"fault,omitempty"`
}

// MatchDef narrows a mock to requests whose parameters match. Which
// fields apply depends on the action; fields the action has no use for
// are rejected by Build.
type MatchDef struct {
	ExternalPort   *uint16 `yaml:"external_port,omitempty" json:"external_port,omitempty"`
	Protocol       string  `yaml:"protocol,omitempty" json:"protocol,omitempty"`
	InternalPort   *uint16 `yaml:"internal_port,omitempty" json:"internal_port,omitempty"`
	InternalClient string  `yaml:"internal_client,omitempty" json:"internal_client,omitempty"`
	Description    string  `yaml:"description,omitempty" json:"description,omitempty"`
	Index          *uint32 `yaml:"index,omitempty" json:"index,omitempty"`
}

// RespondDef carries the success template fields. Absent fields render
// as the wire defaults.
type RespondDef struct {
	ExternalIP          string  `yaml:"external_ip,omitempty" json:"external_ip,omitempty"`
	ConnectionStatus    string  `yaml:"connection_status,omitempty" json:"connection_status,omitempty"`
	LastConnectionError string  `yaml:"last_connection_error,omitempty" json:"last_connection_error,omitempty"`
	Uptime              *uint32 `yaml:"uptime,omitempty" json:"uptime,omitempty"`
	RemoteHost          string  `yaml:"remote_host,omitempty" json:"remote_host,omitempty"`
	ExternalPort        *uint16 `yaml:"external_port,omitempty" json:"external_port,omitempty"`
	Protocol            string  `yaml:"protocol,omitempty" json:"protocol,omitempty"`
	InternalPort        *uint16 `yaml:"internal_port,omitempty" json:"internal_port,omitempty"`
	InternalClient      string  `yaml:"internal_client,omitempty" json:"internal_client,omitempty"`
	Enabled             *bool   `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	Description         string  `yaml:"description,omitempty" json:"description,omitempty"`
	LeaseDuration       *uint32 `yaml:"lease_duration,omitempty" json:"lease_duration,omitempty"`
	WANAccessType       string  `yaml:"wan_access_type,omitempty" json:"wan_access_type,omitempty"`
	UpstreamBitRate     *uint32 `yaml:"upstream_bit_rate,omitempty" json:"upstream_bit_rate,omitempty"`
	DownstreamBitRate   *uint32 `yaml:"downstream_bit_rate,omitempty" json:"downstream_bit_rate,omitempty"`
	PhysicalLinkStatus  string  `yaml:"physical_link_status,omitempty" json:"physical_link_status,omitempty"`
	TotalBytes          *uint64 `yaml:"total_bytes,omitempty" json:"total_bytes,omitempty"`
}

// FaultDef answers matching requests with a UPnP fault.
type FaultDef struct {
	Code        int    `yaml:"code" json:"code"`
	Description string `yaml:"description" json:"description"`
}

// DefaultConfig returns the defaults the serve command starts from.
func DefaultConfig() *Config {
	return &Config{
		HTTPPort:    8080,
		BindAddress: "127.0.0.1",
		SSDP:        SSDPConfig{Enabled: true, Port: 1900},
		Log:         LogConfig{Level: "info", Format: "text"},
	}
}
