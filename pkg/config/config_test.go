package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/getmockd/igdmock/pkg/igd"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "igdmock.yaml", `
http_port: 9090
bind_address: 0.0.0.0
ssdp:
  enabled: false
  port: 1901
device:
  friendly_name: Lab Gateway
log:
  level: debug
  format: json
log_capacity: 50
mocks:
  - action: GetExternalIPAddress
    respond:
      external_ip: 203.0.113.7
  - action: AddPortMapping
    priority: 10
    times: 2
    fault:
      code: 718
      description: ConflictInMappingEntry
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPPort != 9090 || cfg.BindAddress != "0.0.0.0" {
		t.Errorf("server fields: %+v", cfg)
	}
	if cfg.SSDP.Enabled || cfg.SSDP.Port != 1901 {
		t.Errorf("ssdp fields: %+v", cfg.SSDP)
	}
	if cfg.Device.FriendlyName != "Lab Gateway" {
		t.Errorf("device fields: %+v", cfg.Device)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log fields: %+v", cfg.Log)
	}
	if cfg.LogCapacity != 50 {
		t.Errorf("log_capacity = %d", cfg.LogCapacity)
	}
	if len(cfg.Mocks) != 2 {
		t.Fatalf("got %d mocks", len(cfg.Mocks))
	}
	if cfg.Mocks[1].Priority != 10 || cfg.Mocks[1].Times != 2 {
		t.Errorf("mock[1] fields: %+v", cfg.Mocks[1])
	}
	if cfg.Mocks[1].Fault == nil || cfg.Mocks[1].Fault.Code != 718 {
		t.Errorf("mock[1] fault: %+v", cfg.Mocks[1].Fault)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "igdmock.json", `{
  "http_port": 9091,
  "mocks": [{"action": "any", "respond": {"connection_status": "Connected"}}]
}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPPort != 9091 {
		t.Errorf("http_port = %d", cfg.HTTPPort)
	}
	if len(cfg.Mocks) != 1 || cfg.Mocks[0].Action != "any" {
		t.Errorf("mocks: %+v", cfg.Mocks)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeFile(t, "partial.yaml", "http_port: 7000\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BindAddress != "127.0.0.1" {
		t.Errorf("bind_address default lost: %q", cfg.BindAddress)
	}
	if !cfg.SSDP.Enabled || cfg.SSDP.Port != 1900 {
		t.Errorf("ssdp defaults lost: %+v", cfg.SSDP)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("missing file: %v", err)
	}
	if _, err := Load(writeFile(t, "cfg.toml", "x = 1")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("toml: %v", err)
	}
	if _, err := Load(writeFile(t, "bad.yaml", "mocks: [")); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("bad yaml: %v", err)
	}
	if _, err := Load(writeFile(t, "bad.json", "{")); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("bad json: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Config)
		ok   bool
	}{
		{"defaults", func(*Config) {}, true},
		{"port too high", func(c *Config) { c.HTTPPort = 70000 }, false},
		{"negative ssdp port", func(c *Config) { c.SSDP.Port = -1 }, false},
		{"negative capacity", func(c *Config) { c.LogCapacity = -5 }, false},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, false},
		{"warning level", func(c *Config) { c.Log.Level = "WARNING" }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mod(cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBuildMocks(t *testing.T) {
	ext := uint16(8080)
	cfg := &Config{Mocks: []MockDef{
		{Action: "GetExternalIPAddress", Respond: &RespondDef{ExternalIP: "203.0.113.7"}},
		{Action: "AddPortMapping", Priority: 5, Times: 3, Match: &MatchDef{ExternalPort: &ext, Protocol: "tcp"}},
		{Action: "any", Fault: &FaultDef{Code: 501, Description: "ActionFailed"}},
	}}

	mocks, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(mocks) != 3 {
		t.Fatalf("got %d mocks", len(mocks))
	}

	if mocks[0].Action() != igd.ActionGetExternalIPAddress {
		t.Errorf("mock[0] action = %v", mocks[0].Action())
	}
	req := &igd.Request{ActionName: "GetExternalIPAddress"}
	resp, ok := mocks[0].Answer(req)
	if !ok || resp.Kind != igd.ResponsePayload {
		t.Fatalf("mock[0] answer: %+v ok=%v", resp, ok)
	}
	if !strings.Contains(resp.XML, "203.0.113.7") {
		t.Errorf("payload missing configured IP: %s", resp.XML)
	}

	if mocks[1].Priority() != 5 {
		t.Errorf("mock[1] priority = %d", mocks[1].Priority())
	}
	if max, limited := mocks[1].MaxMatches(); !limited || max != 3 {
		t.Errorf("mock[1] quota = %d limited=%v", max, limited)
	}
	addReq := &igd.Request{
		ActionName: "AddPortMapping",
		Body:       igd.AddPortMappingBody{ExternalPort: 8080, Protocol: "TCP"},
	}
	if !mocks[1].TryMatch(addReq) {
		t.Error("mock[1] should match configured port/protocol")
	}
	otherReq := &igd.Request{
		ActionName: "AddPortMapping",
		Body:       igd.AddPortMappingBody{ExternalPort: 9999, Protocol: "TCP"},
	}
	if mocks[1].TryMatch(otherReq) {
		t.Error("mock[1] matched a different port")
	}

	faultResp, ok := mocks[2].Answer(&igd.Request{ActionName: "Whatever"})
	if !ok || faultResp.Kind != igd.ResponseFault || faultResp.Code != 501 {
		t.Errorf("mock[2] fault: %+v ok=%v", faultResp, ok)
	}
}

func TestBuildDefaultsToEmptySuccess(t *testing.T) {
	cfg := &Config{Mocks: []MockDef{{Action: "AddPortMapping"}}}
	mocks, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	resp, ok := mocks[0].Answer(&igd.Request{ActionName: "AddPortMapping", Body: igd.AddPortMappingBody{}})
	if !ok || resp.Kind != igd.ResponsePayload {
		t.Fatalf("answer: %+v ok=%v", resp, ok)
	}
	if !strings.Contains(resp.XML, "AddPortMappingResponse") {
		t.Errorf("payload: %s", resp.XML)
	}
}

func TestBuildPositionedErrors(t *testing.T) {
	idx := uint32(1)
	cases := []struct {
		name string
		def  MockDef
		want string
	}{
		{"unknown action", MockDef{Action: "Reboot"}, `unknown action "Reboot"`},
		{"respond and fault", MockDef{
			Action:  "GetStatusInfo",
			Respond: &RespondDef{},
			Fault:   &FaultDef{Code: 501},
		}, "mutually exclusive"},
		{"fault without code", MockDef{Action: "GetStatusInfo", Fault: &FaultDef{}}, "fault.code is required"},
		{"match on nullary action", MockDef{
			Action: "GetExternalIPAddress",
			Match:  &MatchDef{Protocol: "TCP"},
		}, "do not apply"},
		{"match on wildcard", MockDef{Action: "any", Match: &MatchDef{}}, "do not apply"},
		{"bad protocol", MockDef{
			Action: "DeletePortMapping",
			Match:  &MatchDef{Protocol: "SCTP"},
		}, `unknown protocol "SCTP"`},
		{"bad client address", MockDef{
			Action: "AddPortMapping",
			Match:  &MatchDef{InternalClient: "not-an-ip"},
		}, "invalid internal_client"},
		{"index on delete", MockDef{
			Action: "DeletePortMapping",
			Match:  &MatchDef{Index: &idx},
		}, "match.index does not apply"},
		{"bad respond ip", MockDef{
			Action:  "GetExternalIPAddress",
			Respond: &RespondDef{ExternalIP: "not-an-ip"},
		}, "invalid external_ip"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{Mocks: []MockDef{{Action: "GetStatusInfo"}, tc.def}}
			_, err := cfg.Build()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.HasPrefix(err.Error(), "mocks[1]: ") {
				t.Errorf("error not positioned: %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q missing %q", err, tc.want)
			}
		})
	}
}
