// Package config loads igdmock server configuration from YAML or JSON
// files and turns declarative mock definitions into registered mocks.
//
// A configuration file describes the server surface (HTTP port, bind
// address, SSDP, device identity, logging) plus a list of mock
// definitions. Each definition names an action, optional match criteria,
// and either a success template or a fault. Build turns the list into
// mocks ready for registration.
package config
