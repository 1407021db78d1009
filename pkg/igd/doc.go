// Package igd defines the UPnP Internet Gateway Device protocol model shared
// by the rest of the module: the closed set of supported control actions,
// the parsed request bodies for parameterized actions, the normalized
// inbound request, and the response model a mock produces.
//
// Everything in this package is a plain value type. Requests are built once
// by the SOAP codec and never mutated afterward; responses are small values
// that are safe to copy and share. Matching and dispatch logic lives in the
// matching and engine packages.
//
// Action names use their wire-exact spelling (for example
// "GetExternalIPAddress"), so they can be compared directly against the
// action carried in a SOAPACTION header. Actions split across two UPnP
// services: the WANIPConnection:1 connection actions and the
// WANCommonInterfaceConfig:1 link actions. Action.ServiceType reports which
// service an action canonically belongs to.
package igd
