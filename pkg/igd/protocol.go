package igd

import "strings"

// Protocol is a port mapping transport protocol token.
type Protocol string

const (
	TCP Protocol = "TCP"
	UDP Protocol = "UDP"
)

// ParseProtocol maps a string to a Protocol, case-insensitively. The second
// return is false for anything outside the TCP/UDP token set.
func ParseProtocol(s string) (Protocol, bool) {
	switch strings.ToUpper(s) {
	case "TCP":
		return TCP, true
	case "UDP":
		return UDP, true
	}
	return "", false
}

func (p Protocol) String() string { return string(p) }
