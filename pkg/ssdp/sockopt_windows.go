//go:build windows

package ssdp

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// controlReuse marks the socket for address reuse before bind. Windows
// has no SO_REUSEPORT; SO_REUSEADDR alone covers port sharing there.
func controlReuse(network, address string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		sockErr = windows.SetsockoptInt(windows.Handle(fd), windows.SOL_SOCKET, windows.SO_REUSEADDR, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}
