//go:build unix

package ssdp

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// controlReuse marks the socket for address and port reuse before bind,
// so the responder can coexist with other SSDP listeners on port 1900.
func controlReuse(network, address string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
		if sockErr != nil {
			return
		}
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}
