//go:build !windows

package ipc

import (
	"errors"
	"net"
	"os"
	"syscall"
	"time"
)

// Dial connects to the daemon socket at the given path.
func Dial(path string) (net.Conn, error) {
	return net.DialTimeout("unix", path, dialTimeout)
}

const dialTimeout = 2 * time.Second

// IsEndpointAbsent reports whether a dial error means no daemon is listening
// on the channel address: the socket file does not exist, or nothing accepts
// connections on it. Only these failures may trigger a daemon spawn; anything
// else must propagate unchanged.
func IsEndpointAbsent(err error) bool {
	return errors.Is(err, syscall.ENOENT) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, syscall.ECONNREFUSED)
}
