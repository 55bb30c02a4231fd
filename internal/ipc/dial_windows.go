//go:build windows

package ipc

import (
	"errors"
	"net"
	"os"
	"time"

	"github.com/Microsoft/go-winio"
	"golang.org/x/sys/windows"
)

// Dial connects to the daemon named pipe at the given path.
func Dial(path string) (net.Conn, error) {
	timeout := dialTimeout
	return winio.DialPipe(path, &timeout)
}

const dialTimeout = 2 * time.Second

// IsEndpointAbsent reports whether a dial error means no daemon is listening
// on the channel address. On Windows a missing pipe surfaces as
// ERROR_FILE_NOT_FOUND from CreateFile. Only these failures may trigger a
// daemon spawn; anything else must propagate unchanged.
func IsEndpointAbsent(err error) bool {
	return errors.Is(err, windows.ERROR_FILE_NOT_FOUND) ||
		errors.Is(err, os.ErrNotExist)
}
