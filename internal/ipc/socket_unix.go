//go:build !windows

package ipc

import (
	"os"
	"path/filepath"
)

// socketName is the fixed well-known socket file name shared with nitpickd.
const socketName = "nitpickd.sock"

// SocketPath returns the channel address: the fixed socket name joined with
// the temp directory. os.TempDir honors $TMPDIR and falls back to /tmp.
func SocketPath() string {
	return filepath.Join(os.TempDir(), socketName)
}
