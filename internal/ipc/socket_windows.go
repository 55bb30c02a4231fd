//go:build windows

package ipc

// pipeName is the fixed well-known pipe name shared with nitpickd.
const pipeName = `\\.\pipe\nitpickd`

// SocketPath returns the channel address in the reserved named-pipe
// namespace. The temp directory plays no role on Windows.
func SocketPath() string {
	return pipeName
}
