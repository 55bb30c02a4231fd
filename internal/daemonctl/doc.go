// Package daemonctl owns the daemon-connection lifecycle: resolving the
// nitpickd executable, launching it as a detached background process, and the
// connect-else-spawn-and-retry orchestration that hands the session an open
// channel.
//
// The client never owns the daemon. The process handle is released right
// after a successful spawn and the daemon is expected to outlive the client
// and serve future invocations.
package daemonctl
