// Command nitpick is the thin client for the nitpickd lint daemon.
//
// One invocation opens one connection: it serializes the recognized options
// and the working directory, streams standard input as the payload, and
// relays the daemon's response to standard output. When no daemon is
// listening, the client spawns one as a detached background process and waits
// for it to bind its socket.
package main
