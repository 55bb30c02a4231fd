// Package ipc locates and speaks the nitpickd channel.
//
// It owns the platform-specific channel address (a Unix-domain socket under
// the temp directory, or a named pipe on Windows), dialing with deterministic
// endpoint-absent classification, and the wire codec: an ASCII key=value
// header, a streamed payload, and a single NUL delimiter in each direction.
//
// Exactly one request/response pair travels over a connection, so the framing
// is deliberately stateless; there are no length prefixes and no multiplexing.
package ipc
