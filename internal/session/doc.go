// Package session runs one client invocation end to end: locate the channel,
// connect (spawning the daemon on demand), stream the request, relay the
// response.
//
// A session is strictly sequential and blocking, with every working buffer
// drawn from one fixed-size arena. The connection is closed on every exit
// path; the invocation either relays the full response or fails outright.
package session
