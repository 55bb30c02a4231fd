// Package arena provides the fixed-capacity memory region backing one client
// invocation.
//
// Every working buffer for a session is carved from a single pre-sized arena.
// The arena never grows; exhausting it fails the invocation outright, with an
// error distinct from any I/O failure. The whole region is reclaimed at once
// when the invocation returns.
package arena

import (
	"errors"
	"fmt"
)

// SessionCapacity is the arena size for one client invocation.
const SessionCapacity = 12 * 1024

// ErrExhausted reports that an allocation would exceed the arena capacity.
// It is fatal for the invocation and must never be reported as an I/O error.
var ErrExhausted = errors.New("session arena exhausted")

// Arena hands out slices of a single fixed buffer.
type Arena struct {
	buf  []byte
	used int
}

// New returns an arena with the given capacity.
func New(capacity int) *Arena {
	return &Arena{buf: make([]byte, capacity)}
}

// Alloc returns a zero-length slice with capacity n carved from the arena.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("alloc %d bytes: negative size", n)
	}
	if a.used+n > len(a.buf) {
		return nil, fmt.Errorf("alloc %d bytes (%d of %d used): %w", n, a.used, len(a.buf), ErrExhausted)
	}
	start := a.used
	a.used += n
	return a.buf[start : start : start+n], nil
}

// Used reports how many bytes have been handed out.
func (a *Arena) Used() int {
	return a.used
}

// Remaining reports how many bytes are still available.
func (a *Arena) Remaining() int {
	return len(a.buf) - a.used
}
