//go:build !windows

package testsupport

import (
	"bytes"
	"net"
	"sync"
	"testing"
)

// FakeDaemon is an in-process stand-in for nitpickd: it accepts one
// connection at a time, reads a request frame up to its NUL delimiter, and
// answers with a canned body followed by NUL.
type FakeDaemon struct {
	listener net.Listener
	response []byte

	mu       sync.Mutex
	requests [][]byte
	done     chan struct{}
}

// StartFakeDaemon listens on socketPath and serves until the test ends.
// The response body is sent as-is; the NUL delimiter is appended on the wire.
func StartFakeDaemon(t testing.TB, socketPath string, response []byte) *FakeDaemon {
	t.Helper()

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		t.Fatalf("listen on %s: %v", socketPath, err)
	}
	d := &FakeDaemon{
		listener: listener,
		response: response,
		done:     make(chan struct{}),
	}
	go d.serve()
	t.Cleanup(func() {
		listener.Close()
		<-d.done
	})
	return d
}

// Requests returns the raw request frames received so far, without their
// trailing delimiters.
func (d *FakeDaemon) Requests() [][]byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([][]byte, len(d.requests))
	copy(out, d.requests)
	return out
}

func (d *FakeDaemon) serve() {
	defer close(d.done)
	for {
		conn, err := d.listener.Accept()
		if err != nil {
			return
		}
		d.handle(conn)
	}
}

func (d *FakeDaemon) handle(conn net.Conn) {
	defer conn.Close()

	var frame bytes.Buffer
	buf := make([]byte, 1024)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			frame.Write(buf[:n])
			if idx := bytes.IndexByte(frame.Bytes(), 0x00); idx >= 0 {
				d.mu.Lock()
				d.requests = append(d.requests, append([]byte(nil), frame.Bytes()[:idx]...))
				d.mu.Unlock()
				break
			}
		}
		if err != nil {
			return
		}
	}

	body := append(append([]byte(nil), d.response...), 0x00)
	_, _ = conn.Write(body)
}
