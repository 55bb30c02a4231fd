package daemonctl_test

import (
	"errors"
	"net"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"nitpick/internal/daemonctl"
)

func pipeConn(t *testing.T) net.Conn {
	t.Helper()
	client, server := net.Pipe()
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})
	return client
}

func TestEnsureConnectedDirect(t *testing.T) {
	want := pipeConn(t)
	launched := 0
	conn, err := daemonctl.EnsureConnected(daemonctl.ConnectOptions{
		SocketPath: "ignored",
		Dial: func(string) (net.Conn, error) {
			return want, nil
		},
		Launch: func() error {
			launched++
			return nil
		},
		LockPath: filepath.Join(t.TempDir(), "spawn.lock"),
	})
	if err != nil {
		t.Fatalf("EnsureConnected: %v", err)
	}
	if conn != want {
		t.Fatal("expected the dialed connection")
	}
	if launched != 0 {
		t.Fatalf("direct connect must not spawn, launched %d times", launched)
	}
}

func TestEnsureConnectedSpawnsAndRetries(t *testing.T) {
	const failures = 5
	want := pipeConn(t)
	attempts := 0
	launched := 0
	conn, err := daemonctl.EnsureConnected(daemonctl.ConnectOptions{
		SocketPath: "ignored",
		Dial: func(string) (net.Conn, error) {
			attempts++
			if attempts <= failures {
				return nil, syscall.ECONNREFUSED
			}
			return want, nil
		},
		Launch: func() error {
			launched++
			return nil
		},
		LockPath: filepath.Join(t.TempDir(), "spawn.lock"),
	})
	if err != nil {
		t.Fatalf("EnsureConnected: %v", err)
	}
	if conn != want {
		t.Fatal("expected the dialed connection")
	}
	if launched != 1 {
		t.Fatalf("expected exactly one spawn, got %d", launched)
	}
	if attempts != failures+1 {
		t.Fatalf("expected %d dial attempts, got %d", failures+1, attempts)
	}
}

func TestEnsureConnectedPropagatesUnrelatedDialErrors(t *testing.T) {
	boom := errors.New("socket permission denied")
	launched := 0
	_, err := daemonctl.EnsureConnected(daemonctl.ConnectOptions{
		SocketPath: "ignored",
		Dial: func(string) (net.Conn, error) {
			return nil, boom
		},
		Launch: func() error {
			launched++
			return nil
		},
		LockPath: filepath.Join(t.TempDir(), "spawn.lock"),
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the dial error unchanged, got %v", err)
	}
	if launched != 0 {
		t.Fatal("unrelated dial errors must not trigger a spawn")
	}
}

func TestEnsureConnectedPropagatesLaunchFailure(t *testing.T) {
	boom := errors.New("exec format error")
	_, err := daemonctl.EnsureConnected(daemonctl.ConnectOptions{
		SocketPath: "ignored",
		Dial: func(string) (net.Conn, error) {
			return nil, syscall.ENOENT
		},
		Launch: func() error {
			return boom
		},
		LockPath: filepath.Join(t.TempDir(), "spawn.lock"),
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the launch error unchanged, got %v", err)
	}
}

func TestEnsureConnectedReadyTimeout(t *testing.T) {
	_, err := daemonctl.EnsureConnected(daemonctl.ConnectOptions{
		SocketPath: "ignored",
		Dial: func(string) (net.Conn, error) {
			return nil, syscall.ECONNREFUSED
		},
		Launch: func() error {
			return nil
		},
		ReadyTimeout: 20 * time.Millisecond,
		LockPath:     filepath.Join(t.TempDir(), "spawn.lock"),
	})
	if !errors.Is(err, daemonctl.ErrDaemonNotReady) {
		t.Fatalf("expected ErrDaemonNotReady, got %v", err)
	}
}

func TestEnsureConnectedRetryErrorPropagates(t *testing.T) {
	boom := errors.New("read: connection reset")
	attempts := 0
	_, err := daemonctl.EnsureConnected(daemonctl.ConnectOptions{
		SocketPath: "ignored",
		Dial: func(string) (net.Conn, error) {
			attempts++
			if attempts == 1 {
				return nil, syscall.ENOENT
			}
			return nil, boom
		},
		Launch: func() error {
			return nil
		},
		LockPath: filepath.Join(t.TempDir(), "spawn.lock"),
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected the retry-loop error unchanged, got %v", err)
	}
}
