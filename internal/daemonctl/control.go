package daemonctl

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"nitpick/internal/ipc"
	"nitpick/internal/logging"
)

// ErrDaemonNotReady indicates a launched daemon never bound its endpoint
// within the configured ready timeout.
var ErrDaemonNotReady = errors.New("daemon failed to become ready")

// DialFunc connects to a channel address.
type DialFunc func(path string) (net.Conn, error)

// LaunchFunc spawns the daemon process.
type LaunchFunc func() error

// ConnectOptions configures the connect-else-spawn orchestration.
type ConnectOptions struct {
	SocketPath string
	// Dial defaults to ipc.Dial.
	Dial DialFunc
	// Launch is invoked at most once, when the endpoint is absent.
	Launch LaunchFunc
	// RetryDelay is slept between ready-wait attempts, debug mode only.
	// The daemon binds promptly after spawn, so release invocations retry
	// back to back.
	RetryDelay time.Duration
	// ReadyTimeout bounds the ready-wait loop; zero waits indefinitely.
	ReadyTimeout time.Duration
	Debug        bool
	// LockPath serializes the spawn across concurrent clients. Defaults to
	// a well-known file in the temp directory.
	LockPath string
	Logger   *slog.Logger
}

// EnsureConnected returns an open channel to the daemon, spawning it first
// when nothing is listening. Connection failures other than endpoint-absent
// propagate unchanged at every stage.
func EnsureConnected(opts ConnectOptions) (net.Conn, error) {
	dial := opts.Dial
	if dial == nil {
		dial = ipc.Dial
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	conn, err := dial(opts.SocketPath)
	if err == nil {
		return conn, nil
	}
	if !ipc.IsEndpointAbsent(err) {
		return nil, err
	}

	logger.Debug("daemon endpoint absent, spawning",
		logging.Args(logging.String("socket", opts.SocketPath))...)
	if err := launchSerialized(opts, logger); err != nil {
		return nil, err
	}

	var deadline time.Time
	if opts.ReadyTimeout > 0 {
		deadline = time.Now().Add(opts.ReadyTimeout)
	}

	var lastErr error
	for attempt := 1; ; attempt++ {
		conn, err := dial(opts.SocketPath)
		if err == nil {
			logger.Debug("daemon ready", logging.Args(logging.Int("attempts", attempt))...)
			return conn, nil
		}
		if !ipc.IsEndpointAbsent(err) {
			return nil, err
		}
		lastErr = err
		if !deadline.IsZero() && time.Now().After(deadline) {
			return nil, fmt.Errorf("%w after %s (%d attempts): %v",
				ErrDaemonNotReady, opts.ReadyTimeout, attempt, lastErr)
		}
		if opts.Debug && opts.RetryDelay > 0 {
			time.Sleep(opts.RetryDelay)
		}
	}
}

// launchSerialized takes a file lock around the spawn so concurrent clients
// launch at most one daemon. A client that loses the race skips the spawn and
// waits for the winner's daemon in the ready loop.
func launchSerialized(opts ConnectOptions, logger *slog.Logger) error {
	lockPath := opts.LockPath
	if lockPath == "" {
		if strings.HasPrefix(opts.SocketPath, `\\.\pipe\`) {
			// Pipe names cannot host a lock file.
			lockPath = filepath.Join(os.TempDir(), "nitpickd.spawn.lock")
		} else {
			lockPath = opts.SocketPath + ".spawn.lock"
		}
	}

	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		// Lock infrastructure trouble must not mask the spawn itself.
		logger.Debug("spawn lock unavailable", logging.Args(logging.Error(err))...)
		return opts.Launch()
	}
	if !locked {
		logger.Debug("another client is spawning the daemon",
			logging.Args(logging.String("lock", lockPath))...)
		return nil
	}
	defer func() {
		_ = lock.Unlock()
	}()
	return opts.Launch()
}
