package session

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"nitpick/internal/arena"
	"nitpick/internal/config"
	"nitpick/internal/daemonctl"
	"nitpick/internal/ipc"
	"nitpick/internal/logging"
)

// Arena carve-up for one invocation. The header scratch bounds the serialized
// option lines; the copy buffers bound payload and response streaming.
const (
	headerBufSize   = 2 * 1024
	payloadBufSize  = 4 * 1024
	responseBufSize = 4 * 1024
)

// Session describes one client invocation.
type Session struct {
	Config  *config.Config
	Request ipc.Request
	// Payload is streamed as the request body, normally standard input.
	Payload io.Reader
	// Output receives the response body verbatim, normally standard output.
	Output io.Writer
	Logger *slog.Logger
}

// Run performs the invocation: connect (spawning nitpickd when absent), write
// the request frame, relay the response. The channel is closed on every exit
// path.
func (s *Session) Run() error {
	logger := s.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(logging.String("invocation", uuid.NewString()))

	a := arena.New(arena.SessionCapacity)
	scratch, err := a.Alloc(headerBufSize)
	if err != nil {
		return err
	}
	copyBuf, err := a.Alloc(payloadBufSize)
	if err != nil {
		return err
	}
	respBuf, err := a.Alloc(responseBufSize)
	if err != nil {
		return err
	}

	if s.Request.Cwd == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve working directory: %w", err)
		}
		s.Request.Cwd = cwd
	}

	addr := s.Config.Daemon.Socket
	if addr == "" {
		addr = ipc.SocketPath()
	}
	logger.Debug("session starting",
		logging.Args(
			logging.String("socket", addr),
			logging.Int("arena_used", a.Used()),
			logging.Int("arena_remaining", a.Remaining()),
		)...)

	conn, err := daemonctl.EnsureConnected(daemonctl.ConnectOptions{
		SocketPath:   addr,
		Launch:       s.launchDaemon(addr),
		RetryDelay:   s.Config.RetryDelay(),
		ReadyTimeout: s.Config.ReadyTimeout(),
		Debug:        s.Config.Debug,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := ipc.WriteRequest(conn, &s.Request, s.Payload, scratch, copyBuf); err != nil {
		return err
	}
	logger.Debug("request frame sent")

	if err := ipc.ReadResponse(conn, s.Output, respBuf); err != nil {
		return err
	}
	logger.Debug("response relayed")
	return nil
}

// launchDaemon defers executable resolution until a spawn is actually needed,
// so a running daemon keeps the client working even when nitpickd is not
// installed where resolution would look.
func (s *Session) launchDaemon(addr string) daemonctl.LaunchFunc {
	return func() error {
		exe := s.Config.Daemon.Executable
		if exe == "" {
			resolved, err := daemonctl.ResolveExecutable()
			if err != nil {
				return err
			}
			exe = resolved
		}
		return daemonctl.Launch(exe, daemonctl.LaunchOptions{
			SocketPath: addr,
			Debug:      s.Config.Debug,
			ExtraArgs:  s.Config.Daemon.ExtraArgs,
		})
	}
}
