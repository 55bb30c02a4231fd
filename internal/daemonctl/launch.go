package daemonctl

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// LaunchOptions controls daemon process launch behavior.
type LaunchOptions struct {
	SocketPath string
	// Debug keeps the client's standard streams attached to the daemon so
	// its startup output stays visible. Otherwise all three streams go to
	// the null device.
	Debug bool
	// ExtraArgs are appended verbatim after the generated arguments.
	ExtraArgs []string
}

// Launch starts a detached nitpickd process and relinquishes ownership.
// Spawn failures are fatal to the caller; retries belong to the connector.
func Launch(executablePath string, opts LaunchOptions) error {
	if strings.TrimSpace(executablePath) == "" {
		return fmt.Errorf("resolve executable: executable path is empty")
	}

	var args []string
	if socket := strings.TrimSpace(opts.SocketPath); socket != "" {
		args = append(args, "--socket", socket)
	}
	if !opts.Debug {
		args = append(args, "--quiet")
	}
	args = append(args, opts.ExtraArgs...)

	proc := exec.Command(executablePath, args...)
	proc.SysProcAttr = detachAttr()
	if opts.Debug {
		proc.Stdin = os.Stdin
		proc.Stdout = os.Stdout
		proc.Stderr = os.Stderr
	}
	// Leaving the streams nil binds them to the null device, so the daemon
	// can never block on the client's terminal.

	if err := proc.Start(); err != nil {
		return fmt.Errorf("launch daemon: %w", err)
	}
	return proc.Process.Release()
}
