//go:build !windows

package daemonctl

import "syscall"

// detachAttr places the daemon in its own session so it detaches from the
// controlling terminal and survives the client's exit.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
