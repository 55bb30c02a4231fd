//go:build windows

package daemonctl

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// detachAttr creates the daemon as a fully detached process group with no
// console, disconnected from the launching client.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: windows.DETACHED_PROCESS | windows.CREATE_NEW_PROCESS_GROUP,
		HideWindow:    true,
	}
}
