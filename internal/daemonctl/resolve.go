package daemonctl

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// ResolveExecutable locates the nitpickd executable relative to the client's
// own installed location, falling back to PATH lookup.
func ResolveExecutable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable: %w", err)
	}
	for _, candidate := range DaemonCandidates(exe) {
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	path, err := exec.LookPath(daemonBinaryName())
	if err != nil {
		return "", fmt.Errorf("locate %s: %w", daemonBinaryName(), err)
	}
	return path, nil
}

// DaemonCandidates returns the probe order for the daemon executable given
// the client binary's path. A client installed under a bin directory looks in
// the prefix's libexec first; a build-tree client finds the daemon beside
// itself.
func DaemonCandidates(clientPath string) []string {
	name := daemonBinaryName()
	dir := filepath.Dir(clientPath)
	if filepath.Base(dir) == "bin" {
		prefix := filepath.Dir(dir)
		return []string{
			filepath.Join(prefix, "libexec", "nitpick", name),
			filepath.Join(dir, name),
		}
	}
	return []string{filepath.Join(dir, name)}
}

func daemonBinaryName() string {
	if runtime.GOOS == "windows" {
		return "nitpickd.exe"
	}
	return "nitpickd"
}
