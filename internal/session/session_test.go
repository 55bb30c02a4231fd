//go:build !windows

package session_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"nitpick/internal/arena"
	"nitpick/internal/ipc"
	"nitpick/internal/session"
	"nitpick/internal/testsupport"
)

func TestRunRelaysRequestAndResponse(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	daemon := testsupport.StartFakeDaemon(t, cfg.Daemon.Socket, []byte("3 problems (1 error, 2 warnings)\n"))

	var out bytes.Buffer
	s := &session.Session{
		Config: cfg,
		Request: ipc.Request{
			Cwd:    "/work/app",
			Format: "stylish",
		},
		Payload: strings.NewReader("const x = 1"),
		Output:  &out,
	}
	if err := s.Run(); err != nil {
		t.Fatalf("session.Run: %v", err)
	}

	if out.String() != "3 problems (1 error, 2 warnings)\n" {
		t.Fatalf("unexpected response: %q", out.String())
	}

	requests := daemon.Requests()
	if len(requests) != 1 {
		t.Fatalf("expected one request, got %d", len(requests))
	}
	frame := requests[0]
	if !bytes.HasPrefix(frame, []byte("cwd=/work/app\n")) {
		t.Fatalf("frame missing cwd line: %q", frame[:32])
	}
	if !bytes.Contains(frame, []byte("fix=0\n")) {
		t.Fatal("frame missing fix=0 line")
	}
	if !bytes.Contains(frame, []byte("format=stylish\n")) {
		t.Fatal("frame missing format line")
	}
	if !bytes.HasSuffix(frame, []byte("\n\nconst x = 1")) {
		t.Fatalf("unexpected frame tail: %q", frame[len(frame)-24:])
	}
}

func TestRunFillsWorkingDirectory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	daemon := testsupport.StartFakeDaemon(t, cfg.Daemon.Socket, nil)

	var out bytes.Buffer
	s := &session.Session{
		Config:  cfg,
		Payload: strings.NewReader(""),
		Output:  &out,
	}
	if err := s.Run(); err != nil {
		t.Fatalf("session.Run: %v", err)
	}

	requests := daemon.Requests()
	if len(requests) != 1 {
		t.Fatalf("expected one request, got %d", len(requests))
	}
	line, _, _ := bytes.Cut(requests[0], []byte("\n"))
	cwd := strings.TrimPrefix(string(line), "cwd=")
	if cwd == "" || !filepath.IsAbs(cwd) {
		t.Fatalf("expected absolute cwd line, got %q", line)
	}
}

func TestRunHeaderOverflowIsArenaError(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.StartFakeDaemon(t, cfg.Daemon.Socket, nil)

	var out bytes.Buffer
	s := &session.Session{
		Config: cfg,
		Request: ipc.Request{
			Cwd:           "/work",
			IgnorePattern: strings.Repeat("p", 8*1024),
		},
		Payload: strings.NewReader(""),
		Output:  &out,
	}
	err := s.Run()
	if !errors.Is(err, arena.ErrExhausted) {
		t.Fatalf("expected arena.ErrExhausted, got %v", err)
	}
}

func TestRunSpawnFailurePropagates(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithReadyTimeout(200))
	cfg.Daemon.Executable = filepath.Join(t.TempDir(), "missing-daemon")

	var out bytes.Buffer
	s := &session.Session{
		Config:  cfg,
		Payload: strings.NewReader(""),
		Output:  &out,
	}
	if err := s.Run(); err == nil {
		t.Fatal("expected spawn failure for missing daemon executable")
	}
}
