package xsetwacom

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestNewClientToolMissing(t *testing.T) {
	// An empty PATH guarantees the binary cannot be found.
	t.Setenv("PATH", t.TempDir())

	_, err := NewClient(zap.NewNop())
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	var missing *ToolMissingError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected *ToolMissingError, got %T: %v", err, err)
	}
	if missing.Binary != DefaultBinary {
		t.Errorf("Binary = %q, want %q", missing.Binary, DefaultBinary)
	}

	want := "couldn't find executable: xsetwacom"
	if missing.Error() != want {
		t.Errorf("Error() = %q, want %q", missing.Error(), want)
	}
}

func TestNewClientFindsBinaryOnPath(t *testing.T) {
	dir := t.TempDir()
	fake := filepath.Join(dir, DefaultBinary)
	if err := os.WriteFile(fake, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}
	t.Setenv("PATH", dir)

	client, err := NewClient(zap.NewNop())
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client == nil {
		t.Fatal("Expected client, got nil")
	}
}

func TestTrimForLog(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'x'
	}

	got := trimForLog(string(long))
	if len(got) != 256+len("...") {
		t.Errorf("trimForLog() length = %d, want truncation to 256 chars plus ellipsis", len(got))
	}

	if got := trimForLog("  short \n"); got != "short" {
		t.Errorf("trimForLog() = %q, want %q", got, "short")
	}
}
