package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenLogOutputEmptyPathDiscards(t *testing.T) {
	out, closeLog, err := openLogOutput("")
	if err != nil {
		t.Fatalf("openLogOutput(\"\") error = %v", err)
	}
	if out != io.Discard {
		t.Errorf("empty path should discard logs, got %T", out)
	}
	if err := closeLog(); err != nil {
		t.Errorf("close = %v, expected nil", err)
	}
}

func TestOpenLogOutputAppendsAndCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.log")

	for _, line := range []string{"first\n", "second\n"} {
		out, closeLog, err := openLogOutput(path)
		if err != nil {
			t.Fatalf("openLogOutput() error = %v", err)
		}
		if _, err := io.WriteString(out, line); err != nil {
			t.Fatalf("write: %v", err)
		}
		if err := closeLog(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if string(data) != "first\nsecond\n" {
		t.Errorf("log contents = %q, expected both lines appended", data)
	}

	// A closed file rejects further writes
	out, closeLog, _ := openLogOutput(path)
	closeLog()
	if _, err := io.WriteString(out, "late\n"); err == nil {
		t.Error("write after close should fail")
	}
}

func TestOpenLogOutputMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "flappy.log")

	_, _, err := openLogOutput(path)
	if err == nil {
		t.Fatal("expected error for a log file in a missing directory")
	}
	if !strings.Contains(err.Error(), "opening log file") {
		t.Errorf("error = %v, expected it to mention the log file", err)
	}
}
