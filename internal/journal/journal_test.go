package journal

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendAndTail(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "logs", "technex.log"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	j.Info("session opened")
	j.Warn("template · rejected %q", "fancy")
	j.Error("export · disk full")

	lines := j.Tail(10)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "INFO") || !strings.Contains(lines[0], "session opened") {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "WARN") {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
	if !strings.Contains(lines[2], "ERROR") {
		t.Fatalf("unexpected third line: %q", lines[2])
	}
}

func TestTailReturnsMostRecent(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "technex.log"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for i := 0; i < 10; i++ {
		j.Info("entry %d", i)
	}
	lines := j.Tail(3)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "entry 9") {
		t.Fatalf("tail must end with the newest entry: %v", lines)
	}
}

func TestNilJournalIsSafe(t *testing.T) {
	var j *Journal
	j.Info("ignored")
	if lines := j.Tail(5); lines != nil {
		t.Fatalf("nil journal returned lines: %v", lines)
	}
}

func TestTailOnMissingFile(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "technex.log"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if lines := j.Tail(5); lines != nil {
		t.Fatalf("expected no lines before first append, got %v", lines)
	}
}
