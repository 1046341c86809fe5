package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Diveyam-Mishra/Resume-Technex/internal/render"
	"github.com/Diveyam-Mishra/Resume-Technex/internal/resume"
)

func TestWriteTextCreatesDocument(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "export")
	record := resume.Record{Name: "Jane Doe", Experience: "Acme", Education: "BSc", Skills: "Go"}
	rendered := render.Render(record, render.TemplateModern)

	path, err := WriteText(dir, "abc123", rendered)
	if err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if filepath.Base(path) != "resume-abc123.txt" {
		t.Fatalf("unexpected file name: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	text := string(data)
	for _, want := range []string{"JANE DOE", "EXPERIENCE", "Acme"} {
		if !strings.Contains(text, want) {
			t.Fatalf("export missing %q:\n%s", want, text)
		}
	}
}

func TestWriteTextIncludesPlaceholders(t *testing.T) {
	dir := t.TempDir()
	rendered := render.Render(resume.Record{}, render.TemplateClassic)
	path, err := WriteText(dir, "empty", rendered)
	if err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "[Your Experience]") {
		t.Fatalf("empty sections must export their placeholders:\n%s", data)
	}
}
