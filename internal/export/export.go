package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Diveyam-Mishra/Resume-Technex/internal/render"
)

// WriteText saves the rendered resume as a plain-text document named after
// the session and returns the path written. Exports are one-way: nothing
// reads them back into a session.
func WriteText(dir, sessionID string, r render.RenderedResume) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: ensure dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("resume-%s.txt", sessionID))
	if err := os.WriteFile(path, []byte(r.PlainText()), 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	return path, nil
}
