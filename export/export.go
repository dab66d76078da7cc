// Package export renders pipeline artifacts to their on-disk formats:
// JSON for the structured documents, CSV for the crew-facing sheets and
// Markdown for the human-readable boards and notes.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ArtifactName builds the canonical output filename for an artifact,
// e.g. "My Title" + "script.json" → "My_Title_script.json".
func ArtifactName(title, suffix string) string {
	return fmt.Sprintf("%s_%s", strings.ReplaceAll(title, " ", "_"), suffix)
}

// WriteFile writes one rendered artifact into dir, creating dir if needed,
// and returns the written path.
func WriteFile(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}
