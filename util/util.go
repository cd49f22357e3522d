package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// WriteLines writes one string per line, used for the flat debug artifacts
// written next to the spec.
func WriteLines(path string, lines []string) error {
	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// EnsureDir creates the directory (and parents) if needed.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}
	return nil
}

// DetectFormat returns "yaml" for .yaml/.yml paths, "json" otherwise.
func DetectFormat(path string) string {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
