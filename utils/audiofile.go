package utils

import (
	"path/filepath"
	"strings"
)

// NormalizeExtensions lower-cases extensions and gives each a leading dot, dropping blanks
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

// IsAudioFile reports whether path carries one of exts, ignoring case.
// exts are expected in the form returned by NormalizeExtensions.
func IsAudioFile(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
