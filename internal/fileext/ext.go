package fileext

import (
	"path/filepath"
	"strings"
)

// Normalize extracts the extension of the last element of path, lowercased
// and without the leading dot. It returns "" when there is no extension.
// Dotfiles like ".bashrc" count as having no extension, and only the final
// suffix of a compound extension is reported ("a.tar.json" → "json").
// Examples:
//   - "config.yaml" → "yaml"
//   - "/etc/app/Config.JSON" → "json"
//   - "backup.tar.json" → "json"
//   - ".bashrc" → ""
//   - "data" → ""
func Normalize(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
