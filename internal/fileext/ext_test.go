package fileext

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple extension",
			input:    "config.yaml",
			expected: "yaml",
		},
		{
			name:     "uppercase extension is lowercased",
			input:    "/etc/app/Config.JSON",
			expected: "json",
		},
		{
			name:     "compound extension uses final suffix",
			input:    "backup.tar.json",
			expected: "json",
		},
		{
			name:     "absolute path",
			input:    "/var/lib/app/state.toml",
			expected: "toml",
		},
		{
			name:     "no extension",
			input:    "data",
			expected: "",
		},
		{
			name:     "dotfile has no extension",
			input:    ".bashrc",
			expected: "",
		},
		{
			name:     "dotfile in directory has no extension",
			input:    "/home/user/.bashrc",
			expected: "",
		},
		{
			name:     "dot in directory name does not count",
			input:    "app.d/config",
			expected: "",
		},
		{
			name:     "trailing dot",
			input:    "file.",
			expected: "",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
