package structfile

import "io/fs"

// Option configures a ReadFile or WriteFile call using the functional
// options pattern. Write-only options are ignored by reads.
type Option func(*callConfig)

// callConfig holds the resolved options for a single call.
type callConfig struct {
	registry *Registry
	pretty   bool
	atomic   bool
	mode     fs.FileMode
}

// WithRegistry uses an explicit registry instead of DefaultRegistry,
// restricting the call to exactly the formats registered there.
func WithRegistry(r *Registry) Option {
	return func(cfg *callConfig) {
		cfg.registry = r
	}
}

// Pretty writes human-friendly indented output for codecs that have a
// distinct indented form (JSON, XML). Codecs without one (TOML, YAML, whose
// canonical output is already indented) are unaffected.
func Pretty() Option {
	return func(cfg *callConfig) {
		cfg.pretty = true
	}
}

// Atomic writes through a temporary file in the destination directory and
// renames it into place, so readers never observe a partially written file.
func Atomic() Option {
	return func(cfg *callConfig) {
		cfg.atomic = true
	}
}

// WithFileMode sets the permission bits for files created by WriteFile.
// Default is 0o644.
func WithFileMode(mode fs.FileMode) Option {
	return func(cfg *callConfig) {
		cfg.mode = mode
	}
}

func applyOptions(opts []Option) callConfig {
	cfg := callConfig{
		registry: DefaultRegistry,
		mode:     0o644,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
