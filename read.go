package structfile

import (
	"fmt"
	"os"
)

// ReadFile reads the file at path and decodes it into a value of type T.
// The encoding is chosen by the path's extension (see Registry.Resolve); T
// only needs to be decodable by the chosen format library, so any type
// usable with json.Unmarshal, toml.Unmarshal, etc. works without per-type
// code.
//
// Failures are typed: format resolution errors (UnsupportedFormatError,
// NotEnabledError) propagate unchanged, unreadable files return the wrapped
// OS error (matchable with errors.Is(err, fs.ErrNotExist)), and malformed
// content returns a DecodeError wrapping the format library's error.
func ReadFile[T any](path string, opts ...Option) (T, error) {
	var v T
	if err := ReadFileInto(path, &v, opts...); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// ReadFileInto is the non-generic form of ReadFile for callers that already
// hold a pointer. v must be a non-nil pointer.
func ReadFileInto(path string, v any, opts ...Option) error {
	cfg := applyOptions(opts)

	codec, err := cfg.registry.Resolve(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("structfile: read %s: %w", path, err)
	}

	if err := codec.Unmarshal(data, v); err != nil {
		return &DecodeError{Format: codec.Format(), Err: err}
	}
	return nil
}
