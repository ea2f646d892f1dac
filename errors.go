package structfile

import "fmt"

// UnsupportedFormatError is returned when a path's extension is missing or
// does not name any format this library knows about.
type UnsupportedFormatError struct {
	// Ext is the offending extension (lowercase, without dot).
	// Empty when the path had no extension at all.
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Ext == "" {
		return "structfile: path has no file extension"
	}
	return fmt.Sprintf("structfile: unsupported file extension %q", e.Ext)
}

// NotEnabledError is returned when a path's extension names a known format
// whose codec package was not linked into the binary. This is deliberately
// distinct from UnsupportedFormatError so callers can tell a typo apart from
// a missing import.
type NotEnabledError struct {
	Format Format
}

func (e *NotEnabledError) Error() string {
	return fmt.Sprintf("structfile: %s support is not enabled (import the codec%s package)", e.Format, e.Format)
}

// DecodeError wraps a format library's error when file contents could not be
// decoded into the target value.
type DecodeError struct {
	Format Format
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("structfile: decode %s: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError wraps a format library's error when a value could not be
// encoded.
type EncodeError struct {
	Format Format
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("structfile: encode %s: %v", e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
