package structfile

// Codec converts values to and from one encoded representation (JSON, TOML,
// XML, YAML). Implementations live in their own packages and register
// themselves with the default registry on import.
type Codec interface {
	// Format returns the canonical format this codec implements.
	Format() Format

	// Extensions returns the file extensions (without dot, lowercase) this
	// codec claims, e.g. ["yaml", "yml"].
	Extensions() []string

	// Marshal encodes v into its byte representation.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v, which must be a non-nil pointer.
	Unmarshal(data []byte, v any) error
}

// IndentMarshaler is implemented by codecs that have a distinct
// pretty-printed form (JSON, XML). WriteFile uses it when the Pretty option
// is set; codecs without it fall back to Marshal.
type IndentMarshaler interface {
	// MarshalIndent encodes v with human-friendly indentation.
	MarshalIndent(v any) ([]byte, error)
}
