package structfile

import (
	"fmt"
	"os"

	"github.com/google/renameio"
)

// WriteFile encodes v and writes it to path, creating or truncating the
// file. The encoding is chosen by the destination path's extension (see
// Registry.Resolve).
//
// By default the write is not atomic: if it fails midway the destination may
// be left truncated or partially written. Pass Atomic() to write through a
// temporary file and rename it into place instead.
//
// Failures are typed: format resolution errors propagate unchanged,
// unencodable values return an EncodeError wrapping the format library's
// error, and file-system failures return the wrapped OS error.
func WriteFile[T any](path string, v T, opts ...Option) error {
	cfg := applyOptions(opts)

	codec, err := cfg.registry.Resolve(path)
	if err != nil {
		return err
	}

	data, err := encode(codec, v, cfg.pretty)
	if err != nil {
		return &EncodeError{Format: codec.Format(), Err: err}
	}

	if cfg.atomic {
		err = renameio.WriteFile(path, data, cfg.mode)
	} else {
		err = os.WriteFile(path, data, cfg.mode)
	}
	if err != nil {
		return fmt.Errorf("structfile: write %s: %w", path, err)
	}
	return nil
}

func encode(codec Codec, v any, pretty bool) ([]byte, error) {
	if pretty {
		if im, ok := codec.(IndentMarshaler); ok {
			return im.MarshalIndent(v)
		}
	}
	return codec.Marshal(v)
}
