package codectoml

import (
	"bytes"

	"github.com/Azhovan/structfile"
	"github.com/pelletier/go-toml/v2"
)

func init() {
	structfile.Register(New(Options{}))
}

// Options configures TOML encoding behavior.
type Options struct {
	// InlineTables emits tables inline ({a = 1}) instead of as sections.
	InlineTables bool
}

type tomlCodec struct {
	opts Options
}

// New creates a TOML codec. Importing the package already registers one with
// default options; New is for custom options or explicit registries.
func New(opts Options) structfile.Codec {
	return &tomlCodec{opts: opts}
}

func (c *tomlCodec) Format() structfile.Format {
	return structfile.FormatTOML
}

func (c *tomlCodec) Extensions() []string {
	return []string{"toml"}
}

func (c *tomlCodec) Marshal(v any) ([]byte, error) {
	if !c.opts.InlineTables {
		return toml.Marshal(v)
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetTablesInline(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *tomlCodec) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}
