package codecyaml

import (
	"bytes"

	"github.com/Azhovan/structfile"
	"gopkg.in/yaml.v3"
)

func init() {
	structfile.Register(New(Options{}))
}

// Options configures YAML encoding behavior.
type Options struct {
	// Indent is the number of spaces per nesting level.
	// Zero uses the yaml.v3 default (4).
	Indent int
}

type yamlCodec struct {
	opts Options
}

// New creates a YAML codec. Importing the package already registers one with
// default options; New is for custom options or explicit registries.
func New(opts Options) structfile.Codec {
	return &yamlCodec{opts: opts}
}

func (c *yamlCodec) Format() structfile.Format {
	return structfile.FormatYAML
}

func (c *yamlCodec) Extensions() []string {
	return []string{"yaml", "yml"}
}

func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	if c.opts.Indent == 0 {
		return yaml.Marshal(v)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(c.opts.Indent)
	if err := enc.Encode(v); err != nil {
		enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
