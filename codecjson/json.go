package codecjson

import (
	"encoding/json"

	"github.com/Azhovan/structfile"
)

func init() {
	structfile.Register(New(Options{}))
}

// Options configures JSON encoding behavior.
type Options struct {
	// Indent is the indentation used under structfile.Pretty().
	// Default: two spaces.
	Indent string
}

type jsonCodec struct {
	opts Options
}

// New creates a JSON codec. Importing the package already registers one with
// default options; New is for custom options or explicit registries.
func New(opts Options) structfile.Codec {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	return &jsonCodec{opts: opts}
}

func (c *jsonCodec) Format() structfile.Format {
	return structfile.FormatJSON
}

func (c *jsonCodec) Extensions() []string {
	return []string{"json"}
}

func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// MarshalIndent implements structfile.IndentMarshaler.
func (c *jsonCodec) MarshalIndent(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", c.opts.Indent)
}

func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
