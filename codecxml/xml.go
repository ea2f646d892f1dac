package codecxml

import (
	"encoding/xml"

	"github.com/Azhovan/structfile"
)

func init() {
	structfile.Register(New(Options{}))
}

// Options configures XML encoding behavior.
type Options struct {
	// Indent is the indentation used under structfile.Pretty().
	// Default: two spaces.
	Indent string

	// Header prepends the standard XML declaration to encoded output.
	Header bool
}

type xmlCodec struct {
	opts Options
}

// New creates an XML codec. Importing the package already registers one with
// default options; New is for custom options or explicit registries.
func New(opts Options) structfile.Codec {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	return &xmlCodec{opts: opts}
}

func (c *xmlCodec) Format() structfile.Format {
	return structfile.FormatXML
}

func (c *xmlCodec) Extensions() []string {
	return []string{"xml"}
}

func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return c.withHeader(data), nil
}

// MarshalIndent implements structfile.IndentMarshaler.
func (c *xmlCodec) MarshalIndent(v any) ([]byte, error) {
	data, err := xml.MarshalIndent(v, "", c.opts.Indent)
	if err != nil {
		return nil, err
	}
	return c.withHeader(data), nil
}

func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}

func (c *xmlCodec) withHeader(data []byte) []byte {
	if !c.opts.Header {
		return data
	}
	return append([]byte(xml.Header), data...)
}
