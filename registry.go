package structfile

import (
	"strings"
	"sync"

	"github.com/Azhovan/structfile/internal/fileext"
)

// Format identifies one of the supported structured-data encodings.
type Format string

// Canonical format names. A format is only usable after its codec package has
// been imported.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// knownExtensions maps every extension the resolver understands to its
// canonical format, independent of which codecs are actually registered.
// A known extension without a registered codec resolves to NotEnabledError,
// never to UnsupportedFormatError.
var knownExtensions = map[string]Format{
	"json": FormatJSON,
	"toml": FormatTOML,
	"xml":  FormatXML,
	"yaml": FormatYAML,
	"yml":  FormatYAML,
}

// Registry maps file extensions to registered codecs.
// The zero value is not usable; create one with NewRegistry.
// Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec
}

// NewRegistry creates an empty registry. Most callers want DefaultRegistry
// instead, which codec packages populate on import; an explicit registry is
// useful to restrict the formats a particular call site accepts.
func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Codec),
	}
}

// Register makes c available for every extension it claims.
// Registering a second codec for the same extension replaces the first.
func (r *Registry) Register(c Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ext := range c.Extensions() {
		r.codecs[strings.ToLower(ext)] = c
	}
}

// Lookup returns the codec registered for ext. A leading dot is allowed and
// matching is case-insensitive. Returns NotEnabledError for a known format
// with no registered codec, UnsupportedFormatError otherwise.
func (r *Registry) Lookup(ext string) (Codec, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))

	r.mu.RLock()
	c, ok := r.codecs[ext]
	r.mu.RUnlock()
	if ok {
		return c, nil
	}

	if format, known := knownExtensions[ext]; known {
		return nil, &NotEnabledError{Format: format}
	}
	return nil, &UnsupportedFormatError{Ext: ext}
}

// Resolve selects the codec for path based on its extension. Only the final
// dot-suffix of the last path element counts ("backup.tar.json" is JSON) and
// matching is case-insensitive (".JSON" equals ".json"). A path without an
// extension fails with UnsupportedFormatError.
func (r *Registry) Resolve(path string) (Codec, error) {
	ext := fileext.Normalize(path)
	if ext == "" {
		return nil, &UnsupportedFormatError{}
	}
	return r.Lookup(ext)
}

// DefaultRegistry is the registry codec packages register with on import.
var DefaultRegistry = NewRegistry()

// Register adds c to the default registry.
func Register(c Codec) {
	DefaultRegistry.Register(c)
}

// Lookup finds a codec by extension in the default registry.
func Lookup(ext string) (Codec, error) {
	return DefaultRegistry.Lookup(ext)
}

// Resolve selects a codec for path from the default registry.
func Resolve(path string) (Codec, error) {
	return DefaultRegistry.Resolve(path)
}
