// Package codecyaml enables YAML file support for structfile, backed by
// gopkg.in/yaml.v3. It claims both the .yaml and .yml extensions.
//
// Import it for its side effect to register the format:
//
//	import _ "github.com/Azhovan/structfile/codecyaml"
package codecyaml
