// Package codectoml enables TOML file support for structfile, backed by
// github.com/pelletier/go-toml/v2.
//
// Import it for its side effect to register the format:
//
//	import _ "github.com/Azhovan/structfile/codectoml"
package codectoml
