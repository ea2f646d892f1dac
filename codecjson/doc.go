// Package codecjson enables JSON file support for structfile.
//
// Import it for its side effect to register the format:
//
//	import _ "github.com/Azhovan/structfile/codecjson"
//
// Use New to build a codec with custom options for an explicit registry.
package codecjson
