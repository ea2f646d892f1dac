// Package codecxml enables XML file support for structfile, backed by the
// standard library's encoding/xml.
//
// Import it for its side effect to register the format:
//
//	import _ "github.com/Azhovan/structfile/codecxml"
//
// encoding/xml only handles struct types (not maps); the element name is the
// struct type name unless overridden with an XMLName field.
package codecxml
