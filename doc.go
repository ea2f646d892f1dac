// Package structfile reads and writes Go values to files in JSON, TOML, XML,
// or YAML format, with the encoding inferred from the file extension.
//
// Quick Start:
//
//	import (
//	    "github.com/Azhovan/structfile"
//
//	    _ "github.com/Azhovan/structfile/codecjson"
//	    _ "github.com/Azhovan/structfile/codectoml"
//	)
//
//	type Person struct {
//	    ID   int    `json:"id" toml:"id"`
//	    Name string `json:"name" toml:"name"`
//	}
//
//	person, err := structfile.ReadFile[Person]("person.json")
//	err = structfile.WriteFile("person.toml", person)
//
// Each format lives in its own codec package (codecjson, codectoml, codecxml,
// codecyaml); importing a codec package links that format into the binary and
// registers it with the default registry. Formats that were never imported
// fail with NotEnabledError, unrecognized extensions with
// UnsupportedFormatError.
//
// See example_test.go and the examples directory for detailed usage.
package structfile
