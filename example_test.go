package structfile_test

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Azhovan/structfile"

	_ "github.com/Azhovan/structfile/codecjson"
	_ "github.com/Azhovan/structfile/codecyaml"
)

// Example demonstrates writing a value to one format and reading it back
// from another, with the encoding chosen by the file extension.
func Example() {
	type Server struct {
		Host string `json:"host" yaml:"host"`
		Port int    `json:"port" yaml:"port"`
	}

	dir, err := os.MkdirTemp("", "structfile-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	cfg := Server{Host: "localhost", Port: 8080}

	if err := structfile.WriteFile(filepath.Join(dir, "server.yaml"), cfg); err != nil {
		log.Fatal(err)
	}

	loaded, err := structfile.ReadFile[Server](filepath.Join(dir, "server.yaml"))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Host: %s\n", loaded.Host)
	fmt.Printf("Port: %d\n", loaded.Port)

	// Output:
	// Host: localhost
	// Port: 8080
}

// ExampleWriteFile_pretty demonstrates indented output for formats that
// have a distinct pretty form.
func ExampleWriteFile_pretty() {
	type Person struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	dir, err := os.MkdirTemp("", "structfile-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "person.json")
	if err := structfile.WriteFile(path, Person{ID: 1337, Name: "John Doe"}, structfile.Pretty()); err != nil {
		log.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))

	// Output:
	// {
	//   "id": 1337,
	//   "name": "John Doe"
	// }
}

// ExampleRegistry_Resolve demonstrates the error taxonomy of format
// resolution: an unrecognized extension versus a known format that was
// never enabled.
func ExampleRegistry_Resolve() {
	reg := structfile.NewRegistry()

	_, err := reg.Resolve("report.csv")
	var unsupported *structfile.UnsupportedFormatError
	fmt.Println(errors.As(err, &unsupported))

	_, err = reg.Resolve("config.toml")
	var notEnabled *structfile.NotEnabledError
	fmt.Println(errors.As(err, &notEnabled))

	// Output:
	// true
	// true
}
