package codecjson_test

import (
	"testing"

	"github.com/Azhovan/structfile"
	"github.com/Azhovan/structfile/codecjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestRegistersOnImport(t *testing.T) {
	codec, err := structfile.Lookup("json")
	require.NoError(t, err)
	assert.Equal(t, structfile.FormatJSON, codec.Format())
}

func TestMarshalUnmarshal(t *testing.T) {
	codec := codecjson.New(codecjson.Options{})

	data, err := codec.Marshal(person{ID: 1337, Name: "John Doe"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 1337, "name": "John Doe"}`, string(data))

	var got person
	require.NoError(t, codec.Unmarshal(data, &got))
	assert.Equal(t, person{ID: 1337, Name: "John Doe"}, got)
}

func TestMarshalIndent_CustomIndent(t *testing.T) {
	codec := codecjson.New(codecjson.Options{Indent: "\t"})

	im, ok := codec.(structfile.IndentMarshaler)
	require.True(t, ok, "JSON codec should implement IndentMarshaler")

	data, err := im.MarshalIndent(person{ID: 1, Name: "a"})
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n\t\"id\": 1")
}
