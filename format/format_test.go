package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/stubber/missing"
)

func sampleClasses() []*missing.Class {
	r := missing.NewRegistry("libgcj.jar")
	frame := r.Resolve("java.awt.Frame")
	frame.ClassSymbol = true
	frame.AddConstructor(missing.Signature{"java.lang.String"})
	frame.AddMethod("setTitle", missing.Signature{"java.lang.String"})
	frame.AddMethod("pack", missing.Signature{})
	frame.AddField("state")
	r.Resolve("java.awt.Frame$1").AddMethod("run", missing.Signature{})
	return r.Classes()
}

func TestTextEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextEncoder(&buf).Encode(sampleClasses()))

	want := `class java.awt.Frame (class symbol)
  Frame(java.lang.String)
  setTitle(java.lang.String)
  pack()
  field state
  class java.awt.Frame$1
    run()
`
	assert.Equal(t, want, buf.String())
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONEncoder(&buf).Encode(sampleClasses()))

	var doc document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Classes, 1)

	frame := doc.Classes[0]
	assert.Equal(t, "java.awt.Frame", frame.Name)
	assert.Equal(t, "Frame", frame.SimpleName)
	assert.Equal(t, "libgcj.jar", frame.Archive)
	assert.True(t, frame.ClassSymbol)
	assert.Equal(t, [][]string{{"java.lang.String"}}, frame.Constructors)
	assert.Equal(t, []method{
		{Name: "setTitle", Args: []string{"java.lang.String"}},
		{Name: "pack", Args: []string{}},
	}, frame.Methods)
	require.Len(t, frame.InnerClasses, 1)
	assert.Equal(t, "1", frame.InnerClasses[0].SimpleName)
}

func TestTOMLEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTOMLEncoder(&buf).Encode(sampleClasses()))

	var doc document
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Classes, 1)
	assert.Equal(t, []string{"state"}, doc.Classes[0].Fields)
	assert.Equal(t, "java.awt.Frame$1", doc.Classes[0].InnerClasses[0].Name)
}

func TestYAMLEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLEncoder(&buf).Encode(sampleClasses()))

	var doc document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Classes, 1)
	assert.Equal(t, "setTitle", doc.Classes[0].Methods[0].Name)
}

func TestNewEncoder(t *testing.T) {
	for _, name := range []string{"", "text", "json", "toml", "yaml"} {
		enc, err := NewEncoder(name, &bytes.Buffer{})
		assert.NoError(t, err, name)
		assert.NotNil(t, enc, name)
	}

	_, err := NewEncoder("xml", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestEncoders_EmptyModel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextEncoder(&buf).Encode(nil))
	assert.Empty(t, buf.String())

	buf.Reset()
	require.NoError(t, NewJSONEncoder(&buf).Encode(nil))
	assert.JSONEq(t, `{"classes": []}`, buf.String())
}
