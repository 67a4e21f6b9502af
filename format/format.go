// Package format renders reconstructed missing classes for stub
// generators and for people.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/stubber/missing"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(classes []*missing.Class) error
}

// NewEncoder returns the encoder for format: text, json, toml or yaml.
func NewEncoder(format string, w io.Writer) (Encoder, error) {
	switch format {
	case "text", "":
		return NewTextEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "toml":
		return NewTOMLEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

type document struct {
	Classes []class `json:"classes" toml:"classes" yaml:"classes"`
}

type class struct {
	Name         string     `json:"name" toml:"name" yaml:"name"`
	SimpleName   string     `json:"simpleName" toml:"simpleName" yaml:"simpleName"`
	Archive      string     `json:"archive,omitempty" toml:"archive,omitempty" yaml:"archive,omitempty"`
	ClassSymbol  bool       `json:"classSymbol,omitempty" toml:"classSymbol,omitempty" yaml:"classSymbol,omitempty"`
	Constructors [][]string `json:"constructors,omitempty" toml:"constructors,omitempty" yaml:"constructors,omitempty"`
	Methods      []method   `json:"methods,omitempty" toml:"methods,omitempty" yaml:"methods,omitempty"`
	Fields       []string   `json:"fields,omitempty" toml:"fields,omitempty" yaml:"fields,omitempty"`
	InnerClasses []class    `json:"innerClasses,omitempty" toml:"innerClasses,omitempty" yaml:"innerClasses,omitempty"`
}

type method struct {
	Name string   `json:"name" toml:"name" yaml:"name"`
	Args []string `json:"args" toml:"args" yaml:"args"`
}

func buildDocument(classes []*missing.Class) document {
	doc := document{Classes: make([]class, len(classes))}
	for i, c := range classes {
		doc.Classes[i] = buildClass(c)
	}
	return doc
}

func buildClass(c *missing.Class) class {
	data := class{
		Name:        c.Name,
		SimpleName:  c.SimpleName(),
		Archive:     c.Archive,
		ClassSymbol: c.ClassSymbol,
		Fields:      c.Fields(),
	}
	for _, sig := range c.Constructors() {
		data.Constructors = append(data.Constructors, []string(sig))
	}
	for _, name := range c.MethodNames() {
		for _, sig := range c.Methods(name) {
			data.Methods = append(data.Methods, method{Name: name, Args: []string(sig)})
		}
	}
	for _, ic := range c.InnerClasses() {
		data.InnerClasses = append(data.InnerClasses, buildClass(ic))
	}
	return data
}
