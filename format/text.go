package format

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/stubber/missing"
)

// TextEncoder prints classes as an indented outline:
//
//	class java.awt.Frame
//	  Frame(java.lang.String)
//	  setTitle(java.lang.String)
//	  field state
//	  class java.awt.Frame$1
type TextEncoder struct {
	w       io.Writer
	classes []*missing.Class
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(classes []*missing.Class) error {
	e.classes = classes
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	for _, c := range e.classes {
		writeClass(&buf, c, 0)
	}
	return buf.Bytes(), nil
}

func writeClass(buf *bytes.Buffer, c *missing.Class, depth int) {
	indent := strings.Repeat("  ", depth)
	member := indent + "  "

	fmt.Fprintf(buf, "%sclass %s", indent, c.Name)
	if c.ClassSymbol {
		buf.WriteString(" (class symbol)")
	}
	buf.WriteByte('\n')

	for _, sig := range c.Constructors() {
		fmt.Fprintf(buf, "%s%s(%s)\n", member, c.SimpleName(), sig)
	}
	for _, name := range c.MethodNames() {
		for _, sig := range c.Methods(name) {
			fmt.Fprintf(buf, "%s%s(%s)\n", member, name, sig)
		}
	}
	for _, field := range c.Fields() {
		fmt.Fprintf(buf, "%sfield %s\n", member, field)
	}
	for _, ic := range c.InnerClasses() {
		writeClass(buf, ic, depth+1)
	}
}
