package format

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/stubber/missing"
)

type YAMLEncoder struct {
	w       io.Writer
	classes []*missing.Class
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(classes []*missing.Class) error {
	e.classes = classes
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	return yaml.Marshal(buildDocument(e.classes))
}
