package format

import (
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/dhamidi/stubber/missing"
)

type TOMLEncoder struct {
	w       io.Writer
	classes []*missing.Class
}

func NewTOMLEncoder(w io.Writer) *TOMLEncoder {
	return &TOMLEncoder{w: w}
}

func (e *TOMLEncoder) Encode(classes []*missing.Class) error {
	e.classes = classes
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TOMLEncoder) MarshalText() ([]byte, error) {
	return toml.Marshal(buildDocument(e.classes))
}
