package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/stubber/missing"
)

type JSONEncoder struct {
	w       io.Writer
	classes []*missing.Class
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(classes []*missing.Class) error {
	e.classes = classes
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(buildDocument(e.classes), "", "  ")
}
