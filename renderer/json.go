package renderer

import (
	"encoding/json"
	"io"
)

// JSONRenderer renders results in JSON format.
type JSONRenderer struct{}

func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(results []*Result, output io.Writer) error {
	return json.NewEncoder(output).Encode(results)
}

func (r *JSONRenderer) Format() string {
	return "json"
}
