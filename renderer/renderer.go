package renderer

import (
	"fmt"
	"io"

	"golang.org/x/text/message"
)

// Renderer defines the interface for rendering operation results in different formats.
type Renderer interface {
	// Render takes a list of results and outputs them in the desired format to the provided writer.
	Render(results []*Result, output io.Writer) error

	// Format returns the name of the output format (e.g., "json", "text").
	Format() string
}

// New returns the renderer for format.
func New(format string, printer *message.Printer) (Renderer, error) {
	switch format {
	case "text", "":
		return NewTextRenderer(printer), nil
	case "json":
		return NewJSONRenderer(), nil
	}
	return nil, fmt.Errorf("invalid format: %s", format)
}
