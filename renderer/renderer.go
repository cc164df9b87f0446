package renderer

import (
	"fmt"
	"io"

	"github.com/simplewhp/disasm-ami/listing"
)

// Renderer defines the interface for rendering a disassembly listing in different formats.
type Renderer interface {
	// Render writes the listing in the desired format to the provided writer.
	Render(l *listing.Listing, output io.Writer) error

	// Format returns the name of the output format (e.g., "json", "text").
	Format() string
}

// New returns the renderer for format.
func New(format string) (Renderer, error) {
	switch format {
	case "", "text":
		return NewTextRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}
}
