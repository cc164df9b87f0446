// Package renderer provides a way to render a disassembly listing in different formats.
package renderer

import (
	"bufio"
	"io"

	"github.com/simplewhp/disasm-ami/listing"
)

// TextRenderer prints the listing one line at a time, exactly as the
// disassembler produced it.
type TextRenderer struct{}

// NewTextRenderer creates a new instance of TextRenderer.
func NewTextRenderer() Renderer {
	return &TextRenderer{}
}

// Render writes each line followed by a newline.
func (r *TextRenderer) Render(l *listing.Listing, output io.Writer) error {
	w := bufio.NewWriter(output)
	for _, line := range l.Lines {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Format returns the format type.
func (r *TextRenderer) Format() string {
	return "text"
}
