package renderer

import (
	"encoding/json"
	"io"

	"github.com/simplewhp/disasm-ami/listing"
)

// JSONRenderer renders the listing as a single JSON document.
type JSONRenderer struct{}

type jsonListing struct {
	Source string   `json:"source"`
	Bits   int      `json:"bits"`
	Lines  []string `json:"lines"`
}

func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(l *listing.Listing, output io.Writer) error {
	doc := jsonListing{
		Source: l.Source,
		Bits:   l.Bits,
		Lines:  l.Lines,
	}
	if doc.Lines == nil {
		doc.Lines = []string{}
	}
	return json.NewEncoder(output).Encode(doc)
}

func (r *JSONRenderer) Format() string {
	return "json"
}
