package renderer

import (
	"bytes"
	"testing"

	"github.com/simplewhp/disasm-ami/listing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRenderer(t *testing.T) {
	var out bytes.Buffer
	l := &listing.Listing{Source: "bios.bin", Bits: 16, Lines: []string{"a", "", "b"}}

	require.NoError(t, NewTextRenderer().Render(l, &out))
	assert.Equal(t, "a\n\nb\n", out.String())
}

func TestTextRendererEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewTextRenderer().Render(&listing.Listing{}, &out))
	assert.Empty(t, out.String())
}

func TestJSONRenderer(t *testing.T) {
	var out bytes.Buffer
	l := &listing.Listing{Source: "bios.bin", Bits: 16, Lines: []string{"00000000  FA  cli"}}

	require.NoError(t, NewJSONRenderer().Render(l, &out))
	assert.JSONEq(t, `{"source":"bios.bin","bits":16,"lines":["00000000  FA  cli"]}`, out.String())
}

func TestJSONRendererNoLines(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewJSONRenderer().Render(&listing.Listing{Source: "x", Bits: 16}, &out))
	assert.JSONEq(t, `{"source":"x","bits":16,"lines":[]}`, out.String())
}

func TestNew(t *testing.T) {
	for format, want := range map[string]string{"": "text", "text": "text", "json": "json"} {
		r, err := New(format)
		require.NoError(t, err)
		assert.Equal(t, want, r.Format())
	}

	_, err := New("html")
	assert.EqualError(t, err, "invalid format: html")
}
