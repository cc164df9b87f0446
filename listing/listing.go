// Package listing holds disassembly output as an ordered list of lines.
package listing

import "strings"

// Listing is the disassembly of one source file.
type Listing struct {
	Source string
	Bits   int
	Lines  []string
}

// Split breaks raw disassembler output into lines. A trailing newline does not
// produce an empty final line and CRLF endings are accepted.
func Split(out []byte) []string {
	s := strings.TrimSuffix(string(out), "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// New builds a listing from raw disassembler output.
func New(source string, bits int, out []byte) *Listing {
	return &Listing{
		Source: source,
		Bits:   bits,
		Lines:  Split(out),
	}
}

// Truncate keeps at most limit lines. A nil limit keeps everything; zero or a
// negative limit keeps nothing.
func (l *Listing) Truncate(limit *int) *Listing {
	if limit == nil || *limit >= len(l.Lines) {
		return l
	}
	n := max(*limit, 0)
	return &Listing{
		Source: l.Source,
		Bits:   l.Bits,
		Lines:  l.Lines[:n],
	}
}
