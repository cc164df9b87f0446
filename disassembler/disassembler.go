// Package disassembler defines the collaborator that turns a raw binary image
// into disassembly text.
package disassembler

import (
	"context"
	"fmt"
)

// Type names a disassembler backend.
type Type string

const (
	TypeNdisasm Type = "ndisasm"
	TypeBuiltin Type = "builtin"
)

// ParseType validates a backend name.
func ParseType(name string) (Type, error) {
	switch t := Type(name); t {
	case TypeNdisasm, TypeBuiltin:
		return t, nil
	default:
		return "", fmt.Errorf("disassembler not supported: %q", name)
	}
}

// Result is the captured outcome of a single disassembler run.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int // non-zero when the disassembler ran and reported failure
}

// Failed reports whether the disassembler exited with a non-zero status.
func (r *Result) Failed() bool {
	return r.ExitCode != 0
}

// Disassembler disassembles the file at target.
//
// A returned error means the disassembler could not be run at all. A run that
// completed with a failure status is reported through Result.ExitCode.
type Disassembler interface {
	Disassemble(ctx context.Context, target string) (*Result, error)
}

// Func adapts a plain function to the Disassembler interface.
type Func func(ctx context.Context, target string) (*Result, error)

func (f Func) Disassemble(ctx context.Context, target string) (*Result, error) {
	return f(ctx, target)
}

// Describer is implemented by disassemblers that can report what they run.
type Describer interface {
	Describe(target string) string
}
