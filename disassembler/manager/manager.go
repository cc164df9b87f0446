// Package manager builds the disassembler selected by a profile.
package manager

import (
	"github.com/simplewhp/disasm-ami/disassembler"
	"github.com/simplewhp/disasm-ami/disassembler/builtin"
	"github.com/simplewhp/disasm-ami/disassembler/ndisasm"
	"github.com/simplewhp/disasm-ami/profile"
)

func NewDisassembler(prof *profile.Profile) (disassembler.Disassembler, error) {
	if err := prof.Validate(); err != nil {
		return nil, err
	}
	typ, err := disassembler.ParseType(prof.Disassembler)
	if err != nil {
		return nil, err
	}

	switch typ {
	case disassembler.TypeBuiltin:
		b := builtin.New(prof.Bits)
		b.Origin = prof.Origin
		b.Skip = prof.Skip
		return b, nil
	default:
		n := ndisasm.New(prof.Binary, prof.Bits)
		n.Origin = prof.Origin
		n.Skip = prof.Skip
		n.Args = prof.Args
		return n, nil
	}
}
