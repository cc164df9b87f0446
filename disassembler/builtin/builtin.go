// Package builtin decodes x86 machine code in-process and prints it in the
// same column layout as ndisasm.
package builtin

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/simplewhp/disasm-ami/disassembler"
	"golang.org/x/arch/x86/x86asm"
)

type Builtin struct {
	Bits   int
	Origin uint64
	Skip   uint64
}

func New(bits int) *Builtin {
	return &Builtin{Bits: bits}
}

func (b *Builtin) Disassemble(_ context.Context, target string) (*disassembler.Result, error) {
	code, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", target, err)
	}
	if b.Skip > uint64(len(code)) {
		return &disassembler.Result{
			Stderr:   []byte(fmt.Sprintf("skip offset %d is past end of file (%d bytes)\n", b.Skip, len(code))),
			ExitCode: 1,
		}, nil
	}
	return &disassembler.Result{Stdout: b.decode(code[b.Skip:])}, nil
}

func (b *Builtin) decode(code []byte) []byte {
	var out bytes.Buffer
	pc := b.Origin
	for len(code) > 0 {
		inst, err := x86asm.Decode(code, b.Bits)
		size := inst.Len
		var text string
		// truncated input decodes as a bare prefix with no opcode
		if err != nil || size == 0 || inst.Op == 0 {
			size = 1
			text = fmt.Sprintf("db 0x%02x", code[0])
		} else {
			text = strings.ToLower(x86asm.IntelSyntax(inst, pc, nil))
		}
		writeLine(&out, pc, code[:size], text)
		code = code[size:]
		pc += uint64(size)
	}
	return out.Bytes()
}

// writeLine mirrors ndisasm: address, hex bytes padded to 18 columns, text.
func writeLine(out *bytes.Buffer, pc uint64, raw []byte, text string) {
	fmt.Fprintf(out, "%08X  %-18X%s\n", pc, raw, text)
}

func (b *Builtin) Describe(target string) string {
	return fmt.Sprintf("builtin x86 decoder (%d-bit, origin 0x%x, skip %d) %s", b.Bits, b.Origin, b.Skip, target)
}
