// Package ndisasm runs the NASM disassembler as a subprocess.
package ndisasm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"syscall"

	"github.com/simplewhp/disasm-ami/disassembler"
)

type Ndisasm struct {
	Binary string
	Bits   int
	Origin uint64
	Skip   uint64
	Args   []string
}

func New(binary string, bits int) *Ndisasm {
	return &Ndisasm{
		Binary: binary,
		Bits:   bits,
	}
}

// CommandArgs returns the arguments passed to the binary for target.
func (n *Ndisasm) CommandArgs(target string) []string {
	args := []string{"-b", strconv.Itoa(n.Bits)}
	if n.Origin != 0 {
		args = append(args, "-o", fmt.Sprintf("0x%x", n.Origin))
	}
	if n.Skip != 0 {
		args = append(args, "-e", strconv.FormatUint(n.Skip, 10))
	}
	args = append(args, n.Args...)
	return append(args, target)
}

func (n *Ndisasm) Disassemble(ctx context.Context, target string) (*disassembler.Result, error) {
	var stdout, stderr bytes.Buffer

	//nolint:gosec
	cmd := exec.CommandContext(ctx, n.Binary, n.CommandArgs(target)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, fmt.Errorf("failed to run %s: %w", n.Binary, err)
	}

	res := &disassembler.Result{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if exitErr != nil {
		res.ExitCode = exitCode(exitErr)
	}
	return res, nil
}

// exitCode follows the shell convention of 128+N for a process killed by
// signal N, where ExitError.ExitCode reports -1.
func exitCode(exitErr *exec.ExitError) int {
	if code := exitErr.ExitCode(); code >= 0 {
		return code
	}
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return 1
}

// Describe returns the command line run for target.
func (n *Ndisasm) Describe(target string) string {
	return strings.Join(append([]string{n.Binary}, n.CommandArgs(target)...), " ")
}
