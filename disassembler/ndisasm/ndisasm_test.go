package ndisasm

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBinary writes a shell script standing in for ndisasm.
func fakeBinary(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "ndisasm")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0700))
	return path
}

func TestCommandArgs(t *testing.T) {
	n := New("ndisasm", 16)
	assert.Equal(t, []string{"-b", "16", "bios.bin"}, n.CommandArgs("bios.bin"))

	n.Origin = 0xf0000
	n.Skip = 16
	n.Args = []string{"-p", "intel"}
	assert.Equal(t,
		[]string{"-b", "16", "-o", "0xf0000", "-e", "16", "-p", "intel", "bios.bin"},
		n.CommandArgs("bios.bin"))
	assert.Equal(t, "ndisasm -b 16 -o 0xf0000 -e 16 -p intel bios.bin", n.Describe("bios.bin"))
}

func TestDisassembleCapturesStdout(t *testing.T) {
	bin := fakeBinary(t, `echo "00000000  FA  cli"
echo "args: $*"
`)
	res, err := New(bin, 16).Disassemble(context.Background(), "bios.bin")
	require.NoError(t, err)

	assert.False(t, res.Failed())
	assert.Equal(t, "00000000  FA  cli\nargs: -b 16 bios.bin\n", string(res.Stdout))
	assert.Empty(t, res.Stderr)
}

func TestDisassembleFailure(t *testing.T) {
	bin := fakeBinary(t, `echo "bad opcode" >&2
exit 2
`)
	res, err := New(bin, 16).Disassemble(context.Background(), "bios.bin")
	require.NoError(t, err)

	assert.True(t, res.Failed())
	assert.Equal(t, 2, res.ExitCode)
	assert.Equal(t, "bad opcode\n", string(res.Stderr))
}

func TestDisassembleMissingBinary(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-ndisasm")
	_, err := New(missing, 16).Disassemble(context.Background(), "bios.bin")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run")
}

func TestDisassembleKilledBySignal(t *testing.T) {
	bin := fakeBinary(t, `echo "partial" >&2
kill -9 $$
`)
	res, err := New(bin, 16).Disassemble(context.Background(), "bios.bin")
	require.NoError(t, err)

	assert.True(t, res.Failed())
	assert.Equal(t, 128+9, res.ExitCode)
	assert.Equal(t, "partial\n", string(res.Stderr))
}
