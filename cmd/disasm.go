// Package cmd defines the command line interface of disasm-ami.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/simplewhp/disasm-ami/disassembler"
	"github.com/simplewhp/disasm-ami/listing"
	"github.com/simplewhp/disasm-ami/profile"
	"github.com/simplewhp/disasm-ami/renderer"
	"github.com/urfave/cli/v2"
)

const usage = "Usage: %s <ami_8088_bios.bin> [lines]\n"

var digitGroups = regexp.MustCompile(`^[+-]?[0-9]+(_[0-9]+)*$`)

var (
	ConfigFlag = &cli.PathFlag{
		Name:     "config",
		Usage:    "Path to a YAML disassembler profile",
		Required: false,
	}
	DisassemblerFlag = &cli.StringFlag{
		Name:     "disassembler",
		Usage:    "Disassembler backend. Options: ndisasm, builtin",
		Required: false,
	}
	BitsFlag = &cli.IntFlag{
		Name:        "bits",
		Usage:       "Addressing mode. Options: 16, 32, 64",
		Required:    false,
		DefaultText: "16",
	}
	FormatFlag = &cli.StringFlag{
		Name:     "format",
		Usage:    "format of the output. Options: text, json",
		Required: false,
		Value:    "text",
	}
	OutputPathFlag = &cli.PathFlag{
		Name:     "output",
		Usage:    "output file path for the listing. Default: stdout",
		Required: false,
	}
	VerboseFlag = &cli.BoolFlag{
		Name:     "verbose",
		Usage:    "log the disassembler invocation to stderr",
		Required: false,
		Value:    false,
	}
)

// Factory builds the disassembler described by a profile.
type Factory func(prof *profile.Profile) (disassembler.Disassembler, error)

// NewApp returns the disasm-ami application. Exit codes are carried by the
// returned cli.ExitCoder; the caller decides how to terminate.
func NewApp(factory Factory) *cli.App {
	app := cli.NewApp()
	app.Name = "disasm-ami"
	app.Usage = "Print the 16-bit disassembly of a raw BIOS image"
	app.Description = "Runs ndisasm on a ROM/BIOS dump and prints the first [lines] lines of its output"
	app.ArgsUsage = "<path> [lines]"
	app.HideHelpCommand = true
	app.Flags = []cli.Flag{
		ConfigFlag,
		DisassemblerFlag,
		BitsFlag,
		FormatFlag,
		OutputPathFlag,
		VerboseFlag,
	}
	app.Action = CreateDisassembleAction(factory)
	app.ExitErrHandler = printExitMessage
	return app
}

func CreateDisassembleAction(factory Factory) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		return disassemble(ctx, factory)
	}
}

func disassemble(ctx *cli.Context, factory Factory) error {
	args := ctx.Args()
	if !args.Present() {
		_, _ = fmt.Fprintf(ctx.App.Writer, usage, ctx.App.Name)
		return cli.Exit("", 1)
	}
	path := args.First()

	limit, err := parseLimit(args)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if _, err := os.Stat(path); err != nil {
		return cli.Exit(fmt.Sprintf("File %s not found", path), 1)
	}

	prof, err := resolveProfile(ctx)
	if err != nil {
		return cli.Exit(fmt.Sprintf("error loading profile: %v", err), 1)
	}
	rend, err := renderer.New(ctx.String(FormatFlag.Name))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	dis, err := factory(prof)
	if err != nil {
		return cli.Exit(fmt.Sprintf("error creating disassembler: %v", err), 1)
	}
	logger := newLogger(ctx)
	if d, ok := dis.(disassembler.Describer); ok {
		logger.Printf("running %s", d.Describe(path))
	}

	res, err := dis.Disassemble(ctx.Context, path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("error disassembling the file: %v", err), 1)
	}
	if res.Failed() {
		logger.Printf("disassembler exited with status %d", res.ExitCode)
		_, _ = ctx.App.ErrWriter.Write(res.Stderr)
		return cli.Exit("", exitStatus(res.ExitCode))
	}

	l := listing.New(path, prof.Bits, res.Stdout).Truncate(limit)
	logger.Printf("printing %d lines", len(l.Lines))
	if err := writeListing(ctx, l, rend); err != nil {
		return cli.Exit(fmt.Sprintf("unable to write listing: %v", err), 1)
	}
	return nil
}

// parseLimit reads the optional second positional argument.
func parseLimit(args cli.Args) (*int, error) {
	if args.Len() < 2 {
		return nil, nil
	}
	n, err := parseInt(args.Get(1))
	if err != nil {
		return nil, errors.New("Second argument must be an integer (number of lines).")
	}
	return &n, nil
}

// parseInt accepts a decimal integer with optional sign, surrounding
// whitespace and single underscores between digits ("1_000").
func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "_") {
		if !digitGroups.MatchString(s) {
			return 0, fmt.Errorf("invalid integer %q", s)
		}
		s = strings.ReplaceAll(s, "_", "")
	}
	return strconv.Atoi(s)
}

// exitStatus keeps a delegate failure distinguishable from success when the
// reported code is not a valid process exit status.
func exitStatus(code int) int {
	if code < 0 {
		return 1
	}
	return code
}

// resolveProfile layers flags over the config file over the defaults.
func resolveProfile(ctx *cli.Context) (*profile.Profile, error) {
	prof := profile.Default()
	if path := ctx.Path(ConfigFlag.Name); path != "" {
		var err error
		prof, err = profile.LoadProfile(path)
		if err != nil {
			return nil, err
		}
	}
	if ctx.IsSet(DisassemblerFlag.Name) {
		prof.Disassembler = ctx.String(DisassemblerFlag.Name)
	}
	if ctx.IsSet(BitsFlag.Name) {
		prof.Bits = ctx.Int(BitsFlag.Name)
	}
	if err := prof.Validate(); err != nil {
		return nil, err
	}
	return prof, nil
}

// writeListing outputs the listing in the selected format.
func writeListing(ctx *cli.Context, l *listing.Listing, rend renderer.Renderer) error {
	outputPath := ctx.Path(OutputPathFlag.Name)
	if outputPath == "" {
		return rend.Render(l, ctx.App.Writer)
	}
	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("unable to determine absolute path: %w", err)
	}
	file, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to open output file: %w", err)
	}
	return renderAndClose(rend, l, file)
}

// renderAndClose renders into output and closes it, reporting a close failure
// when rendering itself succeeded.
func renderAndClose(rend renderer.Renderer, l *listing.Listing, output io.WriteCloser) (err error) {
	defer func() {
		if cerr := output.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("unable to close output file: %w", cerr)
		}
	}()
	return rend.Render(l, output)
}

func newLogger(ctx *cli.Context) *log.Logger {
	if !ctx.Bool(VerboseFlag.Name) {
		return log.New(io.Discard, "", 0)
	}
	return log.New(ctx.App.ErrWriter, ctx.App.Name+": ", 0)
}

// printExitMessage writes the message of an exit error, if any, to the
// application's error stream.
func printExitMessage(ctx *cli.Context, err error) {
	var exitErr cli.ExitCoder
	if !errors.As(err, &exitErr) {
		return
	}
	w := cli.ErrWriter
	if ctx != nil && ctx.App != nil && ctx.App.ErrWriter != nil {
		w = ctx.App.ErrWriter
	}
	if msg := exitErr.Error(); msg != "" {
		_, _ = fmt.Fprintln(w, msg)
	}
}
