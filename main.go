package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/simplewhp/disasm-ami/cmd"
	"github.com/simplewhp/disasm-ami/disassembler/manager"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cmd.NewApp(manager.NewDisassembler)
	err := app.RunContext(context.Background(), os.Args)

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	if err != nil {
		log.Fatal(err)
	}
}
