package cmd

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/eln-tools/labfolder-go/internal/version"
)

// Main dispatches args to a subcommand and returns the process exit code.
func Main(args []string) int {
	// Usage and log lines carry the binary name, not the invocation path.
	cliName := filepath.Base(args[0])

	log := hclog.New(&hclog.LoggerOptions{
		Name: cliName,
	})

	// Every version spelling goes through the version subcommand.
	if len(args) == 2 {
		switch args[1] {
		case "-v", "-version", "--version":
			args = []string{cliName, "version"}
		}
	}

	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	initCommands(log, ui)

	c := &cli.CLI{
		Name:     cliName,
		Args:     args[1:],
		Version:  version.Version,
		Commands: Commands,
	}

	exitCode, err := c.Run()
	if err != nil {
		panic(err)
	}

	return exitCode
}
