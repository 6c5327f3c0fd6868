package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MacroPower/pathkit/internal/cli"
)

const (
	cmdName = "pathkit"

	shortDesc = "Inspect and manipulate filesystem paths."
	longDesc  = `Inspect and manipulate filesystem paths.

Pathkit operates purely on path strings: nothing is ever checked against the
real filesystem. The path convention is selectable with --platform, so POSIX
and Windows paths can be handled from any host.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
