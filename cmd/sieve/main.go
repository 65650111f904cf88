package main

import (
	"fmt"
	"os"

	"github.com/roach88/sieve/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		code := cli.GetExitCode(err)
		// No-match is a normal outcome already reported by the command;
		// everything else goes to stderr.
		if code != cli.ExitNoMatch {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(code)
	}
}
