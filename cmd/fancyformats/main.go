package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/fancyformats/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	// Commands and the root flag error function print their own errors.
	// Unknown commands and bare exit errors still need a message.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	} else if exitErr.Code == cli.ExitCommandError && exitErr.Err == nil {
		fmt.Fprintln(os.Stderr, "Error:", exitErr.Message)
	}
	os.Exit(cli.GetExitCode(err))
}
