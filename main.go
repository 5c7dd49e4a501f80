package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/temirov/gitfacade/cmd/cli"
	"github.com/temirov/gitfacade/internal/execshell"
)

const (
	exitErrorTemplateConstant = "%s\n"
	defaultFailureExitCode    = 1
)

// main executes the gitfacade command-line application. A failing tool's exit code is passed through.
func main() {
	executionError := cli.Execute()
	if executionError == nil {
		return
	}

	fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, strings.TrimRight(executionError.Error(), "\n"))

	var commandFailure execshell.CommandFailedError
	if errors.As(executionError, &commandFailure) && commandFailure.Result.ExitCode > 0 {
		os.Exit(commandFailure.Result.ExitCode)
	}
	os.Exit(defaultFailureExitCode)
}
