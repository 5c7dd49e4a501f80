package execshell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

const (
	commandLineSeparatorConstant               = " "
	commandFailedFallbackTemplateConstant      = "%s exited with code %d"
	launchFailedTemplateConstant               = "%s could not be started: %s"
	loggerNotConfiguredMessageConstant         = "logger not configured"
	runnerNotConfiguredMessageConstant         = "command runner not configured"
	executableMissingMessageConstant           = "executable path not configured"
	commandLineParseErrorTemplateConstant      = "unable to parse command line %q: %w"
	unknownCommandLabelConstant                = "command"
	commandKindGitStringConstant               = "git"
	commandKindHubStringConstant               = "hub"
	unknownLaunchFailureDescriptionConstant    = "unknown error"
	commandLabelWithSubcommandTemplateConstant = "%s %s"
)

// CommandName is the executable path or name of an external tool.
type CommandName string

// CommandKind identifies which tool family a command belongs to independently of its executable path.
type CommandKind string

// Supported command kinds.
const (
	CommandKindGit CommandKind = CommandKind(commandKindGitStringConstant)
	CommandKindHub CommandKind = CommandKind(commandKindHubStringConstant)
)

// CommandDetails describes a single invocation of an external tool.
type CommandDetails struct {
	Subcommand           string
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
	StandardInput        []byte
}

// ShellCommand pairs an executable with the details of one invocation.
type ShellCommand struct {
	Name    CommandName
	Kind    CommandKind
	Details CommandDetails
}

// ExecutionResult captures the observable results of executing a command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

var (
	// ErrLoggerNotConfigured indicates the executor was constructed without a logger.
	ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)
	// ErrCommandRunnerNotConfigured indicates the executor was constructed without a runner.
	ErrCommandRunnerNotConfigured = errors.New(runnerNotConfiguredMessageConstant)
	// ErrExecutableNotConfigured indicates a command was submitted without an executable path.
	ErrExecutableNotConfigured = errors.New(executableMissingMessageConstant)
)

// CommandLine renders the subcommand followed by the space-joined argument tokens.
func (command ShellCommand) CommandLine() string {
	commandLineParts := make([]string, 0, len(command.Details.Arguments)+1)
	trimmedSubcommand := strings.TrimSpace(command.Details.Subcommand)
	if len(trimmedSubcommand) > 0 {
		commandLineParts = append(commandLineParts, trimmedSubcommand)
	}
	commandLineParts = append(commandLineParts, command.Details.Arguments...)
	return strings.Join(commandLineParts, commandLineSeparatorConstant)
}

// ArgumentVector splits the command line into process arguments using POSIX word rules.
// Quoted tokens become single arguments; nothing is expanded.
func (command ShellCommand) ArgumentVector() ([]string, error) {
	commandLine := command.CommandLine()
	argumentVector, splitError := shellquote.Split(commandLine)
	if splitError != nil {
		return nil, fmt.Errorf(commandLineParseErrorTemplateConstant, commandLine, splitError)
	}
	return argumentVector, nil
}

// Label describes the command for logs and error messages.
func (command ShellCommand) Label() string {
	executable := strings.TrimSpace(string(command.Name))
	if len(executable) == 0 {
		executable = unknownCommandLabelConstant
	}
	commandLine := command.CommandLine()
	if len(commandLine) == 0 {
		return executable
	}
	return fmt.Sprintf(commandLabelWithSubcommandTemplateConstant, executable, commandLine)
}

// CommandFailedError reports a process that exited with a non-zero code.
// Its message is the captured standard error.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error returns the captured standard error verbatim.
func (failure CommandFailedError) Error() string {
	if len(failure.Result.StandardError) == 0 {
		return fmt.Sprintf(commandFailedFallbackTemplateConstant, failure.Command.Label(), failure.Result.ExitCode)
	}
	return failure.Result.StandardError
}

// LaunchFailedError reports a command that never produced an exit code.
type LaunchFailedError struct {
	Command ShellCommand
	Cause   error
}

// Error describes the launch failure.
func (failure LaunchFailedError) Error() string {
	causeDescription := unknownLaunchFailureDescriptionConstant
	if failure.Cause != nil {
		causeDescription = failure.Cause.Error()
	}
	return fmt.Sprintf(launchFailedTemplateConstant, failure.Command.Label(), causeDescription)
}

// Unwrap exposes the underlying cause.
func (failure LaunchFailedError) Unwrap() error {
	return failure.Cause
}
