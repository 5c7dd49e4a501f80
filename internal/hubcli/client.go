package hubcli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/gitfacade/internal/arguments"
	"github.com/temirov/gitfacade/internal/execshell"
)

const (
	pullRequestLiteralConstant           = "pull-request"
	messageFieldNameConstant             = "message"
	subcommandFieldNameConstant          = "subcommand"
	requiredValueMessageConstant         = "value required"
	unknownSubcommandMessageConstant     = "unknown subcommand"
	executorNotConfiguredMessageConstant = "hub command launcher not configured"
	resolverNotConfiguredMessageConstant = "hub executable resolver not configured"
	invalidInputErrorTemplateConstant    = "%s: %s"
)

// Subcommand enumerates the hub subcommands the client can launch.
type Subcommand int

// Supported hub subcommands.
const (
	SubcommandPullRequest Subcommand = iota
)

// Literal returns the command-line token of the subcommand, or an empty string for unknown values.
func (subcommand Subcommand) Literal() string {
	switch subcommand {
	case SubcommandPullRequest:
		return pullRequestLiteralConstant
	default:
		return ""
	}
}

var (
	// ErrExecutorNotConfigured indicates the client was constructed without a launcher.
	ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)
	// ErrExecutableResolverNotConfigured indicates the client was constructed without a settings provider.
	ErrExecutableResolverNotConfigured = errors.New(resolverNotConfiguredMessageConstant)
)

// CommandLauncher starts shell commands without waiting for them.
type CommandLauncher interface {
	Launch(executionContext context.Context, command execshell.ShellCommand) *execshell.PendingExecution
}

// ExecutableResolver supplies the hub executable path at call time.
type ExecutableResolver interface {
	HubExecutablePath() string
}

// ClientDependencies enumerates collaborators required by the client.
type ClientDependencies struct {
	Launcher           CommandLauncher
	ExecutableResolver ExecutableResolver
	WorkingDirectory   string
}

// InvalidInputError surfaces validation issues for operation inputs.
type InvalidInputError struct {
	FieldName string
	Message   string
}

// Error describes the invalid input.
func (inputError InvalidInputError) Error() string {
	return fmt.Sprintf(invalidInputErrorTemplateConstant, inputError.FieldName, inputError.Message)
}

// Client launches hub subcommands.
type Client struct {
	launcher           CommandLauncher
	executableResolver ExecutableResolver
	workingDirectory   string
}

// NewClient constructs a hub client.
func NewClient(dependencies ClientDependencies) (*Client, error) {
	if dependencies.Launcher == nil {
		return nil, ErrExecutorNotConfigured
	}
	if dependencies.ExecutableResolver == nil {
		return nil, ErrExecutableResolverNotConfigured
	}
	return &Client{
		launcher:           dependencies.Launcher,
		executableResolver: dependencies.ExecutableResolver,
		workingDirectory:   strings.TrimSpace(dependencies.WorkingDirectory),
	}, nil
}

// PullRequest opens a pull request from the current branch. An empty base branch lets hub pick the default.
// The output is the pull request URL as printed by hub.
func (client *Client) PullRequest(executionContext context.Context, message string, baseBranchName string, extraArguments ...string) *execshell.PendingExecution {
	if len(strings.TrimSpace(message)) == 0 {
		return execshell.FailedExecution(InvalidInputError{FieldName: messageFieldNameConstant, Message: requiredValueMessageConstant})
	}
	return client.run(executionContext, SubcommandPullRequest, arguments.PullRequest(message, strings.TrimSpace(baseBranchName), extraArguments))
}

func (client *Client) run(executionContext context.Context, subcommand Subcommand, argumentTokens []string) *execshell.PendingExecution {
	subcommandLiteral := subcommand.Literal()
	if len(subcommandLiteral) == 0 {
		return execshell.FailedExecution(InvalidInputError{FieldName: subcommandFieldNameConstant, Message: unknownSubcommandMessageConstant})
	}

	command := execshell.ShellCommand{
		Name: execshell.CommandName(client.executableResolver.HubExecutablePath()),
		Kind: execshell.CommandKindHub,
		Details: execshell.CommandDetails{
			Subcommand:       subcommandLiteral,
			Arguments:        argumentTokens,
			WorkingDirectory: client.workingDirectory,
		},
	}
	return client.launcher.Launch(executionContext, command)
}
