package gitcli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/temirov/gitfacade/internal/arguments"
	"github.com/temirov/gitfacade/internal/execshell"
)

const (
	branchNameFieldNameConstant          = "branch_name"
	messageFieldNameConstant             = "message"
	filesFieldNameConstant               = "files"
	subcommandFieldNameConstant          = "subcommand"
	requiredValueMessageConstant         = "value required"
	unknownSubcommandMessageConstant     = "unknown subcommand"
	executorNotConfiguredMessageConstant = "git command launcher not configured"
	resolverNotConfiguredMessageConstant = "git executable resolver not configured"
	invalidInputErrorTemplateConstant    = "%s: %s"
)

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

// ExecutableResolver supplies the git executable path at call time.
type ExecutableResolver interface {
	GitExecutablePath() string
}

// ClientDependencies enumerates collaborators required by the client.
type ClientDependencies struct {
	Launcher           CommandLauncher
	ExecutableResolver ExecutableResolver
	WorkingDirectory   string
}

// CheckoutOptions configures Checkout.
type CheckoutOptions struct {
	BranchName string
	Create     bool
	Force      bool
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

// Client launches git subcommands.
type Client struct {
	launcher           CommandLauncher
	executableResolver ExecutableResolver
	workingDirectory   string
}

// NewClient constructs a git client.
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

// Add stages the given files, or every change when no files are given.
func (client *Client) Add(executionContext context.Context, files []string, extraArguments ...string) *execshell.PendingExecution {
	return client.run(executionContext, SubcommandAdd, arguments.Add(files, extraArguments))
}

// Branch creates a branch, resetting an existing one when force is set.
func (client *Client) Branch(executionContext context.Context, branchName string, force bool, extraArguments ...string) *execshell.PendingExecution {
	if isBlank(branchName) {
		return requiredValueFailure(branchNameFieldNameConstant)
	}
	return client.run(executionContext, SubcommandBranch, arguments.Branch(branchName, force, extraArguments))
}

// Checkout switches to a branch. With Create set the branch is created first,
// and the checkout is skipped when creation fails.
func (client *Client) Checkout(executionContext context.Context, options CheckoutOptions, extraArguments ...string) *execshell.PendingExecution {
	if isBlank(options.BranchName) {
		return requiredValueFailure(branchNameFieldNameConstant)
	}

	checkoutArguments := arguments.Checkout(options.BranchName, extraArguments)
	if !options.Create {
		return client.run(executionContext, SubcommandCheckout, checkoutArguments)
	}

	branchCreation := client.Branch(executionContext, options.BranchName, options.Force)
	return execshell.Chain(branchCreation, func() *execshell.PendingExecution {
		return client.run(executionContext, SubcommandCheckout, checkoutArguments)
	})
}

// Commit records staged changes with the given message.
func (client *Client) Commit(executionContext context.Context, message string, extraArguments ...string) *execshell.PendingExecution {
	if isBlank(message) {
		return requiredValueFailure(messageFieldNameConstant)
	}
	return client.run(executionContext, SubcommandCommit, arguments.Commit(message, extraArguments))
}

// Push publishes a branch to a remote; an empty remote name means origin.
func (client *Client) Push(executionContext context.Context, branchName string, remoteName string, extraArguments ...string) *execshell.PendingExecution {
	if isBlank(branchName) {
		return requiredValueFailure(branchNameFieldNameConstant)
	}
	return client.run(executionContext, SubcommandPush, arguments.Push(branchName, strings.TrimSpace(remoteName), extraArguments))
}

// RevParse runs git rev-parse with the given arguments.
func (client *Client) RevParse(executionContext context.Context, extraArguments ...string) *execshell.PendingExecution {
	return client.run(executionContext, SubcommandRevParse, arguments.RevParse(extraArguments))
}

// Rm removes files from the index and working tree.
func (client *Client) Rm(executionContext context.Context, files []string, ignoreUnmatch bool, extraArguments ...string) *execshell.PendingExecution {
	if len(files) == 0 {
		return requiredValueFailure(filesFieldNameConstant)
	}
	return client.run(executionContext, SubcommandRm, arguments.Rm(files, ignoreUnmatch, extraArguments))
}

// GetCurrentCommitHash resolves HEAD. The output is returned untrimmed.
func (client *Client) GetCurrentCommitHash(executionContext context.Context) *execshell.PendingExecution {
	return client.RevParse(executionContext, arguments.HeadReference)
}

func (client *Client) run(executionContext context.Context, subcommand Subcommand, argumentTokens []string) *execshell.PendingExecution {
	subcommandLiteral := subcommand.Literal()
	if len(subcommandLiteral) == 0 {
		return execshell.FailedExecution(InvalidInputError{FieldName: subcommandFieldNameConstant, Message: unknownSubcommandMessageConstant})
	}

	command := execshell.ShellCommand{
		Name: execshell.CommandName(client.executableResolver.GitExecutablePath()),
		Kind: execshell.CommandKindGit,
		Details: execshell.CommandDetails{
			Subcommand:       subcommandLiteral,
			Arguments:        argumentTokens,
			WorkingDirectory: client.workingDirectory,
		},
	}
	return client.launcher.Launch(executionContext, command)
}

func requiredValueFailure(fieldName string) *execshell.PendingExecution {
	return execshell.FailedExecution(InvalidInputError{FieldName: fieldName, Message: requiredValueMessageConstant})
}

func isBlank(value string) bool {
	return len(strings.TrimSpace(value)) == 0
}
