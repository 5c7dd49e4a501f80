package facade

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/gitfacade/internal/arguments"
	"github.com/temirov/gitfacade/internal/execshell"
	"github.com/temirov/gitfacade/internal/gitcli"
)

const (
	addCommandUseConstant             = "add [files...]"
	addCommandShortConstant           = "Stage files, or every change when no files are given"
	branchCommandUseConstant          = "branch <name>"
	branchCommandShortConstant        = "Create a branch"
	checkoutCommandUseConstant        = "checkout <name>"
	checkoutCommandShortConstant      = "Switch to a branch, optionally creating it first"
	commitCommandUseConstant          = "commit"
	commitCommandShortConstant        = "Record staged changes"
	pushCommandUseConstant            = "push <branch>"
	pushCommandShortConstant          = "Publish a branch to a remote"
	revParseCommandUseConstant        = "rev-parse [-- arguments...]"
	revParseCommandShortConstant      = "Run git rev-parse with the given arguments"
	rmCommandUseConstant              = "rm <files...>"
	rmCommandShortConstant            = "Remove files from the index and working tree"
	headCommandUseConstant            = "head"
	headCommandShortConstant          = "Print the commit hash of HEAD"
	pullRequestCommandUseConstant     = "pull-request"
	pullRequestCommandShortConstant   = "Open a pull request with hub"
	configCommandUseConstant          = "config"
	configCommandShortConstant        = "Print the effective executable and runner settings"
	forceFlagNameConstant             = "force"
	forceFlagShorthandConstant        = "f"
	branchForceFlagUsageConstant      = "Reset the branch if it already exists"
	createFlagNameConstant            = "create"
	createFlagUsageConstant           = "Create the branch before switching to it"
	messageFlagNameConstant           = "message"
	messageFlagShorthandConstant      = "m"
	commitMessageFlagUsageConstant    = "Commit message"
	pullRequestMessageUsageConstant   = "Pull request title and description"
	remoteFlagNameConstant            = "remote"
	remoteFlagUsageConstant           = "Remote to push to"
	ignoreUnmatchFlagNameConstant     = "ignore-unmatch"
	ignoreUnmatchFlagUsageConstant    = "Succeed even when a file matches nothing"
	baseFlagNameConstant              = "base"
	baseFlagShorthandConstant         = "b"
	baseFlagUsageConstant             = "Base branch of the pull request; hub picks the default branch when empty"
	configRenderErrorTemplateConstant = "unable to print settings: %w"
)

func (builder *CommandBuilder) buildAddCommand() *cobra.Command {
	return builder.newToolCommand(addCommandUseConstant, addCommandShortConstant, cobra.ArbitraryArgs, func(_ *cobra.Command, positionalArguments []string) launchFunc {
		return func(executionContext context.Context, clients facadeClients, extraArguments []string) *execshell.PendingExecution {
			return clients.git.Add(executionContext, positionalArguments, extraArguments...)
		}
	})
}

func (builder *CommandBuilder) buildBranchCommand() *cobra.Command {
	command := builder.newToolCommand(branchCommandUseConstant, branchCommandShortConstant, cobra.ExactArgs(1), func(command *cobra.Command, positionalArguments []string) launchFunc {
		force, _ := command.Flags().GetBool(forceFlagNameConstant)
		return func(executionContext context.Context, clients facadeClients, extraArguments []string) *execshell.PendingExecution {
			return clients.git.Branch(executionContext, positionalArguments[0], force, extraArguments...)
		}
	})
	command.Flags().BoolP(forceFlagNameConstant, forceFlagShorthandConstant, false, branchForceFlagUsageConstant)
	return command
}

func (builder *CommandBuilder) buildCheckoutCommand() *cobra.Command {
	command := builder.newToolCommand(checkoutCommandUseConstant, checkoutCommandShortConstant, cobra.ExactArgs(1), func(command *cobra.Command, positionalArguments []string) launchFunc {
		create, _ := command.Flags().GetBool(createFlagNameConstant)
		force, _ := command.Flags().GetBool(forceFlagNameConstant)
		options := gitcli.CheckoutOptions{BranchName: positionalArguments[0], Create: create, Force: force}
		return func(executionContext context.Context, clients facadeClients, extraArguments []string) *execshell.PendingExecution {
			return clients.git.Checkout(executionContext, options, extraArguments...)
		}
	})
	command.Flags().Bool(createFlagNameConstant, false, createFlagUsageConstant)
	command.Flags().BoolP(forceFlagNameConstant, forceFlagShorthandConstant, false, branchForceFlagUsageConstant)
	return command
}

func (builder *CommandBuilder) buildCommitCommand() *cobra.Command {
	command := builder.newToolCommand(commitCommandUseConstant, commitCommandShortConstant, cobra.NoArgs, func(command *cobra.Command, _ []string) launchFunc {
		message, _ := command.Flags().GetString(messageFlagNameConstant)
		return func(executionContext context.Context, clients facadeClients, extraArguments []string) *execshell.PendingExecution {
			return clients.git.Commit(executionContext, message, extraArguments...)
		}
	})
	command.Flags().StringP(messageFlagNameConstant, messageFlagShorthandConstant, "", commitMessageFlagUsageConstant)
	_ = command.MarkFlagRequired(messageFlagNameConstant)
	return command
}

func (builder *CommandBuilder) buildPushCommand() *cobra.Command {
	command := builder.newToolCommand(pushCommandUseConstant, pushCommandShortConstant, cobra.ExactArgs(1), func(command *cobra.Command, positionalArguments []string) launchFunc {
		remoteName, _ := command.Flags().GetString(remoteFlagNameConstant)
		return func(executionContext context.Context, clients facadeClients, extraArguments []string) *execshell.PendingExecution {
			return clients.git.Push(executionContext, positionalArguments[0], remoteName, extraArguments...)
		}
	})
	command.Flags().String(remoteFlagNameConstant, arguments.DefaultRemoteName, remoteFlagUsageConstant)
	return command
}

func (builder *CommandBuilder) buildRevParseCommand() *cobra.Command {
	return builder.newToolCommand(revParseCommandUseConstant, revParseCommandShortConstant, cobra.ArbitraryArgs, func(_ *cobra.Command, positionalArguments []string) launchFunc {
		return func(executionContext context.Context, clients facadeClients, extraArguments []string) *execshell.PendingExecution {
			revisionArguments := append(append([]string{}, extraArguments...), positionalArguments...)
			return clients.git.RevParse(executionContext, revisionArguments...)
		}
	})
}

func (builder *CommandBuilder) buildRmCommand() *cobra.Command {
	command := builder.newToolCommand(rmCommandUseConstant, rmCommandShortConstant, cobra.MinimumNArgs(1), func(command *cobra.Command, positionalArguments []string) launchFunc {
		ignoreUnmatch, _ := command.Flags().GetBool(ignoreUnmatchFlagNameConstant)
		return func(executionContext context.Context, clients facadeClients, extraArguments []string) *execshell.PendingExecution {
			return clients.git.Rm(executionContext, positionalArguments, ignoreUnmatch, extraArguments...)
		}
	})
	command.Flags().Bool(ignoreUnmatchFlagNameConstant, true, ignoreUnmatchFlagUsageConstant)
	return command
}

func (builder *CommandBuilder) buildHeadCommand() *cobra.Command {
	command := builder.newToolCommand(headCommandUseConstant, headCommandShortConstant, cobra.NoArgs, func(_ *cobra.Command, _ []string) launchFunc {
		return func(executionContext context.Context, clients facadeClients, _ []string) *execshell.PendingExecution {
			return clients.git.GetCurrentCommitHash(executionContext)
		}
	})
	_ = command.Flags().MarkHidden(argumentFlagNameConstant)
	return command
}

func (builder *CommandBuilder) buildPullRequestCommand() *cobra.Command {
	command := builder.newToolCommand(pullRequestCommandUseConstant, pullRequestCommandShortConstant, cobra.NoArgs, func(command *cobra.Command, _ []string) launchFunc {
		message, _ := command.Flags().GetString(messageFlagNameConstant)
		baseBranchName, _ := command.Flags().GetString(baseFlagNameConstant)
		return func(executionContext context.Context, clients facadeClients, extraArguments []string) *execshell.PendingExecution {
			return clients.hub.PullRequest(executionContext, message, baseBranchName, extraArguments...)
		}
	})
	command.Flags().StringP(messageFlagNameConstant, messageFlagShorthandConstant, "", pullRequestMessageUsageConstant)
	command.Flags().StringP(baseFlagNameConstant, baseFlagShorthandConstant, "", baseFlagUsageConstant)
	_ = command.MarkFlagRequired(messageFlagNameConstant)
	return command
}

func (builder *CommandBuilder) buildConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   configCommandUseConstant,
		Short: configCommandShortConstant,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			renderedSettings, renderError := builder.resolveSettings().RenderYAML()
			if renderError != nil {
				return fmt.Errorf(configRenderErrorTemplateConstant, renderError)
			}
			_, writeError := fmt.Fprint(command.OutOrStdout(), renderedSettings)
			return writeError
		},
	}
}
