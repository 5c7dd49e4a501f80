package facade

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/gitfacade/internal/execshell"
	"github.com/temirov/gitfacade/internal/gitcli"
	"github.com/temirov/gitfacade/internal/hubcli"
	"github.com/temirov/gitfacade/internal/settings"
	"github.com/temirov/gitfacade/internal/ui"
)

const (
	argumentFlagNameConstant                = "arg"
	argumentFlagUsageConstant               = "Extra argument token placed before the generated arguments (repeatable)"
	directoryFlagNameConstant               = "directory"
	directoryFlagShorthandConstant          = "C"
	directoryFlagUsageConstant              = "Run the tool in this directory instead of the configured one"
	commandFailureTemplateConstant          = "%s failed: %w"
	settingsValidationErrorTemplateConstant = "invalid settings: %w"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// SettingsProvider supplies the settings in effect when a command runs.
type SettingsProvider func() settings.Configuration

// HumanReadableLoggingProvider reports whether command events should be rendered for people.
type HumanReadableLoggingProvider func() bool

// CommandLauncher starts shell commands without waiting for them.
type CommandLauncher interface {
	Launch(executionContext context.Context, command execshell.ShellCommand) *execshell.PendingExecution
}

// CommandBuilder assembles the façade commands.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	ConsoleLoggerProvider        LoggerProvider
	HumanReadableLoggingProvider HumanReadableLoggingProvider
	SettingsProvider             SettingsProvider
	Launcher                     CommandLauncher
}

type facadeClients struct {
	git *gitcli.Client
	hub *hubcli.Client
}

type launchFunc func(executionContext context.Context, clients facadeClients, extraArguments []string) *execshell.PendingExecution

// Build constructs every façade command.
func (builder *CommandBuilder) Build() ([]*cobra.Command, error) {
	return []*cobra.Command{
		builder.buildAddCommand(),
		builder.buildBranchCommand(),
		builder.buildCheckoutCommand(),
		builder.buildCommitCommand(),
		builder.buildPushCommand(),
		builder.buildRevParseCommand(),
		builder.buildRmCommand(),
		builder.buildHeadCommand(),
		builder.buildPullRequestCommand(),
		builder.buildConfigCommand(),
	}, nil
}

func (builder *CommandBuilder) newToolCommand(use string, short string, positionalArguments cobra.PositionalArgs, launch func(command *cobra.Command, arguments []string) launchFunc) *cobra.Command {
	command := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  positionalArguments,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.execute(command, launch(command, arguments))
		},
	}
	command.Flags().StringArray(argumentFlagNameConstant, nil, argumentFlagUsageConstant)
	command.Flags().StringP(directoryFlagNameConstant, directoryFlagShorthandConstant, "", directoryFlagUsageConstant)
	return command
}

func (builder *CommandBuilder) execute(command *cobra.Command, launch launchFunc) error {
	currentSettings := builder.resolveSettings()
	if validationError := currentSettings.Validate(); validationError != nil {
		return fmt.Errorf(settingsValidationErrorTemplateConstant, validationError)
	}

	clients, clientsError := builder.buildClients(command, currentSettings)
	if clientsError != nil {
		return clientsError
	}

	extraArguments, _ := command.Flags().GetStringArray(argumentFlagNameConstant)
	executionContext := command.Context()
	if executionContext == nil {
		executionContext = context.Background()
	}

	standardOutput, executionError := launch(executionContext, clients, extraArguments).Await(executionContext)
	if executionError != nil {
		return fmt.Errorf(commandFailureTemplateConstant, command.Name(), executionError)
	}

	_, writeError := fmt.Fprint(command.OutOrStdout(), standardOutput)
	return writeError
}

func (builder *CommandBuilder) buildClients(command *cobra.Command, currentSettings settings.Configuration) (facadeClients, error) {
	launcher, launcherError := builder.resolveLauncher(currentSettings)
	if launcherError != nil {
		return facadeClients{}, launcherError
	}

	workingDirectory := currentSettings.Sanitize().Runner.WorkingDirectory
	if directoryValue, _ := command.Flags().GetString(directoryFlagNameConstant); len(strings.TrimSpace(directoryValue)) > 0 {
		workingDirectory = directoryValue
	}

	executableResolver := settings.ResolverFunc(builder.resolveSettings)
	gitClient, gitClientError := gitcli.NewClient(gitcli.ClientDependencies{
		Launcher:           launcher,
		ExecutableResolver: executableResolver,
		WorkingDirectory:   workingDirectory,
	})
	if gitClientError != nil {
		return facadeClients{}, gitClientError
	}

	hubClient, hubClientError := hubcli.NewClient(hubcli.ClientDependencies{
		Launcher:           launcher,
		ExecutableResolver: executableResolver,
		WorkingDirectory:   workingDirectory,
	})
	if hubClientError != nil {
		return facadeClients{}, hubClientError
	}

	return facadeClients{git: gitClient, hub: hubClient}, nil
}

func (builder *CommandBuilder) resolveLauncher(currentSettings settings.Configuration) (CommandLauncher, error) {
	if builder.Launcher != nil {
		return builder.Launcher, nil
	}

	shellExecutor, creationError := execshell.NewShellExecutor(builder.resolveLogger(), execshell.NewOSCommandRunner())
	if creationError != nil {
		return nil, creationError
	}

	shellExecutor = shellExecutor.WithCommandTimeout(currentSettings.Runner.Timeout)
	if builder.HumanReadableLoggingProvider != nil && builder.HumanReadableLoggingProvider() {
		shellExecutor = shellExecutor.WithEventObserver(ui.NewConsoleCommandEventLogger(builder.resolveConsoleLogger()))
	}
	return shellExecutor, nil
}

func (builder *CommandBuilder) resolveSettings() settings.Configuration {
	if builder.SettingsProvider == nil {
		return settings.DefaultConfiguration()
	}
	return builder.SettingsProvider()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	return resolveProvidedLogger(builder.LoggerProvider)
}

func (builder *CommandBuilder) resolveConsoleLogger() *zap.Logger {
	return resolveProvidedLogger(builder.ConsoleLoggerProvider)
}

func resolveProvidedLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
