package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	standardErrorSuffixTemplateConstant     = ": %s"
	phraseFailureTemplateConstant           = "%s (exit code %d%s)"
	phraseExecutionFailureTemplateConstant  = "%s: %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
	fallbackUnknownValueLabelConstant       = "unknown"
	listJoinSeparatorConstant               = ", "
	flagPrefixConstant                      = "-"
)

const (
	gitAddSubcommandNameConstant      = "add"
	gitBranchSubcommandNameConstant   = "branch"
	gitCheckoutSubcommandNameConstant = "checkout"
	gitCommitSubcommandNameConstant   = "commit"
	gitPushSubcommandNameConstant     = "push"
	gitRevParseSubcommandNameConstant = "rev-parse"
	gitRmSubcommandNameConstant       = "rm"
	hubPullRequestSubcommandConstant  = "pull-request"
	gitAllFilesArgumentConstant       = "."
	gitPathSeparatorArgumentConstant  = "--"
	gitForceShortFlagConstant         = "-f"
	gitMessageShortFlagConstant       = "-m"
	hubBaseShortFlagConstant          = "-b"
	gitAllChangesLabelConstant        = "all changes"
)

const (
	gitAddStartTemplateConstant                    = "Staging %s in %s"
	gitAddSuccessTemplateConstant                  = "Staged %s in %s"
	gitAddFailureTemplateConstant                  = "Failed to stage %s in %s"
	gitAddExecutionFailureTemplateConstant         = "Unable to stage %s in %s"
	gitBranchStartTemplateConstant                 = "Creating branch %s in %s"
	gitBranchForceStartTemplateConstant            = "Force creating branch %s in %s"
	gitBranchSuccessTemplateConstant               = "Created branch %s in %s"
	gitBranchFailureTemplateConstant               = "Failed to create branch %s in %s"
	gitBranchExecutionFailureTemplateConstant      = "Unable to create branch %s in %s"
	gitCheckoutStartTemplateConstant               = "Switching %s to branch %s"
	gitCheckoutSuccessTemplateConstant             = "%s now on branch %s"
	gitCheckoutFailureTemplateConstant             = "Failed to switch %s to branch %s"
	gitCheckoutExecutionFailureTemplateConstant    = "Unable to switch %s to branch %s"
	gitCommitStartTemplateConstant                 = "Creating commit in %s with message %q"
	gitCommitSuccessTemplateConstant               = "Created commit in %s with message %q"
	gitCommitFailureTemplateConstant               = "Failed to create commit in %s with message %q"
	gitCommitExecutionFailureTemplateConstant      = "Unable to create commit in %s with message %q"
	gitPushStartTemplateConstant                   = "Pushing %s to %s from %s"
	gitPushSuccessTemplateConstant                 = "Pushed %s to %s from %s"
	gitPushFailureTemplateConstant                 = "Failed to push %s to %s from %s"
	gitPushExecutionFailureTemplateConstant        = "Unable to push %s to %s from %s"
	gitRevisionStartTemplateConstant               = "Resolving %s in %s"
	gitRevisionSuccessTemplateConstant             = "%s in %s resolved to %s"
	gitRevisionEmptySuccessTemplateConstant        = "%s in %s did not resolve to a revision"
	gitRevisionFailureTemplateConstant             = "Failed to resolve %s in %s"
	gitRevisionExecutionFailureTemplateConstant    = "Unable to resolve %s in %s"
	gitRmStartTemplateConstant                     = "Removing %s from the index in %s"
	gitRmSuccessTemplateConstant                   = "Removed %s from the index in %s"
	gitRmFailureTemplateConstant                   = "Failed to remove %s from the index in %s"
	gitRmExecutionFailureTemplateConstant          = "Unable to remove %s from the index in %s"
	hubPullRequestStartTemplateConstant            = "Opening pull request %q against %s from %s"
	hubPullRequestSuccessTemplateConstant          = "Opened pull request %q against %s from %s: %s"
	hubPullRequestFailureTemplateConstant          = "Failed to open pull request %q against %s from %s"
	hubPullRequestExecutionFailureTemplateConstant = "Unable to open pull request %q against %s from %s"
	hubDefaultBaseBranchLabelConstant              = "the default branch"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// commandPhrases holds the fully formatted sentences describing one command at each stage.
type commandPhrases struct {
	started          string
	succeeded        string
	failed           string
	executionFailure string
}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing a command that could not be run.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments, argumentsError := command.ArgumentVector()
	if argumentsError != nil || len(arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	var phrases commandPhrases
	var recognized bool
	switch command.Kind {
	case CommandKindGit:
		phrases, recognized = formatter.describeGitCommand(command, arguments[0], arguments[1:], result)
	case CommandKindHub:
		phrases, recognized = formatter.describeHubCommand(command, arguments[0], arguments[1:], result)
	}
	if !recognized {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	switch stage {
	case messageStageStart:
		return phrases.started
	case messageStageSuccess:
		return phrases.succeeded
	case messageStageFailure:
		return fmt.Sprintf(phraseFailureTemplateConstant, phrases.failed, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(phraseExecutionFailureTemplateConstant, phrases.executionFailure, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitCommand(command ShellCommand, subcommand string, arguments []string, result ExecutionResult) (commandPhrases, bool) {
	workingDirectory := formatter.describeWorkingDirectory(command)

	switch subcommand {
	case gitAddSubcommandNameConstant:
		target := formatter.describePathTargets(arguments)
		return commandPhrases{
			started:          fmt.Sprintf(gitAddStartTemplateConstant, target, workingDirectory),
			succeeded:        fmt.Sprintf(gitAddSuccessTemplateConstant, target, workingDirectory),
			failed:           fmt.Sprintf(gitAddFailureTemplateConstant, target, workingDirectory),
			executionFailure: fmt.Sprintf(gitAddExecutionFailureTemplateConstant, target, workingDirectory),
		}, true
	case gitBranchSubcommandNameConstant:
		branchName := formatter.ensureValue(formatter.extractLastPositionalArgument(arguments))
		startTemplate := gitBranchStartTemplateConstant
		if containsArgument(arguments, gitForceShortFlagConstant) {
			startTemplate = gitBranchForceStartTemplateConstant
		}
		return commandPhrases{
			started:          fmt.Sprintf(startTemplate, branchName, workingDirectory),
			succeeded:        fmt.Sprintf(gitBranchSuccessTemplateConstant, branchName, workingDirectory),
			failed:           fmt.Sprintf(gitBranchFailureTemplateConstant, branchName, workingDirectory),
			executionFailure: fmt.Sprintf(gitBranchExecutionFailureTemplateConstant, branchName, workingDirectory),
		}, true
	case gitCheckoutSubcommandNameConstant:
		branchName := formatter.ensureValue(formatter.extractLastPositionalArgument(arguments))
		return commandPhrases{
			started:          fmt.Sprintf(gitCheckoutStartTemplateConstant, workingDirectory, branchName),
			succeeded:        fmt.Sprintf(gitCheckoutSuccessTemplateConstant, workingDirectory, branchName),
			failed:           fmt.Sprintf(gitCheckoutFailureTemplateConstant, workingDirectory, branchName),
			executionFailure: fmt.Sprintf(gitCheckoutExecutionFailureTemplateConstant, workingDirectory, branchName),
		}, true
	case gitCommitSubcommandNameConstant:
		commitMessage := findFlagValue(arguments, gitMessageShortFlagConstant)
		return commandPhrases{
			started:          fmt.Sprintf(gitCommitStartTemplateConstant, workingDirectory, commitMessage),
			succeeded:        fmt.Sprintf(gitCommitSuccessTemplateConstant, workingDirectory, commitMessage),
			failed:           fmt.Sprintf(gitCommitFailureTemplateConstant, workingDirectory, commitMessage),
			executionFailure: fmt.Sprintf(gitCommitExecutionFailureTemplateConstant, workingDirectory, commitMessage),
		}, true
	case gitPushSubcommandNameConstant:
		remoteName, references := formatter.extractRemoteAndReferences(arguments)
		remoteLabel := formatter.ensureValue(remoteName)
		referencesLabel := formatter.ensureValue(strings.Join(references, listJoinSeparatorConstant))
		return commandPhrases{
			started:          fmt.Sprintf(gitPushStartTemplateConstant, referencesLabel, remoteLabel, workingDirectory),
			succeeded:        fmt.Sprintf(gitPushSuccessTemplateConstant, referencesLabel, remoteLabel, workingDirectory),
			failed:           fmt.Sprintf(gitPushFailureTemplateConstant, referencesLabel, remoteLabel, workingDirectory),
			executionFailure: fmt.Sprintf(gitPushExecutionFailureTemplateConstant, referencesLabel, remoteLabel, workingDirectory),
		}, true
	case gitRevParseSubcommandNameConstant:
		reference := formatter.ensureValue(formatter.extractLastPositionalArgument(arguments))
		resolvedRevision := strings.TrimSpace(result.StandardOutput)
		succeeded := fmt.Sprintf(gitRevisionSuccessTemplateConstant, reference, workingDirectory, resolvedRevision)
		if len(resolvedRevision) == 0 {
			succeeded = fmt.Sprintf(gitRevisionEmptySuccessTemplateConstant, reference, workingDirectory)
		}
		return commandPhrases{
			started:          fmt.Sprintf(gitRevisionStartTemplateConstant, reference, workingDirectory),
			succeeded:        succeeded,
			failed:           fmt.Sprintf(gitRevisionFailureTemplateConstant, reference, workingDirectory),
			executionFailure: fmt.Sprintf(gitRevisionExecutionFailureTemplateConstant, reference, workingDirectory),
		}, true
	case gitRmSubcommandNameConstant:
		target := formatter.describePathTargets(arguments)
		return commandPhrases{
			started:          fmt.Sprintf(gitRmStartTemplateConstant, target, workingDirectory),
			succeeded:        fmt.Sprintf(gitRmSuccessTemplateConstant, target, workingDirectory),
			failed:           fmt.Sprintf(gitRmFailureTemplateConstant, target, workingDirectory),
			executionFailure: fmt.Sprintf(gitRmExecutionFailureTemplateConstant, target, workingDirectory),
		}, true
	default:
		return commandPhrases{}, false
	}
}

func (formatter CommandMessageFormatter) describeHubCommand(command ShellCommand, subcommand string, arguments []string, result ExecutionResult) (commandPhrases, bool) {
	if subcommand != hubPullRequestSubcommandConstant {
		return commandPhrases{}, false
	}

	workingDirectory := formatter.describeWorkingDirectory(command)
	title := findFlagValue(arguments, gitMessageShortFlagConstant)
	baseBranch := strings.TrimSpace(findFlagValue(arguments, hubBaseShortFlagConstant))
	if len(baseBranch) == 0 {
		baseBranch = hubDefaultBaseBranchLabelConstant
	}
	pullRequestLocation := formatter.ensureValue(result.StandardOutput)

	return commandPhrases{
		started:          fmt.Sprintf(hubPullRequestStartTemplateConstant, title, baseBranch, workingDirectory),
		succeeded:        fmt.Sprintf(hubPullRequestSuccessTemplateConstant, title, baseBranch, workingDirectory, pullRequestLocation),
		failed:           fmt.Sprintf(hubPullRequestFailureTemplateConstant, title, baseBranch, workingDirectory),
		executionFailure: fmt.Sprintf(hubPullRequestExecutionFailureTemplateConstant, title, baseBranch, workingDirectory),
	}, true
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	return fmt.Sprintf(commandLabelTemplateConstant, command.Label(), formatter.formatWorkingDirectorySuffix(command))
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) describePathTargets(arguments []string) string {
	paths := []string{}
	pathsStarted := false
	for _, argument := range arguments {
		if pathsStarted {
			paths = append(paths, argument)
			continue
		}
		if argument == gitPathSeparatorArgumentConstant {
			pathsStarted = true
			continue
		}
		if argument == gitAllFilesArgumentConstant {
			return gitAllChangesLabelConstant
		}
	}
	return formatter.ensureValue(strings.Join(paths, listJoinSeparatorConstant))
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmed
}

func (formatter CommandMessageFormatter) extractLastPositionalArgument(arguments []string) string {
	for index := len(arguments) - 1; index >= 0; index-- {
		argument := strings.TrimSpace(arguments[index])
		if len(argument) == 0 || strings.HasPrefix(argument, flagPrefixConstant) {
			continue
		}
		return argument
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) extractRemoteAndReferences(arguments []string) (string, []string) {
	remoteName := emptyStringConstant
	references := []string{}
	for _, argument := range arguments {
		trimmed := strings.TrimSpace(argument)
		if len(trimmed) == 0 || strings.HasPrefix(trimmed, flagPrefixConstant) {
			continue
		}
		if len(remoteName) == 0 {
			remoteName = trimmed
			continue
		}
		references = append(references, trimmed)
	}
	return remoteName, references
}

func containsArgument(arguments []string, value string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == value {
			return true
		}
	}
	return false
}

func findFlagValue(arguments []string, flag string) string {
	for index := 0; index < len(arguments)-1; index++ {
		if strings.TrimSpace(arguments[index]) == flag {
			return arguments[index+1]
		}
	}
	return emptyStringConstant
}
