package gitcli_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/gitfacade/internal/execshell"
	"github.com/temirov/gitfacade/internal/gitcli"
	"github.com/temirov/gitfacade/internal/settings"
)

const (
	testGitExecutableConstant     = "/opt/git/bin/git"
	testWorkingDirectoryConstant  = "/workspace/repo"
	testFeatureBranchConstant     = "feature/login"
	testCommitHashOutputConstant  = "4b825dc642cb6eb9a060e54bf8d69288fbee4904\n"
	testBranchExistsErrorConstant = "fatal: a branch named 'feature/login' already exists\n"
	testFakeGitScriptConstant     = "#!/bin/sh\ncase \"$*\" in *simulated-failure*) printf 'fatal: simulated failure\\n' >&2; exit 128;; esac\nprintf '%s|' \"$@\"\n"
	testSimulatedFailureConstant  = "fatal: simulated failure\n"
	testQuotedFeatureBranch       = `"feature/login"`
)

type staticExecutableResolver string

func (resolver staticExecutableResolver) GitExecutablePath() string {
	return string(resolver)
}

type recordingLauncher struct {
	mutex            sync.Mutex
	recordedCommands []execshell.ShellCommand
	outcome          func(execshell.ShellCommand) *execshell.PendingExecution
}

func (launcher *recordingLauncher) Launch(_ context.Context, command execshell.ShellCommand) *execshell.PendingExecution {
	launcher.mutex.Lock()
	launcher.recordedCommands = append(launcher.recordedCommands, command)
	launcher.mutex.Unlock()
	if launcher.outcome != nil {
		return launcher.outcome(command)
	}
	return execshell.CompletedExecution("")
}

func (launcher *recordingLauncher) commands() []execshell.ShellCommand {
	launcher.mutex.Lock()
	defer launcher.mutex.Unlock()
	return append([]execshell.ShellCommand{}, launcher.recordedCommands...)
}

func newTestClient(testInstance *testing.T, launcher gitcli.CommandLauncher) *gitcli.Client {
	testInstance.Helper()
	client, creationError := gitcli.NewClient(gitcli.ClientDependencies{
		Launcher:           launcher,
		ExecutableResolver: staticExecutableResolver(testGitExecutableConstant),
		WorkingDirectory:   testWorkingDirectoryConstant,
	})
	require.NoError(testInstance, creationError)
	return client
}

func TestNewClientValidation(testInstance *testing.T) {
	testCases := []struct {
		name          string
		dependencies  gitcli.ClientDependencies
		expectedError error
	}{
		{
			name:          "missing_launcher",
			dependencies:  gitcli.ClientDependencies{ExecutableResolver: staticExecutableResolver("git")},
			expectedError: gitcli.ErrExecutorNotConfigured,
		},
		{
			name:          "missing_resolver",
			dependencies:  gitcli.ClientDependencies{Launcher: &recordingLauncher{}},
			expectedError: gitcli.ErrExecutableResolverNotConfigured,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			client, creationError := gitcli.NewClient(testCase.dependencies)
			require.ErrorIs(testInstance, creationError, testCase.expectedError)
			require.Nil(testInstance, client)
		})
	}
}

func TestSubcommandLiterals(testInstance *testing.T) {
	expectedLiterals := map[gitcli.Subcommand]string{
		gitcli.SubcommandAdd:      "add",
		gitcli.SubcommandBranch:   "branch",
		gitcli.SubcommandCheckout: "checkout",
		gitcli.SubcommandCommit:   "commit",
		gitcli.SubcommandPush:     "push",
		gitcli.SubcommandRevParse: "rev-parse",
		gitcli.SubcommandRm:       "rm",
	}
	for subcommand, literal := range expectedLiterals {
		require.Equal(testInstance, literal, subcommand.Literal())
	}
	require.Empty(testInstance, gitcli.Subcommand(99).Literal())
}

func TestClientOperationsBuildCommands(testInstance *testing.T) {
	testCases := []struct {
		name               string
		invoke             func(client *gitcli.Client) *execshell.PendingExecution
		expectedSubcommand string
		expectedArguments  []string
	}{
		{
			name:               "add_all",
			invoke:             func(client *gitcli.Client) *execshell.PendingExecution { return client.Add(context.Background(), nil) },
			expectedSubcommand: "add",
			expectedArguments:  []string{"."},
		},
		{
			name: "add_files",
			invoke: func(client *gitcli.Client) *execshell.PendingExecution {
				return client.Add(context.Background(), []string{"a.txt", "b.txt"})
			},
			expectedSubcommand: "add",
			expectedArguments:  []string{`-- "a.txt" "b.txt"`},
		},
		{
			name: "branch_force_with_extra_arguments",
			invoke: func(client *gitcli.Client) *execshell.PendingExecution {
				return client.Branch(context.Background(), testFeatureBranchConstant, true, "--no-track")
			},
			expectedSubcommand: "branch",
			expectedArguments:  []string{"--no-track", "-f", testQuotedFeatureBranch},
		},
		{
			name: "checkout_existing",
			invoke: func(client *gitcli.Client) *execshell.PendingExecution {
				return client.Checkout(context.Background(), gitcli.CheckoutOptions{BranchName: testFeatureBranchConstant})
			},
			expectedSubcommand: "checkout",
			expectedArguments:  []string{testQuotedFeatureBranch},
		},
		{
			name: "commit",
			invoke: func(client *gitcli.Client) *execshell.PendingExecution {
				return client.Commit(context.Background(), "release 1.0")
			},
			expectedSubcommand: "commit",
			expectedArguments:  []string{`-m "release 1.0"`},
		},
		{
			name: "push_default_remote",
			invoke: func(client *gitcli.Client) *execshell.PendingExecution {
				return client.Push(context.Background(), testFeatureBranchConstant, "")
			},
			expectedSubcommand: "push",
			expectedArguments:  []string{`"origin"`, testQuotedFeatureBranch},
		},
		{
			name: "rev_parse",
			invoke: func(client *gitcli.Client) *execshell.PendingExecution {
				return client.RevParse(context.Background(), "--abbrev-ref", "HEAD")
			},
			expectedSubcommand: "rev-parse",
			expectedArguments:  []string{"--abbrev-ref", "HEAD"},
		},
		{
			name: "rm",
			invoke: func(client *gitcli.Client) *execshell.PendingExecution {
				return client.Rm(context.Background(), []string{"old.txt"}, true)
			},
			expectedSubcommand: "rm",
			expectedArguments:  []string{"--ignore-unmatch", `-- "old.txt"`},
		},
		{
			name: "current_commit_hash",
			invoke: func(client *gitcli.Client) *execshell.PendingExecution {
				return client.GetCurrentCommitHash(context.Background())
			},
			expectedSubcommand: "rev-parse",
			expectedArguments:  []string{"HEAD"},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			launcher := &recordingLauncher{}
			client := newTestClient(testInstance, launcher)

			_, executionError := testCase.invoke(client).Wait()
			require.NoError(testInstance, executionError)

			recordedCommands := launcher.commands()
			require.Len(testInstance, recordedCommands, 1)
			recordedCommand := recordedCommands[0]
			require.Equal(testInstance, execshell.CommandName(testGitExecutableConstant), recordedCommand.Name)
			require.Equal(testInstance, execshell.CommandKindGit, recordedCommand.Kind)
			require.Equal(testInstance, testCase.expectedSubcommand, recordedCommand.Details.Subcommand)
			require.Equal(testInstance, testCase.expectedArguments, recordedCommand.Details.Arguments)
			require.Equal(testInstance, testWorkingDirectoryConstant, recordedCommand.Details.WorkingDirectory)
		})
	}
}

func TestClientRejectsInvalidInputWithoutLaunching(testInstance *testing.T) {
	testCases := []struct {
		name   string
		invoke func(client *gitcli.Client) *execshell.PendingExecution
	}{
		{name: "branch_without_name", invoke: func(client *gitcli.Client) *execshell.PendingExecution {
			return client.Branch(context.Background(), " ", false)
		}},
		{name: "checkout_without_name", invoke: func(client *gitcli.Client) *execshell.PendingExecution {
			return client.Checkout(context.Background(), gitcli.CheckoutOptions{Create: true})
		}},
		{name: "commit_without_message", invoke: func(client *gitcli.Client) *execshell.PendingExecution {
			return client.Commit(context.Background(), "")
		}},
		{name: "push_without_branch", invoke: func(client *gitcli.Client) *execshell.PendingExecution {
			return client.Push(context.Background(), "", "origin")
		}},
		{name: "rm_without_files", invoke: func(client *gitcli.Client) *execshell.PendingExecution {
			return client.Rm(context.Background(), nil, true)
		}},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			launcher := &recordingLauncher{}
			client := newTestClient(testInstance, launcher)

			_, executionError := testCase.invoke(client).Wait()
			require.Error(testInstance, executionError)
			require.IsType(testInstance, gitcli.InvalidInputError{}, executionError)
			require.Empty(testInstance, launcher.commands())
		})
	}
}

func TestCheckoutWithCreate(testInstance *testing.T) {
	testInstance.Run("creates_then_checks_out", func(testInstance *testing.T) {
		launcher := &recordingLauncher{}
		client := newTestClient(testInstance, launcher)

		_, executionError := client.Checkout(context.Background(), gitcli.CheckoutOptions{BranchName: testFeatureBranchConstant, Create: true, Force: true}).Wait()
		require.NoError(testInstance, executionError)

		recordedCommands := launcher.commands()
		require.Len(testInstance, recordedCommands, 2)
		require.Equal(testInstance, "branch", recordedCommands[0].Details.Subcommand)
		require.Equal(testInstance, []string{"-f", testQuotedFeatureBranch}, recordedCommands[0].Details.Arguments)
		require.Equal(testInstance, "checkout", recordedCommands[1].Details.Subcommand)
		require.Equal(testInstance, []string{testQuotedFeatureBranch}, recordedCommands[1].Details.Arguments)
	})

	testInstance.Run("stops_when_creation_fails", func(testInstance *testing.T) {
		creationFailure := execshell.CommandFailedError{Result: execshell.ExecutionResult{ExitCode: 128, StandardError: testBranchExistsErrorConstant}}
		launcher := &recordingLauncher{outcome: func(command execshell.ShellCommand) *execshell.PendingExecution {
			if command.Details.Subcommand == "branch" {
				return execshell.FailedExecution(creationFailure)
			}
			return execshell.CompletedExecution("")
		}}
		client := newTestClient(testInstance, launcher)

		_, executionError := client.Checkout(context.Background(), gitcli.CheckoutOptions{BranchName: testFeatureBranchConstant, Create: true}).Wait()
		require.EqualError(testInstance, executionError, testBranchExistsErrorConstant)

		recordedCommands := launcher.commands()
		require.Len(testInstance, recordedCommands, 1)
		require.Equal(testInstance, "branch", recordedCommands[0].Details.Subcommand)
	})
}

func TestClientPropagatesLauncherOutcomeUnchanged(testInstance *testing.T) {
	launcher := &recordingLauncher{outcome: func(execshell.ShellCommand) *execshell.PendingExecution {
		return execshell.CompletedExecution(testCommitHashOutputConstant)
	}}
	client := newTestClient(testInstance, launcher)

	commitHash, executionError := client.GetCurrentCommitHash(context.Background()).Wait()
	require.NoError(testInstance, executionError)
	require.Equal(testInstance, testCommitHashOutputConstant, commitHash)
}

func TestClientConcurrentOperationsDoNotShareArguments(testInstance *testing.T) {
	launcher := &recordingLauncher{}
	client := newTestClient(testInstance, launcher)
	sharedExtraArguments := []string{"--quiet"}

	const operationCount = 32
	var waitGroup sync.WaitGroup
	for operationIndex := 0; operationIndex < operationCount; operationIndex++ {
		waitGroup.Add(1)
		go func(operationIndex int) {
			defer waitGroup.Done()
			_, _ = client.Commit(context.Background(), fmt.Sprintf("change %d", operationIndex), sharedExtraArguments...).Wait()
		}(operationIndex)
	}
	waitGroup.Wait()

	require.Equal(testInstance, []string{"--quiet"}, sharedExtraArguments)
	seenMessages := map[string]bool{}
	for _, recordedCommand := range launcher.commands() {
		require.Len(testInstance, recordedCommand.Details.Arguments, 2)
		require.Equal(testInstance, "--quiet", recordedCommand.Details.Arguments[0])
		seenMessages[recordedCommand.Details.Arguments[1]] = true
	}
	require.Len(testInstance, seenMessages, operationCount)
}

func TestClientAgainstExecutable(testInstance *testing.T) {
	if _, lookupError := exec.LookPath("sh"); lookupError != nil {
		testInstance.Skip("sh is not available")
	}

	scriptPath := filepath.Join(testInstance.TempDir(), "git")
	require.NoError(testInstance, os.WriteFile(scriptPath, []byte(testFakeGitScriptConstant), 0o755))

	shellExecutor, executorError := execshell.NewShellExecutor(zap.NewNop(), execshell.NewOSCommandRunner())
	require.NoError(testInstance, executorError)

	configuration := settings.DefaultConfiguration()
	configuration.Executables.Git = scriptPath
	client, creationError := gitcli.NewClient(gitcli.ClientDependencies{
		Launcher:           shellExecutor,
		ExecutableResolver: configuration,
	})
	require.NoError(testInstance, creationError)

	testInstance.Run("success_returns_standard_output", func(testInstance *testing.T) {
		standardOutput, executionError := client.Commit(context.Background(), "release 1.0").Wait()
		require.NoError(testInstance, executionError)
		require.Equal(testInstance, "commit|-m|release 1.0|", standardOutput)
	})

	testInstance.Run("failure_returns_standard_error", func(testInstance *testing.T) {
		standardOutput, executionError := client.Branch(context.Background(), "simulated-failure", false).Wait()
		require.Empty(testInstance, standardOutput)
		require.EqualError(testInstance, executionError, testSimulatedFailureConstant)

		var commandFailure execshell.CommandFailedError
		require.True(testInstance, errors.As(executionError, &commandFailure))
		require.Equal(testInstance, 128, commandFailure.Result.ExitCode)
	})

	testInstance.Run("reference_names_with_quotes_reach_git", func(testInstance *testing.T) {
		standardOutput, executionError := client.Branch(context.Background(), "fix-o'brien", false).Wait()
		require.NoError(testInstance, executionError)
		require.Equal(testInstance, "branch|fix-o'brien|", standardOutput)

		standardOutput, executionError = client.Push(context.Background(), `say"hi`, "").Wait()
		require.NoError(testInstance, executionError)
		require.Equal(testInstance, `push|origin|say"hi|`, standardOutput)

		standardOutput, executionError = client.Checkout(context.Background(), gitcli.CheckoutOptions{BranchName: "fix-o'brien", Create: true}).Wait()
		require.NoError(testInstance, executionError)
		require.Equal(testInstance, "checkout|fix-o'brien|", standardOutput)
	})

	testInstance.Run("missing_executable_is_launch_failure", func(testInstance *testing.T) {
		missingConfiguration := settings.DefaultConfiguration()
		missingConfiguration.Executables.Git = filepath.Join(testInstance.TempDir(), "missing-git")
		missingClient, missingCreationError := gitcli.NewClient(gitcli.ClientDependencies{
			Launcher:           shellExecutor,
			ExecutableResolver: missingConfiguration,
		})
		require.NoError(testInstance, missingCreationError)

		_, executionError := missingClient.GetCurrentCommitHash(context.Background()).Wait()
		var launchFailure execshell.LaunchFailedError
		require.True(testInstance, errors.As(executionError, &launchFailure))
	})
}
