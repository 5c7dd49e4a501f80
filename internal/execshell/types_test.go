package execshell_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gitfacade/internal/arguments"
	"github.com/temirov/gitfacade/internal/execshell"
)

func TestShellCommandArgumentVectorSplitsQuotedTokens(testInstance *testing.T) {
	testCases := []struct {
		name             string
		subcommand       string
		tokens           []string
		expectedLine     string
		expectedArgument []string
	}{
		{
			name:             "commit_message_with_space",
			subcommand:       "commit",
			tokens:           arguments.Commit("release 1.0", nil),
			expectedLine:     `commit -m "release 1.0"`,
			expectedArgument: []string{"commit", "-m", "release 1.0"},
		},
		{
			name:             "add_files",
			subcommand:       "add",
			tokens:           arguments.Add([]string{"a.txt", "dir/b c.txt"}, nil),
			expectedLine:     `add -- "a.txt" "dir/b c.txt"`,
			expectedArgument: []string{"add", "--", "a.txt", "dir/b c.txt"},
		},
		{
			name:             "message_with_quotes_and_dollar",
			subcommand:       "commit",
			tokens:           arguments.Commit(`fix "$HOME" \ path`, nil),
			expectedLine:     `commit -m "fix \"$HOME\" \\ path"`,
			expectedArgument: []string{"commit", "-m", `fix "$HOME" \ path`},
		},
		{
			name:             "no_arguments",
			subcommand:       "rev-parse",
			tokens:           arguments.RevParse(nil),
			expectedLine:     "rev-parse",
			expectedArgument: []string{"rev-parse"},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			command := execshell.ShellCommand{
				Name:    "git",
				Details: execshell.CommandDetails{Subcommand: testCase.subcommand, Arguments: testCase.tokens},
			}
			require.Equal(testInstance, testCase.expectedLine, command.CommandLine())

			argumentVector, splitError := command.ArgumentVector()
			require.NoError(testInstance, splitError)
			require.Equal(testInstance, testCase.expectedArgument, argumentVector)
		})
	}
}

func TestCommandFailedErrorMessageIsStandardError(testInstance *testing.T) {
	failure := execshell.CommandFailedError{
		Command: execshell.ShellCommand{Name: "git", Details: execshell.CommandDetails{Subcommand: "push"}},
		Result:  execshell.ExecutionResult{ExitCode: 1, StandardError: "error: failed to push some refs\n"},
	}
	require.Equal(testInstance, "error: failed to push some refs\n", failure.Error())
}

func TestCommandFailedErrorWithoutStandardErrorNamesCommandAndExitCode(testInstance *testing.T) {
	silentFailure := execshell.CommandFailedError{
		Command: execshell.ShellCommand{Name: "git", Details: execshell.CommandDetails{Subcommand: "push"}},
		Result:  execshell.ExecutionResult{ExitCode: 1},
	}
	require.Equal(testInstance, "git push exited with code 1", silentFailure.Error())
	require.NotEmpty(testInstance, silentFailure.Error())

	silentLaunchedFailure := execshell.CommandFailedError{
		Command: execshell.ShellCommand{Name: "git", Details: execshell.CommandDetails{Subcommand: "branch", Arguments: []string{`"fix-o'brien"`}}},
		Result:  execshell.ExecutionResult{ExitCode: 128, StandardOutput: "ignored\n"},
	}
	require.Equal(testInstance, `git branch "fix-o'brien" exited with code 128`, silentLaunchedFailure.Error())
}
