package execshell

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	commandStartedLogMessageConstant      = "shell command started"
	commandCompletedLogMessageConstant    = "shell command completed"
	commandFailedLogMessageConstant       = "shell command failed"
	commandLaunchFailedLogMessageConstant = "shell command could not be started"
	logFieldExecutableConstant            = "executable"
	logFieldCommandLineConstant           = "command_line"
	logFieldWorkingDirectoryConstant      = "working_directory"
	logFieldExitCodeConstant              = "exit_code"
	logFieldStandardErrorConstant         = "stderr"
	logFieldStandardOutputLengthConstant  = "stdout_bytes"
	logFieldDescriptionConstant           = "description"
	logFieldTimeoutConstant               = "timeout"
)

// ShellExecutor runs commands through a CommandRunner, logging each lifecycle stage
// and converting outcomes into CommandFailedError or LaunchFailedError.
type ShellExecutor struct {
	logger           *zap.Logger
	runner           CommandRunner
	messageFormatter CommandMessageFormatter
	eventObserver    CommandEventObserver
	commandTimeout   time.Duration
}

// NewShellExecutor constructs a ShellExecutor.
func NewShellExecutor(logger *zap.Logger, runner CommandRunner) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}
	return &ShellExecutor{
		logger:           logger,
		runner:           runner,
		messageFormatter: CommandMessageFormatter{},
		eventObserver:    noopCommandEventObserver{},
	}, nil
}

// WithEventObserver returns a copy of the executor that notifies the observer about every command.
func (executor *ShellExecutor) WithEventObserver(observer CommandEventObserver) *ShellExecutor {
	duplicatedExecutor := *executor
	if observer == nil {
		observer = noopCommandEventObserver{}
	}
	duplicatedExecutor.eventObserver = observer
	return &duplicatedExecutor
}

// WithCommandTimeout returns a copy of the executor that bounds every command by the timeout.
// A zero or negative timeout disables the bound.
func (executor *ShellExecutor) WithCommandTimeout(timeout time.Duration) *ShellExecutor {
	duplicatedExecutor := *executor
	duplicatedExecutor.commandTimeout = timeout
	return &duplicatedExecutor
}

// Launch starts the command on its own goroutine and returns immediately.
func (executor *ShellExecutor) Launch(executionContext context.Context, command ShellCommand) *PendingExecution {
	pendingExecution := newPendingExecution()
	go func() {
		executionResult, executionError := executor.Execute(executionContext, command)
		pendingExecution.resolve(executionResult.StandardOutput, executionError)
	}()
	return pendingExecution
}

// Execute runs the command to completion on the calling goroutine.
func (executor *ShellExecutor) Execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	if executionContext == nil {
		executionContext = context.Background()
	}
	if executor.commandTimeout > 0 {
		var cancel context.CancelFunc
		executionContext, cancel = context.WithTimeout(executionContext, executor.commandTimeout)
		defer cancel()
	}

	commandFields := executor.commandFields(command)
	executor.logger.Debug(commandStartedLogMessageConstant, append(commandFields, zap.String(logFieldDescriptionConstant, executor.messageFormatter.BuildStartedMessage(command)))...)
	executor.eventObserver.CommandStarted(command)

	executionResult, runError := executor.runner.Run(executionContext, command)
	if runError != nil {
		executor.logger.Warn(commandLaunchFailedLogMessageConstant, append(commandFields, zap.Error(runError))...)
		executor.eventObserver.CommandExecutionFailed(command, runError)
		return ExecutionResult{}, LaunchFailedError{Command: command, Cause: runError}
	}

	executor.eventObserver.CommandCompleted(command, executionResult)

	if executionResult.ExitCode != 0 {
		executor.logger.Warn(
			commandFailedLogMessageConstant,
			append(commandFields,
				zap.Int(logFieldExitCodeConstant, executionResult.ExitCode),
				zap.String(logFieldStandardErrorConstant, executionResult.StandardError),
			)...,
		)
		return ExecutionResult{}, CommandFailedError{Command: command, Result: executionResult}
	}

	executor.logger.Debug(
		commandCompletedLogMessageConstant,
		append(commandFields,
			zap.Int(logFieldStandardOutputLengthConstant, len(executionResult.StandardOutput)),
			zap.String(logFieldDescriptionConstant, executor.messageFormatter.BuildSuccessMessage(command, executionResult)),
		)...,
	)
	return executionResult, nil
}

func (executor *ShellExecutor) commandFields(command ShellCommand) []zap.Field {
	commandFields := []zap.Field{
		zap.String(logFieldExecutableConstant, string(command.Name)),
		zap.String(logFieldCommandLineConstant, command.CommandLine()),
	}
	if len(command.Details.WorkingDirectory) > 0 {
		commandFields = append(commandFields, zap.String(logFieldWorkingDirectoryConstant, command.Details.WorkingDirectory))
	}
	if executor.commandTimeout > 0 {
		commandFields = append(commandFields, zap.Duration(logFieldTimeoutConstant, executor.commandTimeout))
	}
	return commandFields
}
