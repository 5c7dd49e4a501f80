package execshell

// CommandEventObserver receives lifecycle notifications for shell command execution.
// Exactly one of CommandCompleted or CommandExecutionFailed follows each CommandStarted.
type CommandEventObserver interface {
	// CommandStarted reports a command about to be launched.
	CommandStarted(command ShellCommand)
	// CommandCompleted reports a command that exited, whatever its exit code.
	CommandCompleted(command ShellCommand, result ExecutionResult)
	// CommandExecutionFailed reports a command that never produced an exit code.
	CommandExecutionFailed(command ShellCommand, failure error)
}

type noopCommandEventObserver struct{}

func (noopCommandEventObserver) CommandStarted(ShellCommand) {}

func (noopCommandEventObserver) CommandCompleted(ShellCommand, ExecutionResult) {}

func (noopCommandEventObserver) CommandExecutionFailed(ShellCommand, error) {}
