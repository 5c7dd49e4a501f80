// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec with logging via ShellExecutor, exposes OSCommandRunner for
// default process execution, and resolves every launched command exactly once
// through PendingExecution so git and hub invocations never block their callers.
package execshell
