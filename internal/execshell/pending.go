package execshell

import (
	"context"
	"sync"
)

// PendingExecution is the single-value result of a launched command.
// It resolves exactly once, with either the captured standard output or an error.
type PendingExecution struct {
	completion     chan struct{}
	resolveOnce    sync.Once
	standardOutput string
	failure        error
}

func newPendingExecution() *PendingExecution {
	return &PendingExecution{completion: make(chan struct{})}
}

// FailedExecution returns a PendingExecution already resolved with the supplied error.
func FailedExecution(failure error) *PendingExecution {
	pendingExecution := newPendingExecution()
	pendingExecution.resolve("", failure)
	return pendingExecution
}

// CompletedExecution returns a PendingExecution already resolved with the supplied output.
func CompletedExecution(standardOutput string) *PendingExecution {
	pendingExecution := newPendingExecution()
	pendingExecution.resolve(standardOutput, nil)
	return pendingExecution
}

// Done returns a channel closed once the execution has resolved.
func (pendingExecution *PendingExecution) Done() <-chan struct{} {
	return pendingExecution.completion
}

// Wait blocks until the execution resolves and returns its outcome.
func (pendingExecution *PendingExecution) Wait() (string, error) {
	<-pendingExecution.completion
	return pendingExecution.standardOutput, pendingExecution.failure
}

// Await waits for the execution or for the context to end, whichever comes first.
// Abandoning the wait does not stop the underlying process. A nil context waits without a deadline.
func (pendingExecution *PendingExecution) Await(waitContext context.Context) (string, error) {
	if waitContext == nil {
		waitContext = context.Background()
	}
	select {
	case <-pendingExecution.completion:
		return pendingExecution.standardOutput, pendingExecution.failure
	case <-waitContext.Done():
		return "", waitContext.Err()
	}
}

// Subscribe delivers the outcome to exactly one of the callbacks once the execution resolves.
// Callbacks run on a separate goroutine; nil callbacks are skipped.
func (pendingExecution *PendingExecution) Subscribe(onSuccess func(string), onFailure func(error)) {
	go func() {
		standardOutput, failure := pendingExecution.Wait()
		if failure != nil {
			if onFailure != nil {
				onFailure(failure)
			}
			return
		}
		if onSuccess != nil {
			onSuccess(standardOutput)
		}
	}()
}

func (pendingExecution *PendingExecution) resolve(standardOutput string, failure error) {
	pendingExecution.resolveOnce.Do(func() {
		if failure == nil {
			pendingExecution.standardOutput = standardOutput
		}
		pendingExecution.failure = failure
		close(pendingExecution.completion)
	})
}

// Chain runs next after first succeeds and resolves with next's outcome.
// When first fails, next is never invoked and the chain resolves with first's error.
func Chain(first *PendingExecution, next func() *PendingExecution) *PendingExecution {
	chainedExecution := newPendingExecution()
	go func() {
		if _, firstFailure := first.Wait(); firstFailure != nil {
			chainedExecution.resolve("", firstFailure)
			return
		}
		chainedExecution.resolve(next().Wait())
	}()
	return chainedExecution
}
