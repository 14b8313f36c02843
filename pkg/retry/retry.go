// Package retry re-runs flaky actions, primarily the CLI's invocations of
// external build and deploy tooling.
package retry

// Action is a function to be performed in a retriable manner.
type Action func() error

// Strategy decides whether an action should be retried after a failed
// attempt. Strategies may delay or cause other side effects.
type Strategy func(attempts uint, err error) bool

// Retry executes the action, potentially multiple times based on the
// provided strategies. It blocks until the action succeeds or a strategy
// declines a further attempt, returning the number of attempts made.
//
// Strategies run in the provided order, so any that induce delays should be
// specified last.
func Retry(action Action, strategies ...Strategy) (uint, error) {
	for i := uint(1); ; i++ {
		err := action()
		if err == nil {
			return i, nil
		}

		for _, s := range strategies {
			if shouldRetry := s(i, err); !shouldRetry {
				return i, err
			}
		}
	}
}
