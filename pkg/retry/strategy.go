package retry

import (
	"errors"
	"math"
	"time"
)

// Limit limits the total number of attempts. maxAttempts should be >= 1,
// since the action is evaluated first.
func Limit(maxAttempts uint) Strategy {
	return func(attempts uint, err error) bool {
		return attempts < maxAttempts
	}
}

// NonRetriableErrors specifies errors that should never be retried.
func NonRetriableErrors(nonRetriableErrors ...error) Strategy {
	return func(attempts uint, err error) bool {
		for _, e := range nonRetriableErrors {
			if errors.Is(err, e) {
				return false
			}
		}

		return true
	}
}

// BinaryExponentialBackoff delays the next attempt by baseDelay * 2^(attempts-1),
// capped at maxBackoff.
func BinaryExponentialBackoff(baseDelay, maxBackoff time.Duration) Strategy {
	return func(attempts uint, err error) bool {
		delay := baseDelay * time.Duration(math.Pow(2, float64(attempts-1)))
		if delay < 0 || delay > maxBackoff {
			delay = maxBackoff
		}
		sleeperImpl.Sleep(delay)
		return true
	}
}

type sleeper interface {
	Sleep(time.Duration)
}

type realSleeper struct{}

func (r *realSleeper) Sleep(d time.Duration) { time.Sleep(d) }

var sleeperImpl sleeper = &realSleeper{}
