package retry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSleeper struct {
	delays []time.Duration
}

func (f *fakeSleeper) Sleep(d time.Duration) { f.delays = append(f.delays, d) }

func TestRetrySucceedsImmediately(t *testing.T) {
	attempts, err := Retry(func() error { return nil }, Limit(3))
	require.NoError(t, err)
	assert.EqualValues(t, 1, attempts)
}

func TestRetryLimit(t *testing.T) {
	failure := errors.New("boom")
	calls := 0

	attempts, err := Retry(func() error {
		calls++
		return failure
	}, Limit(3))

	assert.Equal(t, failure, err)
	assert.EqualValues(t, 3, attempts)
	assert.Equal(t, 3, calls)
}

func TestRetryEventualSuccess(t *testing.T) {
	calls := 0
	attempts, err := Retry(func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	}, Limit(5))

	require.NoError(t, err)
	assert.EqualValues(t, 3, attempts)
}

func TestNonRetriableErrors(t *testing.T) {
	fatal := errors.New("fatal")

	attempts, err := Retry(func() error { return fatal }, NonRetriableErrors(fatal), Limit(5))
	assert.Equal(t, fatal, err)
	assert.EqualValues(t, 1, attempts)
}

func TestBinaryExponentialBackoff(t *testing.T) {
	fake := &fakeSleeper{}
	sleeperImpl = fake
	defer func() { sleeperImpl = &realSleeper{} }()

	failure := errors.New("boom")
	_, err := Retry(func() error { return failure },
		Limit(5),
		BinaryExponentialBackoff(time.Second, 5*time.Second),
	)
	assert.Equal(t, failure, err)

	require.Len(t, fake.delays, 4)
	assert.Equal(t, []time.Duration{
		time.Second,
		2 * time.Second,
		4 * time.Second,
		5 * time.Second,
	}, fake.delays)
}
