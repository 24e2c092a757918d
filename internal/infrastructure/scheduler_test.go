package infrastructure

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	s, err := NewScheduler(zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Shutdown() })
	return s
}

func TestRunAfter_FiresOnce(t *testing.T) {
	s := newTestScheduler(t)

	var fired atomic.Int32
	require.NoError(t, s.RunAfter(50*time.Millisecond, func() { fired.Add(1) }))
	s.Start()

	assert.Eventually(t, func() bool { return fired.Load() == 1 }, 3*time.Second, 10*time.Millisecond)

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load(), "one-off job must not fire again")
}

func TestRunEvery_FiresRepeatedly(t *testing.T) {
	s := newTestScheduler(t)

	var fired atomic.Int32
	require.NoError(t, s.RunEvery(50*time.Millisecond, func() { fired.Add(1) }))
	s.Start()

	assert.Eventually(t, func() bool { return fired.Load() >= 2 }, 3*time.Second, 10*time.Millisecond)
}

func TestShutdown_StopsPendingJobs(t *testing.T) {
	s, err := NewScheduler(zerolog.Nop())
	require.NoError(t, err)

	var fired atomic.Int32
	require.NoError(t, s.RunAfter(100*time.Millisecond, func() { fired.Add(1) }))
	s.Start()
	require.NoError(t, s.Shutdown())

	time.Sleep(300 * time.Millisecond)
	assert.Zero(t, fired.Load())
}
