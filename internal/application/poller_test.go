package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/opencode-milestone-cli/internal/domain"
	"github.com/bnema/opencode-milestone-cli/internal/ports"
	"github.com/bnema/opencode-milestone-cli/internal/ports/mocks"
)

func TestWaitUntilIdleReturnsOnceSessionIsIdle(t *testing.T) {
	instance := mocks.NewMockSessionInstance(t)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	instance.EXPECT().SessionStates(mockAnyContext()).
		Return(map[string]domain.SessionState{"ses-1": domain.SessionBusy}, nil).Twice()
	instance.EXPECT().SessionStates(mockAnyContext()).
		Return(map[string]domain.SessionState{"ses-1": domain.SessionIdle}, nil).Once()

	poller := NewPoller(fixedClock{now: start})
	var sleeps []time.Duration
	poller.sleep = func(_ context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return nil
	}

	err := poller.WaitUntilIdle(context.Background(), instance, "ses-1", time.Hour, 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second}, sleeps)
}

func TestWaitUntilIdleFailsImmediatelyWhenSessionMissing(t *testing.T) {
	instance := mocks.NewMockSessionInstance(t)
	instance.EXPECT().SessionStates(mockAnyContext()).
		Return(map[string]domain.SessionState{"ses-other": domain.SessionBusy}, nil).Once()

	poller := NewPoller(fixedClock{now: time.Unix(1700000000, 0)})
	poller.sleep = func(context.Context, time.Duration) error {
		t.Fatal("poller slept for a session that is already gone")
		return nil
	}

	err := poller.WaitUntilIdle(context.Background(), instance, "ses-1", time.Hour, time.Second)
	require.ErrorIs(t, err, domain.ErrSessionMissing)
	assert.Contains(t, err.Error(), "ses-1")
	assert.Contains(t, err.Error(), "ses-other")
}

func TestWaitUntilIdleTimesOut(t *testing.T) {
	instance := mocks.NewMockSessionInstance(t)
	clock := mocks.NewMockClock(t)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	instance.EXPECT().SessionStates(mockAnyContext()).
		Return(map[string]domain.SessionState{"ses-1": domain.SessionBusy}, nil).Once()
	clock.EXPECT().Now().Return(start).Once()
	clock.EXPECT().Now().Return(start.Add(2 * time.Hour)).Once()

	poller := NewPoller(clock)
	poller.sleep = func(context.Context, time.Duration) error {
		t.Fatal("poller slept past its deadline")
		return nil
	}

	err := poller.WaitUntilIdle(context.Background(), instance, "ses-1", time.Hour, time.Second)
	require.ErrorIs(t, err, domain.ErrIdleTimeout)
	assert.Contains(t, err.Error(), "ses-1")
}

func TestWaitUntilIdlePropagatesStatusErrors(t *testing.T) {
	instance := mocks.NewMockSessionInstance(t)
	statusErr := errors.New("connection refused")
	instance.EXPECT().SessionStates(mockAnyContext()).Return(nil, statusErr).Once()

	poller := NewPoller(fixedClock{now: time.Unix(1700000000, 0)})

	err := poller.WaitUntilIdle(context.Background(), instance, "ses-1", time.Hour, time.Second)
	require.ErrorIs(t, err, statusErr)
}

func TestWaitUntilIdleStopsWhenContextIsCancelled(t *testing.T) {
	instance := mocks.NewMockSessionInstance(t)
	instance.EXPECT().SessionStates(mockAnyContext()).
		Return(map[string]domain.SessionState{"ses-1": domain.SessionBusy}, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	poller := NewPoller(ports.SystemClock{})

	err := poller.WaitUntilIdle(ctx, instance, "ses-1", time.Hour, time.Minute)
	require.ErrorIs(t, err, context.Canceled)
}

func mockAnyContext() interface{} {
	return mock.Anything
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time {
	return f.now
}
