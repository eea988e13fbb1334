package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUntilNextBoundary(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		interval time.Duration
		want     time.Duration
	}{
		{
			name:     "mid-hour with hourly interval",
			now:      time.Date(2025, 6, 10, 13, 37, 0, 0, time.UTC),
			interval: time.Hour,
			want:     23 * time.Minute,
		},
		{
			name:     "unaligned start with six hour interval",
			now:      time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC),
			interval: 6 * time.Hour,
			want:     5 * time.Hour,
		},
		{
			name:     "exactly on a boundary waits a full interval",
			now:      time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
			interval: time.Hour,
			want:     time.Hour,
		},
		{
			name:     "non-positive interval",
			now:      time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
			interval: 0,
			want:     0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, untilNextBoundary(tt.now, tt.interval))
		})
	}
}

func TestRunOnce_RunsEveryJob(t *testing.T) {
	s := NewScheduler()
	var first, second int
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		first++
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		second++
		return errors.New("boom")
	})

	s.RunOnce(context.Background())

	require.Equal(t, 1, first)
	assert.Equal(t, 1, second, "a failing job must not stop the others")
}
