package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type scannerFunc func(ctx context.Context) (int, error)

func (f scannerFunc) ScanOverdue(ctx context.Context) (int, error) { return f(ctx) }

func TestScheduler_scanOverdue(t *testing.T) {
	t.Parallel()
	calls := 0
	s := NewScheduler(Config{Timeout: time.Second}, scannerFunc(func(ctx context.Context) (int, error) {
		calls++
		_, ok := ctx.Deadline()
		require.True(t, ok)
		if calls > 1 {
			return 0, errors.New("db down")
		}
		return 2, nil
	}), zap.NewExample())

	s.scanOverdue()
	s.scanOverdue()
	require.Equal(t, 2, calls)
}

func TestScheduler_Start(t *testing.T) {
	t.Parallel()
	s := NewScheduler(Config{}, scannerFunc(func(context.Context) (int, error) { return 0, nil }), zap.NewNop())
	require.Equal(t, DefaultSpec, s.cfg.OverdueSpec)
	require.NoError(t, s.Start())
	require.Len(t, s.cron.Entries(), 1)
	s.Stop()

	bad := NewScheduler(Config{OverdueSpec: "every day"}, scannerFunc(func(context.Context) (int, error) { return 0, nil }), zap.NewNop())
	require.Error(t, bad.Start())
}
