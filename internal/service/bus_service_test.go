package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/repository"
)

func newBusService(t *testing.T) *BusService {
	t.Helper()
	store := kvstore.NewMemoryStore()
	return NewBusService(repository.NewBusRepository(store), zap.NewNop())
}

func TestMorningTimelineByClock(t *testing.T) {
	ctx := context.Background()
	svc := newBusService(t)
	svc.now = func() time.Time {
		return time.Date(2026, 1, 15, 7, 10, 0, 0, time.UTC)
	}

	stops, err := svc.MorningTimeline(ctx)
	require.NoError(t, err)
	require.Len(t, stops, 4)
	// 06:30 и 07:00 позади, 07:30 и 07:55 впереди
	require.True(t, stops[0].Completed)
	require.True(t, stops[1].Completed)
	require.False(t, stops[2].Completed)
	require.False(t, stops[3].Completed)
}

// Ручная отметка админа важнее времени на часах
func TestMorningTimelineManualLocationWins(t *testing.T) {
	ctx := context.Background()
	svc := newBusService(t)
	svc.now = func() time.Time {
		return time.Date(2026, 1, 15, 6, 0, 0, 0, time.UTC)
	}

	require.NoError(t, svc.UpdateLocation(ctx, 2))

	stops, err := svc.MorningTimeline(ctx)
	require.NoError(t, err)
	require.True(t, stops[2].Completed)
	require.False(t, stops[3].Completed)

	// сброс возвращает расчёт по времени
	require.NoError(t, svc.UpdateLocation(ctx, -1))
	stops, err = svc.MorningTimeline(ctx)
	require.NoError(t, err)
	require.False(t, stops[0].Completed)
}

func TestUpdateLocationOutOfRange(t *testing.T) {
	ctx := context.Background()
	svc := newBusService(t)
	require.ErrorIs(t, svc.UpdateLocation(ctx, 10), ErrNotFound)
	require.ErrorIs(t, svc.UpdateLocation(ctx, -2), ErrNotFound)
}

func TestEveningTimelineIgnoresManualStop(t *testing.T) {
	ctx := context.Background()
	svc := newBusService(t)
	svc.now = func() time.Time {
		return time.Date(2026, 1, 15, 14, 45, 0, 0, time.UTC)
	}

	require.NoError(t, svc.UpdateLocation(ctx, 3))

	stops, err := svc.EveningTimeline(ctx)
	require.NoError(t, err)
	require.Len(t, stops, 4)
	require.True(t, stops[0].Completed)  // 14:00
	require.True(t, stops[1].Completed)  // 14:30
	require.False(t, stops[2].Completed) // 15:00
}
