package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository"
)

func newAttendanceService(t *testing.T) *AttendanceService {
	t.Helper()
	store := kvstore.NewMemoryStore()
	return NewAttendanceService(
		repository.NewAttendanceRepository(store),
		repository.NewStudentRepository(store),
		zap.NewNop(),
	)
}

func TestMarkAttendance(t *testing.T) {
	ctx := context.Background()
	svc := newAttendanceService(t)

	require.NoError(t, svc.Mark(ctx, "2026-01-15", "202601", model.AttendancePresent))
	require.NoError(t, svc.Mark(ctx, "2026-01-15", "202602", model.AttendanceAbsent))

	record, err := svc.ForDate(ctx, "2026-01-15")
	require.NoError(t, err)
	require.Equal(t, model.AttendancePresent, record["202601"])
	require.Equal(t, model.AttendanceAbsent, record["202602"])

	// другая дата живёт под своим ключом
	other, err := svc.ForDate(ctx, "2026-01-16")
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestMarkRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	svc := newAttendanceService(t)
	require.ErrorIs(t, svc.Mark(ctx, "2026-01-15", "202601", "vacation"), ErrInvalidStatus)
}

func TestMarkAllThenOverride(t *testing.T) {
	ctx := context.Background()
	svc := newAttendanceService(t)

	record, err := svc.MarkAll(ctx, "2026-01-15", "KG1 A", model.AttendancePresent)
	require.NoError(t, err)
	require.Len(t, record, 3)

	require.NoError(t, svc.Mark(ctx, "2026-01-15", "202603", model.AttendanceLate))

	stats, err := svc.Stats(ctx, "2026-01-15", "KG1 A")
	require.NoError(t, err)
	// опоздавший считается пришедшим
	require.Equal(t, 3, stats.Present)
	require.Equal(t, 3, stats.Total)
}

// Повторное сохранение того же набора не меняет результат
func TestSaveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newAttendanceService(t)

	record := model.AttendanceRecord{
		"202601": model.AttendancePresent,
		"202602": model.AttendanceAbsent,
	}
	require.NoError(t, svc.Save(ctx, "2026-01-15", record))
	require.NoError(t, svc.Save(ctx, "2026-01-15", record))

	got, err := svc.ForDate(ctx, "2026-01-15")
	require.NoError(t, err)
	require.Equal(t, record, got)
}

func TestSaveOverwritesWholeDay(t *testing.T) {
	ctx := context.Background()
	svc := newAttendanceService(t)

	require.NoError(t, svc.Mark(ctx, "2026-01-15", "202601", model.AttendancePresent))
	require.NoError(t, svc.Save(ctx, "2026-01-15", model.AttendanceRecord{
		"202602": model.AttendanceLate,
	}))

	got, err := svc.ForDate(ctx, "2026-01-15")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, model.AttendanceLate, got["202602"])
}
