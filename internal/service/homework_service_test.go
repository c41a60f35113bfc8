package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository"
)

func newHomeworkService(t *testing.T) *HomeworkService {
	t.Helper()
	store := kvstore.NewMemoryStore()
	return NewHomeworkService(repository.NewHomeworkRepository(store), zap.NewNop())
}

func TestPostHomework(t *testing.T) {
	ctx := context.Background()
	svc := newHomeworkService(t)
	at := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return at }

	hw, err := svc.Post(ctx, model.Homework{
		Class:       "KG1 A",
		Subject:     "Math",
		Description: "Count to ten",
		DueDate:     "2026-01-20",
	})
	require.NoError(t, err)
	require.Equal(t, at.UnixMilli(), hw.ID)

	items, err := svc.ForClass(ctx, "KG1 A")
	require.NoError(t, err)
	// новое задание в начале, демо-задания после него
	require.Equal(t, hw.ID, items[0].ID)
	require.Len(t, items, 3)
}

func TestPostHomeworkValidatesFields(t *testing.T) {
	ctx := context.Background()
	svc := newHomeworkService(t)

	missing := []model.Homework{
		{Subject: "Math", Description: "x", DueDate: "2026-01-20"},
		{Class: "KG1 A", Description: "x", DueDate: "2026-01-20"},
		{Class: "KG1 A", Subject: "Math", DueDate: "2026-01-20"},
		{Class: "KG1 A", Subject: "Math", Description: "x"},
	}
	for _, hw := range missing {
		_, err := svc.Post(ctx, hw)
		require.ErrorIs(t, err, ErrMissingFields)
	}
}

// Удаляется ровно одно задание, по точному совпадению идентификатора
func TestDeleteHomeworkExactMatch(t *testing.T) {
	ctx := context.Background()
	svc := newHomeworkService(t)

	before, err := svc.All(ctx)
	require.NoError(t, err)
	require.Len(t, before, 2)

	require.NoError(t, svc.Delete(ctx, before[0].ID))

	after, err := svc.All(ctx)
	require.NoError(t, err)
	require.Len(t, after, 1)
	require.Equal(t, before[1].ID, after[0].ID)

	require.ErrorIs(t, svc.Delete(ctx, 424242), ErrNotFound)
}
