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

func newGradeService(t *testing.T) *GradeService {
	t.Helper()
	store := kvstore.NewMemoryStore()
	return NewGradeService(repository.NewGradeRepository(store), zap.NewNop())
}

func TestAddSubject(t *testing.T) {
	ctx := context.Background()
	svc := newGradeService(t)

	subject, err := svc.AddSubject(ctx, "Arabic")
	require.NoError(t, err)
	require.NotEmpty(t, subject.ID)

	subjects, err := svc.Subjects(ctx)
	require.NoError(t, err)
	require.Len(t, subjects, 4)

	// имя уникально без учёта регистра
	_, err = svc.AddSubject(ctx, "arabic")
	require.ErrorIs(t, err, ErrDuplicateName)
	_, err = svc.AddSubject(ctx, "  ")
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestRemoveSubject(t *testing.T) {
	ctx := context.Background()
	svc := newGradeService(t)

	subject, err := svc.AddSubject(ctx, "Music")
	require.NoError(t, err)
	require.NoError(t, svc.RemoveSubject(ctx, subject.ID))
	require.ErrorIs(t, svc.RemoveSubject(ctx, subject.ID), ErrNotFound)
}

// Реестр предметов можно опустошить: базовый набор подставляется
// только пока ключ ни разу не записан
func TestRemoveAllSubjectsLeavesRegistryEmpty(t *testing.T) {
	ctx := context.Background()
	svc := newGradeService(t)

	subjects, err := svc.Subjects(ctx)
	require.NoError(t, err)
	for _, subject := range subjects {
		require.NoError(t, svc.RemoveSubject(ctx, subject.ID))
	}

	subjects, err = svc.Subjects(ctx)
	require.NoError(t, err)
	require.Empty(t, subjects)
}

// Семестры живут под разными ключами и не пересекаются
func TestSetScorePerTerm(t *testing.T) {
	ctx := context.Background()
	svc := newGradeService(t)

	require.NoError(t, svc.SetScore(ctx, model.TermFirst, "202601", "math", "A"))
	require.NoError(t, svc.SetScore(ctx, model.TermSecond, "202601", "math", "B+"))

	first, err := svc.StudentGrades(ctx, model.TermFirst, "202601")
	require.NoError(t, err)
	require.Equal(t, "A", first["math"])

	second, err := svc.StudentGrades(ctx, model.TermSecond, "202601")
	require.NoError(t, err)
	require.Equal(t, "B+", second["math"])

	empty, err := svc.StudentGrades(ctx, model.TermFirst, "202603")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestSetScoreValidation(t *testing.T) {
	ctx := context.Background()
	svc := newGradeService(t)
	require.ErrorIs(t, svc.SetScore(ctx, model.TermFirst, "", "math", "A"), ErrMissingFields)
	require.ErrorIs(t, svc.SetScore(ctx, model.TermFirst, "202601", "", "A"), ErrMissingFields)
}
