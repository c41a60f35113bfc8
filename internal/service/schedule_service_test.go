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

func newScheduleService(t *testing.T) (*ScheduleService, *repository.ScheduleRepository) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	repo := repository.NewScheduleRepository(store)
	return NewScheduleService(repo, zap.NewNop()), repo
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"8:0", "08:00"},
		{"8:00", "08:00"},
		{"08:00", "08:00"},
		{"8:5", "08:05"},
		{"8:", "08:00"},
		{"8", "08:00"},
		{"12:30", "12:30"},
		{"  9:15 ", "09:15"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			require.Equal(t, tt.want, NormalizeTime(tt.raw))
		})
	}
}

func TestClassTimetableNormalizesAndSorts(t *testing.T) {
	ctx := context.Background()
	svc, repo := newScheduleService(t)

	require.NoError(t, repo.Save(ctx, model.ClassSchedule{
		"KG1 A": {
			"0": {
				"9:0":  {Subject: "English", Teacher: "John"},
				"8:00": {Subject: "Math", Teacher: "Huda"},
			},
			"2": {
				"10:00": {Subject: "Art", Teacher: "Huda"},
			},
		},
	}))

	entries, err := svc.ClassTimetable(ctx, "KG1 A")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	require.Equal(t, "Sunday", entries[0].DayName)
	require.Equal(t, "08:00", entries[0].Time)
	require.Equal(t, "Math", entries[0].Subject)
	require.Equal(t, "09:00", entries[1].Time)
	require.Equal(t, "Tuesday", entries[2].DayName)
}

// При дублях сырых ключей одного времени побеждает первый в
// лексикографическом порядке ("08:00" < "8:0")
func TestClassTimetableDuplicateRawSpellings(t *testing.T) {
	ctx := context.Background()
	svc, repo := newScheduleService(t)

	require.NoError(t, repo.Save(ctx, model.ClassSchedule{
		"KG1 A": {
			"0": {
				"8:0":   {Subject: "Late Entry"},
				"08:00": {Subject: "Canonical Entry"},
			},
		},
	}))

	entries, err := svc.ClassTimetable(ctx, "KG1 A")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "08:00", entries[0].Time)
	require.Equal(t, "Canonical Entry", entries[0].Subject)
}

func TestSetSlotCanonicalizesAndRemovesDuplicates(t *testing.T) {
	ctx := context.Background()
	svc, repo := newScheduleService(t)

	require.NoError(t, repo.Save(ctx, model.ClassSchedule{
		"KG1 A": {"1": {"8:0": {Subject: "Old"}}},
	}))

	require.NoError(t, svc.SetSlot(ctx, "KG1 A", 1, "8:00", "Math", "Ms. Huda"))

	schedule, err := repo.Load(ctx)
	require.NoError(t, err)
	day := schedule["KG1 A"]["1"]
	require.Len(t, day, 1)
	slot, ok := day["08:00"]
	require.True(t, ok)
	require.Equal(t, "Math", slot.Subject)
}

func TestSetSlotValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newScheduleService(t)

	require.ErrorIs(t, svc.SetSlot(ctx, "", 0, "8:00", "Math", ""), ErrMissingFields)
	require.ErrorIs(t, svc.SetSlot(ctx, "KG1 A", 5, "8:00", "Math", ""), ErrMissingFields)
	require.ErrorIs(t, svc.SetSlot(ctx, "KG1 A", 0, "", "Math", ""), ErrMissingFields)
}

func TestRemoveSlot(t *testing.T) {
	ctx := context.Background()
	svc, repo := newScheduleService(t)

	require.NoError(t, repo.Save(ctx, model.ClassSchedule{
		"KG1 A": {"0": {"8:0": {Subject: "Math"}, "08:00": {Subject: "Math dup"}}},
	}))

	require.NoError(t, svc.RemoveSlot(ctx, "KG1 A", 0, "8:00"))

	schedule, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, schedule["KG1 A"]["0"])

	require.ErrorIs(t, svc.RemoveSlot(ctx, "KG1 A", 0, "8:00"), ErrNotFound)
}

func TestTeacherAssignments(t *testing.T) {
	ctx := context.Background()
	svc, repo := newScheduleService(t)

	require.NoError(t, repo.Save(ctx, model.ClassSchedule{
		"KG1 A": {
			"0": {"08:00": {Subject: "Math", Teacher: "Huda"}},
			"1": {"09:00": {Subject: "English", Teacher: "John"}},
		},
		"KG2 B": {
			"0": {"10:00": {Subject: "Science", Teacher: "Ms. Huda"}},
		},
	}))

	entries, err := svc.TeacherAssignments(ctx, "Huda Khalil")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "KG1 A", entries[0].Class)
	require.Equal(t, "KG2 B", entries[1].Class)
}
