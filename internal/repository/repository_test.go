package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/model"
)

// Повреждённый документ считается отсутствующим: репозиторий подставляет
// значение по умолчанию, а не возвращает ошибку
func TestCorruptDocumentFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyStudents, "{definitely not json"))

	students, err := NewStudentRepository(store).All(ctx)
	require.NoError(t, err)
	require.Len(t, students, 3)
	require.Equal(t, "202601", students[0].ID)

	// демо-список записан обратно поверх мусора
	raw, ok, err := store.Get(ctx, KeyStudents)
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, raw, "Kareem Masadeh")
}

// Явно сохранённый пустой список не подменяется демо-данными:
// подстановка срабатывает только при отсутствии или порче ключа
func TestSavedEmptyListStaysEmpty(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()

	studentRepo := NewStudentRepository(store)
	require.NoError(t, studentRepo.Save(ctx, []model.Student{}))
	students, err := studentRepo.All(ctx)
	require.NoError(t, err)
	require.Empty(t, students)

	raw, ok, err := store.Get(ctx, KeyStudents)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotContains(t, raw, "Kareem Masadeh")

	gradeRepo := NewGradeRepository(store)
	require.NoError(t, gradeRepo.SaveSubjects(ctx, []model.Subject{}))
	subjects, err := gradeRepo.Subjects(ctx)
	require.NoError(t, err)
	require.Empty(t, subjects)
}

func TestStudentByIDAbsent(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository(kvstore.NewMemoryStore())

	student, err := repo.ByID(ctx, "000000")
	require.NoError(t, err)
	require.Nil(t, student)
}

func TestAttendanceKeyPerDate(t *testing.T) {
	require.Equal(t, "viola_attendance_2026-01-15", AttendanceKey("2026-01-15"))
}

func TestSessionMarkersParseFailureMeansAbsent(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewSessionRepository(store)

	require.NoError(t, store.Set(ctx, KeyCurrentUser, "garbage"))
	user, err := repo.CurrentUser(ctx)
	require.NoError(t, err)
	require.Nil(t, user)

	require.NoError(t, store.Set(ctx, KeyPreviewTeacher, "{broken"))
	preview, err := repo.PreviewTeacher(ctx)
	require.NoError(t, err)
	require.Nil(t, preview)
}

func TestSessionClearContracts(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewSessionRepository(store)

	require.NoError(t, repo.SetCurrentUser(ctx, model.CurrentUser{Role: "admin"}))
	require.NoError(t, repo.SetCurrentStudentID(ctx, "202601"))
	require.NoError(t, repo.SetPreviewStudentID(ctx, "202602"))
	require.NoError(t, repo.SetPreviewTeacher(ctx, model.PreviewTeacher{Name: "Ms. Huda"}))

	require.NoError(t, repo.ClearPreview(ctx))
	user, err := repo.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	id, err := repo.PreviewStudentID(ctx)
	require.NoError(t, err)
	require.Empty(t, id)

	require.NoError(t, repo.ClearLogin(ctx))
	user, err = repo.CurrentUser(ctx)
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestGradeTermsUseSeparateKeys(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewGradeRepository(store)

	first := model.Gradebook{"202601": {"math": "A"}}
	require.NoError(t, repo.Save(ctx, model.TermFirst, first))

	second, err := repo.Load(ctx, model.TermSecond)
	require.NoError(t, err)
	require.Empty(t, second)

	_, ok, err := store.Get(ctx, KeyGradesFirst)
	require.NoError(t, err)
	require.True(t, ok)
	_, ok, err = store.Get(ctx, KeyGradesSecond)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAnnouncementLegacyKeyReadOnly(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewAnnouncementRepository(store)

	require.NoError(t, store.Set(ctx, "viola_notifications", `[{"id":"n1","title":"old"}]`))

	msgs, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	require.NoError(t, repo.Save(ctx, msgs))

	// запись ушла под основной ключ, старый не перезаписывается
	_, ok, err := store.Get(ctx, KeyAnnouncements)
	require.NoError(t, err)
	require.True(t, ok)
	raw, ok, err := store.Get(ctx, "viola_notifications")
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, raw, "old")
}
