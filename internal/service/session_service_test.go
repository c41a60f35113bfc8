package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository"
)

func newSessionService(t *testing.T) (*SessionService, kvstore.Store) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	return NewSessionService(
		repository.NewSessionRepository(store),
		repository.NewStudentRepository(store),
		zap.NewNop(),
	), store
}

func TestResolvePrecedence(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		prepare map[string]string
		want    model.Session
	}{
		{
			name: "no markers",
			want: model.Session{Role: model.RolePublic},
		},
		{
			name:    "parent login",
			prepare: map[string]string{repository.KeyCurrentStudentID: "202601"},
			want:    model.Session{Role: model.RoleParent, StudentID: "202601"},
		},
		{
			name: "student preview beats parent login",
			prepare: map[string]string{
				repository.KeyCurrentStudentID: "202601",
				repository.KeyPreviewStudentID: "202602",
			},
			want: model.Session{Role: model.RoleParent, StudentID: "202602", AdminPreview: true},
		},
		{
			name:    "teacher login",
			prepare: map[string]string{repository.KeyCurrentTeacher: "teach1"},
			want: model.Session{
				Role:         model.RoleTeacher,
				TeacherName:  "Ms. Huda",
				TeacherClass: "KG1 A",
			},
		},
		{
			name: "teacher preview marks admin preview",
			prepare: map[string]string{
				repository.KeyPreviewTeacher: `{"name":"Mr. John","class":"KG2 B"}`,
			},
			want: model.Session{
				Role:         model.RoleTeacher,
				TeacherName:  "Mr. John",
				TeacherClass: "KG2 B",
				AdminPreview: true,
			},
		},
		{
			name: "student preview beats teacher markers",
			prepare: map[string]string{
				repository.KeyPreviewStudentID: "202601",
				repository.KeyCurrentTeacher:   "teach1",
			},
			want: model.Session{Role: model.RoleParent, StudentID: "202601", AdminPreview: true},
		},
		{
			name:    "admin marker",
			prepare: map[string]string{repository.KeyCurrentUser: `{"role":"admin","name":"Admin"}`},
			want:    model.Session{Role: model.RoleAdmin},
		},
		{
			name:    "corrupt current user is ignored",
			prepare: map[string]string{repository.KeyCurrentUser: "not json"},
			want:    model.Session{Role: model.RolePublic},
		},
		{
			name:    "corrupt teacher preview is ignored",
			prepare: map[string]string{repository.KeyPreviewTeacher: "{broken"},
			want:    model.Session{Role: model.RolePublic},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newSessionService(t)
			for k, v := range tt.prepare {
				require.NoError(t, store.Set(ctx, k, v))
			}
			got, err := svc.Resolve(ctx)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

type flakyStore struct {
	kvstore.Store
	failKeys map[string]bool
}

func (f *flakyStore) Get(ctx context.Context, key string) (string, bool, error) {
	if f.failKeys[key] {
		return "", false, errors.New("connection reset by peer")
	}
	return f.Store.Get(ctx, key)
}

// Сбой чтения маркера не ломает разбор сессии: правило пропускается,
// и роль определяется по оставшимся маркерам
func TestResolveSkipsUnreadableMarkers(t *testing.T) {
	ctx := context.Background()
	inner := kvstore.NewMemoryStore()
	store := &flakyStore{Store: inner, failKeys: map[string]bool{
		repository.KeyPreviewStudentID: true,
		repository.KeyCurrentStudentID: true,
	}}
	svc := NewSessionService(
		repository.NewSessionRepository(store),
		repository.NewStudentRepository(store),
		zap.NewNop(),
	)

	require.NoError(t, inner.Set(ctx, repository.KeyCurrentTeacher, "teach1"))
	session, err := svc.Resolve(ctx)
	require.NoError(t, err)
	require.Equal(t, model.RoleTeacher, session.Role)

	// все маркеры нечитаемы, остаётся публичный доступ
	store.failKeys[repository.KeyPreviewTeacher] = true
	store.failKeys[repository.KeyCurrentTeacher] = true
	store.failKeys[repository.KeyCurrentUser] = true
	session, err = svc.Resolve(ctx)
	require.NoError(t, err)
	require.Equal(t, model.RolePublic, session.Role)
}

func TestLoginParent(t *testing.T) {
	ctx := context.Background()
	svc, store := newSessionService(t)

	_, err := svc.LoginParent(ctx, "202601", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	session, err := svc.LoginParent(ctx, "202601", "123456")
	require.NoError(t, err)
	require.Equal(t, model.RoleParent, session.Role)
	require.Equal(t, "202601", session.StudentID)

	raw, ok, err := store.Get(ctx, repository.KeyCurrentStudentID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "202601", raw)
}

func TestLoginStaff(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSessionService(t)

	_, err := svc.LoginTeacher(ctx, "teach1", "nope")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.LoginAdmin(ctx, "admin", "nope")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	teacher, err := svc.LoginTeacher(ctx, "teach1", "admin")
	require.NoError(t, err)
	require.Equal(t, model.RoleTeacher, teacher.Role)

	admin, err := svc.LoginAdmin(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, admin.Role)
}

// Выход из предпросмотра возвращает админа, а не разлогинивает его
func TestExitPreviewKeepsAdminLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSessionService(t)

	_, err := svc.LoginAdmin(ctx, "admin", "admin123")
	require.NoError(t, err)
	require.NoError(t, svc.PreviewStudent(ctx, "202601"))

	session, err := svc.Resolve(ctx)
	require.NoError(t, err)
	require.Equal(t, model.RoleParent, session.Role)
	require.True(t, session.AdminPreview)

	require.NoError(t, svc.ExitPreview(ctx))
	session, err = svc.Resolve(ctx)
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, session.Role)
}

func TestLogoutKeepsPreviewMarkersIntact(t *testing.T) {
	ctx := context.Background()
	svc, store := newSessionService(t)

	_, err := svc.LoginParent(ctx, "202601", "123456")
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, repository.KeyPreviewStudentID, "202602"))

	require.NoError(t, svc.Logout(ctx))

	_, ok, err := store.Get(ctx, repository.KeyCurrentStudentID)
	require.NoError(t, err)
	require.False(t, ok)
	_, ok, err = store.Get(ctx, repository.KeyPreviewStudentID)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestPreviewStudentUnknownID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSessionService(t)
	require.ErrorIs(t, svc.PreviewStudent(ctx, "999999"), ErrNotFound)
}
