package repository

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/model"
)

// SessionRepository читает и пишет маркеры сессии. Маркер с битым
// содержимым считается отсутствующим, ошибкой это не является.
type SessionRepository struct {
	store kvstore.Store
}

func NewSessionRepository(store kvstore.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// CurrentUser возвращает маркер входа администратора или учителя
func (r *SessionRepository) CurrentUser(ctx context.Context) (*model.CurrentUser, error) {
	raw, ok, err := r.store.Get(ctx, KeyCurrentUser)
	if err != nil || !ok {
		return nil, err
	}
	var user model.CurrentUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, nil
	}
	return &user, nil
}

// SetCurrentUser сохраняет маркер входа
func (r *SessionRepository) SetCurrentUser(ctx context.Context, user model.CurrentUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, KeyCurrentUser, string(data))
}

// CurrentStudentID возвращает id ученика, под которым вошёл родитель
func (r *SessionRepository) CurrentStudentID(ctx context.Context) (string, error) {
	return r.plain(ctx, KeyCurrentStudentID)
}

// SetCurrentStudentID сохраняет id ученика родительской сессии
func (r *SessionRepository) SetCurrentStudentID(ctx context.Context, id string) error {
	return r.store.Set(ctx, KeyCurrentStudentID, id)
}

// CurrentTeacher возвращает логин учителя
func (r *SessionRepository) CurrentTeacher(ctx context.Context) (string, error) {
	return r.plain(ctx, KeyCurrentTeacher)
}

// SetCurrentTeacher сохраняет логин учителя
func (r *SessionRepository) SetCurrentTeacher(ctx context.Context, login string) error {
	return r.store.Set(ctx, KeyCurrentTeacher, login)
}

// PreviewStudentID возвращает id ученика, выбранного администратором для просмотра
func (r *SessionRepository) PreviewStudentID(ctx context.Context) (string, error) {
	return r.plain(ctx, KeyPreviewStudentID)
}

// SetPreviewStudentID сохраняет маркер просмотра родительского кабинета
func (r *SessionRepository) SetPreviewStudentID(ctx context.Context, id string) error {
	return r.store.Set(ctx, KeyPreviewStudentID, id)
}

// PreviewTeacher возвращает маркер просмотра кабинета учителя
func (r *SessionRepository) PreviewTeacher(ctx context.Context) (*model.PreviewTeacher, error) {
	raw, ok, err := r.store.Get(ctx, KeyPreviewTeacher)
	if err != nil || !ok {
		return nil, err
	}
	var preview model.PreviewTeacher
	if err := json.Unmarshal([]byte(raw), &preview); err != nil {
		return nil, nil
	}
	if preview.Name == "" {
		return nil, nil
	}
	return &preview, nil
}

// SetPreviewTeacher сохраняет маркер просмотра кабинета учителя
func (r *SessionRepository) SetPreviewTeacher(ctx context.Context, preview model.PreviewTeacher) error {
	data, err := json.Marshal(preview)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, KeyPreviewTeacher, string(data))
}

// ClearLogin снимает маркеры настоящего входа, маркеры просмотра не трогает
func (r *SessionRepository) ClearLogin(ctx context.Context) error {
	return r.store.Remove(ctx, KeyCurrentUser, KeyCurrentStudentID, KeyCurrentTeacher)
}

// ClearPreview снимает только маркеры просмотра, вход администратора сохраняется
func (r *SessionRepository) ClearPreview(ctx context.Context) error {
	return r.store.Remove(ctx, KeyPreviewStudentID, KeyPreviewTeacher)
}

func (r *SessionRepository) plain(ctx context.Context, key string) (string, error) {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil || !ok {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}
