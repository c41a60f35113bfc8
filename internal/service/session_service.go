package service

import (
	"context"
	"fmt"

	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository"
	"go.uber.org/zap"
)

// Демо-учётки. Родители входят по id ученика и паролю из карточки ученика.
const (
	teacherLogin    = "teach1"
	teacherPassword = "admin"
	adminLogin      = "admin"
	adminPassword   = "admin123"

	teacherDefaultName  = "Ms. Huda"
	teacherDefaultClass = "KG1 A"
)

type SessionService struct {
	sessionRepo *repository.SessionRepository
	studentRepo *repository.StudentRepository
	logger      *zap.Logger
}

func NewSessionService(
	sessionRepo *repository.SessionRepository,
	studentRepo *repository.StudentRepository,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// Resolve определяет текущую роль по маркерам хранилища. Только чтение,
// порядок проверок фиксированный: предпросмотр родителя, вход родителя,
// предпросмотр учителя, вход учителя, общий маркер, иначе публичный доступ.
// Ошибка чтения маркера не прерывает разбор: она логируется, и проверка
// переходит к следующему правилу, чтобы роль определялась всегда.
func (s *SessionService) Resolve(ctx context.Context) (model.Session, error) {
	// маркеры родительского дашборда, предпросмотр побеждает настоящий вход
	previewID, err := s.sessionRepo.PreviewStudentID(ctx)
	if err != nil {
		s.markerReadFailed("preview_student_id", err)
	}
	if previewID != "" {
		return model.Session{Role: model.RoleParent, StudentID: previewID, AdminPreview: true}, nil
	}

	currentID, err := s.sessionRepo.CurrentStudentID(ctx)
	if err != nil {
		s.markerReadFailed("current_student_id", err)
	}
	if currentID != "" {
		return model.Session{Role: model.RoleParent, StudentID: currentID}, nil
	}

	// маркеры дашборда учителя
	previewTeacher, err := s.sessionRepo.PreviewTeacher(ctx)
	if err != nil {
		s.markerReadFailed("preview_teacher", err)
	}
	if previewTeacher != nil {
		class := previewTeacher.Class
		if class == "" {
			class = teacherDefaultClass
		}
		return model.Session{
			Role:         model.RoleTeacher,
			TeacherName:  previewTeacher.Name,
			TeacherClass: class,
			AdminPreview: true,
		}, nil
	}

	teacherID, err := s.sessionRepo.CurrentTeacher(ctx)
	if err != nil {
		s.markerReadFailed("current_teacher_email", err)
	}
	if teacherID != "" {
		return model.Session{
			Role:         model.RoleTeacher,
			TeacherName:  teacherDefaultName,
			TeacherClass: teacherDefaultClass,
		}, nil
	}

	user, err := s.sessionRepo.CurrentUser(ctx)
	if err != nil {
		s.markerReadFailed("current_user", err)
	}
	if user != nil {
		switch user.Role {
		case string(model.RoleAdmin):
			return model.Session{Role: model.RoleAdmin}, nil
		case string(model.RoleTeacher):
			class := user.Class
			if class == "" {
				class = teacherDefaultClass
			}
			return model.Session{
				Role:         model.RoleTeacher,
				TeacherName:  user.Name,
				TeacherClass: class,
			}, nil
		}
	}

	return model.Session{Role: model.RolePublic}, nil
}

func (s *SessionService) markerReadFailed(marker string, err error) {
	s.logger.Warn("session marker read failed", zap.String("marker", marker), zap.Error(err))
}

// LoginParent вход родителя по id ученика и паролю из его карточки
func (s *SessionService) LoginParent(ctx context.Context, studentID, password string) (model.Session, error) {
	student, err := s.studentRepo.ByID(ctx, studentID)
	if err != nil {
		return model.Session{}, fmt.Errorf("parent login: %w", err)
	}
	if student == nil || student.Password != password {
		return model.Session{}, ErrInvalidCredentials
	}
	if err := s.sessionRepo.SetCurrentStudentID(ctx, student.ID); err != nil {
		return model.Session{}, fmt.Errorf("parent login: %w", err)
	}
	s.logger.Info("parent logged in", zap.String("student_id", student.ID))
	return model.Session{Role: model.RoleParent, StudentID: student.ID}, nil
}

// LoginTeacher вход учителя
func (s *SessionService) LoginTeacher(ctx context.Context, login, password string) (model.Session, error) {
	if login != teacherLogin || password != teacherPassword {
		return model.Session{}, ErrInvalidCredentials
	}
	if err := s.sessionRepo.SetCurrentTeacher(ctx, login); err != nil {
		return model.Session{}, fmt.Errorf("teacher login: %w", err)
	}
	s.logger.Info("teacher logged in", zap.String("login", login))
	return model.Session{
		Role:         model.RoleTeacher,
		TeacherName:  teacherDefaultName,
		TeacherClass: teacherDefaultClass,
	}, nil
}

// LoginAdmin вход администратора
func (s *SessionService) LoginAdmin(ctx context.Context, login, password string) (model.Session, error) {
	if login != adminLogin || password != adminPassword {
		return model.Session{}, ErrInvalidCredentials
	}
	user := model.CurrentUser{Role: string(model.RoleAdmin), Name: "Admin"}
	if err := s.sessionRepo.SetCurrentUser(ctx, user); err != nil {
		return model.Session{}, fmt.Errorf("admin login: %w", err)
	}
	s.logger.Info("admin logged in")
	return model.Session{Role: model.RoleAdmin}, nil
}

// Logout снимает маркеры настоящего входа. Маркеры предпросмотра
// не трогает, для выхода из предпросмотра есть ExitPreview.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.sessionRepo.ClearLogin(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// PreviewStudent включает админский предпросмотр родительского дашборда
func (s *SessionService) PreviewStudent(ctx context.Context, studentID string) error {
	student, err := s.studentRepo.ByID(ctx, studentID)
	if err != nil {
		return fmt.Errorf("preview student: %w", err)
	}
	if student == nil {
		return ErrNotFound
	}
	if err := s.sessionRepo.SetPreviewStudentID(ctx, student.ID); err != nil {
		return fmt.Errorf("preview student: %w", err)
	}
	s.logger.Info("admin preview started", zap.String("student_id", student.ID))
	return nil
}

// PreviewTeacher включает админский предпросмотр дашборда учителя
func (s *SessionService) PreviewTeacher(ctx context.Context, name, class string) error {
	if name == "" {
		return ErrMissingFields
	}
	if class == "" {
		class = teacherDefaultClass
	}
	preview := model.PreviewTeacher{Name: name, Class: class}
	if err := s.sessionRepo.SetPreviewTeacher(ctx, preview); err != nil {
		return fmt.Errorf("preview teacher: %w", err)
	}
	s.logger.Info("admin preview started", zap.String("teacher", name))
	return nil
}

// ExitPreview снимает только маркеры предпросмотра, вход админа остаётся
func (s *SessionService) ExitPreview(ctx context.Context) error {
	if err := s.sessionRepo.ClearPreview(ctx); err != nil {
		return fmt.Errorf("exit preview: %w", err)
	}
	return nil
}
