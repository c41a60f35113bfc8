package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository"
	"go.uber.org/zap"
)

type GradeService struct {
	gradeRepo *repository.GradeRepository
	logger    *zap.Logger
}

func NewGradeService(gradeRepo *repository.GradeRepository, logger *zap.Logger) *GradeService {
	return &GradeService{gradeRepo: gradeRepo, logger: logger}
}

// Subjects список предметов журнала
func (s *GradeService) Subjects(ctx context.Context) ([]model.Subject, error) {
	return s.gradeRepo.Subjects(ctx)
}

// AddSubject добавляет предмет. Имя уникально без учёта регистра,
// идентификатор постоянный и выдаётся при создании.
func (s *GradeService) AddSubject(ctx context.Context, name string) (*model.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingFields
	}
	subjects, err := s.gradeRepo.Subjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("add subject: %w", err)
	}
	for _, sub := range subjects {
		if strings.EqualFold(sub.Name, name) {
			return nil, ErrDuplicateName
		}
	}
	subject := model.Subject{ID: uuid.NewString(), Name: name}
	subjects = append(subjects, subject)
	if err := s.gradeRepo.SaveSubjects(ctx, subjects); err != nil {
		return nil, fmt.Errorf("add subject: %w", err)
	}
	s.logger.Info("subject added", zap.String("name", name))
	return &subject, nil
}

// RemoveSubject удаляет предмет из списка. Оценки в журналах остаются,
// они просто перестают отображаться.
func (s *GradeService) RemoveSubject(ctx context.Context, id string) error {
	subjects, err := s.gradeRepo.Subjects(ctx)
	if err != nil {
		return fmt.Errorf("remove subject: %w", err)
	}
	out := make([]model.Subject, 0, len(subjects))
	found := false
	for _, sub := range subjects {
		if sub.ID == id {
			found = true
			continue
		}
		out = append(out, sub)
	}
	if !found {
		return ErrNotFound
	}
	if err := s.gradeRepo.SaveSubjects(ctx, out); err != nil {
		return fmt.Errorf("remove subject: %w", err)
	}
	return nil
}

// Gradebook журнал семестра целиком
func (s *GradeService) Gradebook(ctx context.Context, term model.Term) (model.Gradebook, error) {
	return s.gradeRepo.Load(ctx, term)
}

// StudentGrades оценки одного ученика за семестр: id предмета -> балл
func (s *GradeService) StudentGrades(ctx context.Context, term model.Term, studentID string) (map[string]string, error) {
	book, err := s.gradeRepo.Load(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("student grades: %w", err)
	}
	row := book[studentID]
	if row == nil {
		row = map[string]string{}
	}
	return row, nil
}

// SetScore проставляет оценку ученику по предмету в указанном семестре
func (s *GradeService) SetScore(ctx context.Context, term model.Term, studentID, subjectID, score string) error {
	if studentID == "" || subjectID == "" {
		return ErrMissingFields
	}
	book, err := s.gradeRepo.Load(ctx, term)
	if err != nil {
		return fmt.Errorf("set score: %w", err)
	}
	book.SetScore(studentID, subjectID, score)
	if err := s.gradeRepo.Save(ctx, term, book); err != nil {
		return fmt.Errorf("set score: %w", err)
	}
	return nil
}
