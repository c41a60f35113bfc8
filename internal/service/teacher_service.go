package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository"
	"go.uber.org/zap"
)

type TeacherService struct {
	teacherRepo *repository.TeacherRepository
	logger      *zap.Logger
}

func NewTeacherService(teacherRepo *repository.TeacherRepository, logger *zap.Logger) *TeacherService {
	return &TeacherService{teacherRepo: teacherRepo, logger: logger}
}

// List весь преподавательский состав
func (s *TeacherService) List(ctx context.Context) ([]model.Teacher, error) {
	return s.teacherRepo.All(ctx)
}

// Create добавляет учителя, идентификатор присваивается при создании
func (s *TeacherService) Create(ctx context.Context, teacher model.Teacher) (*model.Teacher, error) {
	if teacher.Name == "" {
		return nil, ErrMissingFields
	}
	teachers, err := s.teacherRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("create teacher: %w", err)
	}
	teacher.ID = uuid.NewString()
	teachers = append(teachers, teacher)
	if err := s.teacherRepo.Save(ctx, teachers); err != nil {
		return nil, fmt.Errorf("create teacher: %w", err)
	}
	s.logger.Info("teacher created", zap.String("name", teacher.Name))
	return &teacher, nil
}

// Update обновляет карточку учителя по id
func (s *TeacherService) Update(ctx context.Context, teacher model.Teacher) (*model.Teacher, error) {
	teachers, err := s.teacherRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("update teacher: %w", err)
	}
	for i := range teachers {
		if teachers[i].ID == teacher.ID {
			teachers[i] = teacher
			if err := s.teacherRepo.Save(ctx, teachers); err != nil {
				return nil, fmt.Errorf("update teacher: %w", err)
			}
			return &teachers[i], nil
		}
	}
	return nil, ErrNotFound
}

// Delete удаляет учителя по id
func (s *TeacherService) Delete(ctx context.Context, id string) error {
	teachers, err := s.teacherRepo.All(ctx)
	if err != nil {
		return fmt.Errorf("delete teacher: %w", err)
	}
	out := make([]model.Teacher, 0, len(teachers))
	found := false
	for _, t := range teachers {
		if t.ID == id {
			found = true
			continue
		}
		out = append(out, t)
	}
	if !found {
		return ErrNotFound
	}
	if err := s.teacherRepo.Save(ctx, out); err != nil {
		return fmt.Errorf("delete teacher: %w", err)
	}
	s.logger.Info("teacher deleted", zap.String("id", id))
	return nil
}
