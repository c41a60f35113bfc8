package service

import (
	"context"
	"fmt"

	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository"
	"go.uber.org/zap"
)

const defaultStudentPassword = "123456"

type StudentService struct {
	studentRepo *repository.StudentRepository
	logger      *zap.Logger
}

func NewStudentService(studentRepo *repository.StudentRepository, logger *zap.Logger) *StudentService {
	return &StudentService{studentRepo: studentRepo, logger: logger}
}

// List все ученики
func (s *StudentService) List(ctx context.Context) ([]model.Student, error) {
	return s.studentRepo.All(ctx)
}

// Get ученик по id
func (s *StudentService) Get(ctx context.Context, id string) (*model.Student, error) {
	student, err := s.studentRepo.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrNotFound
	}
	return student, nil
}

// ByClass ученики одного класса
func (s *StudentService) ByClass(ctx context.Context, class string) ([]model.Student, error) {
	return s.studentRepo.ByClass(ctx, class)
}

// Search поиск по имени или id
func (s *StudentService) Search(ctx context.Context, query string) ([]model.Student, error) {
	return s.studentRepo.Search(ctx, query)
}

// Create добавляет ученика. Id уникален, оплата начинается с нуля,
// пароль по умолчанию общий для новых карточек.
func (s *StudentService) Create(ctx context.Context, student model.Student) (*model.Student, error) {
	if student.ID == "" || student.Name == "" || student.Grade == "" {
		return nil, ErrMissingFields
	}
	students, err := s.studentRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	for _, st := range students {
		if st.ID == student.ID {
			return nil, ErrDuplicateID
		}
	}
	student.Paid = 0
	if student.Password == "" {
		student.Password = defaultStudentPassword
	}
	students = append(students, student)
	if err := s.studentRepo.Save(ctx, students); err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	s.logger.Info("student created", zap.String("id", student.ID), zap.String("class", student.Grade))
	return &student, nil
}

// Update обновляет карточку ученика по id
func (s *StudentService) Update(ctx context.Context, student model.Student) (*model.Student, error) {
	students, err := s.studentRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}
	for i := range students {
		if students[i].ID == student.ID {
			if student.Password == "" {
				student.Password = students[i].Password
			}
			students[i] = student
			if err := s.studentRepo.Save(ctx, students); err != nil {
				return nil, fmt.Errorf("update student: %w", err)
			}
			return &students[i], nil
		}
	}
	return nil, ErrNotFound
}

// Delete удаляет ученика по id
func (s *StudentService) Delete(ctx context.Context, id string) error {
	students, err := s.studentRepo.All(ctx)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	out := make([]model.Student, 0, len(students))
	found := false
	for _, st := range students {
		if st.ID == id {
			found = true
			continue
		}
		out = append(out, st)
	}
	if !found {
		return ErrNotFound
	}
	if err := s.studentRepo.Save(ctx, out); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	s.logger.Info("student deleted", zap.String("id", id))
	return nil
}

// RecordPayment фиксирует оплату обучения, сумма добавляется к Paid
func (s *StudentService) RecordPayment(ctx context.Context, id string, amount float64) (*model.Student, error) {
	if amount <= 0 {
		return nil, ErrMissingFields
	}
	return s.mutate(ctx, id, func(st *model.Student) {
		st.Paid += amount
	})
}

// TopUpWallet пополняет кошелёк ученика
func (s *StudentService) TopUpWallet(ctx context.Context, id string, amount float64) (*model.Student, error) {
	if amount <= 0 {
		return nil, ErrMissingFields
	}
	st, err := s.mutate(ctx, id, func(st *model.Student) {
		st.Credit += amount
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("wallet topped up", zap.String("id", id), zap.Float64("amount", amount))
	return st, nil
}

// UpdatePhoto сохраняет фотографию ученика (data-URI)
func (s *StudentService) UpdatePhoto(ctx context.Context, id, photo string) (*model.Student, error) {
	return s.mutate(ctx, id, func(st *model.Student) {
		st.Photo = photo
	})
}

// mutate находит ученика, применяет изменение и сохраняет весь список
func (s *StudentService) mutate(ctx context.Context, id string, fn func(*model.Student)) (*model.Student, error) {
	students, err := s.studentRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].ID == id {
			fn(&students[i])
			if err := s.studentRepo.Save(ctx, students); err != nil {
				return nil, err
			}
			return &students[i], nil
		}
	}
	return nil, ErrNotFound
}
