package repository

import (
	"context"
	"strings"

	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository/base"
)

type StudentRepository struct {
	base *base.Repository
}

func NewStudentRepository(store kvstore.Store) *StudentRepository {
	return &StudentRepository{base: base.NewRepository(store)}
}

// All загружает всех учеников. Если ключа нет или он повреждён,
// подставляет демо-список и записывает его обратно, как делает приложение.
// Явно сохранённый пустой список остаётся пустым.
func (r *StudentRepository) All(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	ok, err := r.base.LoadJSON(ctx, KeyStudents, &students)
	if err != nil {
		return nil, err
	}
	if !ok {
		students = DefaultStudents()
		if err := r.base.SaveJSON(ctx, KeyStudents, students); err != nil {
			return nil, err
		}
	}
	return students, nil
}

// Save записывает весь список учеников
func (r *StudentRepository) Save(ctx context.Context, students []model.Student) error {
	return r.base.SaveJSON(ctx, KeyStudents, students)
}

// ByID находит ученика по идентификатору
func (r *StudentRepository) ByID(ctx context.Context, id string) (*model.Student, error) {
	students, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].ID == id {
			return &students[i], nil
		}
	}
	return nil, nil
}

// ByClass ученики одного класса, свежая проекция без кеширования
func (r *StudentRepository) ByClass(ctx context.Context, class string) ([]model.Student, error) {
	students, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Student, 0, len(students))
	for _, s := range students {
		if s.Grade == class {
			out = append(out, s)
		}
	}
	return out, nil
}

// Search ученики, у которых имя или id содержит подстроку запроса
func (r *StudentRepository) Search(ctx context.Context, query string) ([]model.Student, error) {
	students, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	out := make([]model.Student, 0, len(students))
	for _, s := range students {
		if strings.Contains(strings.ToLower(s.Name), q) || strings.Contains(s.ID, query) {
			out = append(out, s)
		}
	}
	return out, nil
}
