package repository

import (
	"context"

	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository/base"
)

type GradeRepository struct {
	base *base.Repository
}

func NewGradeRepository(store kvstore.Store) *GradeRepository {
	return &GradeRepository{base: base.NewRepository(store)}
}

// gradesKey каждый семестр хранится под собственным ключом
func gradesKey(term model.Term) string {
	if term == model.TermSecond {
		return KeyGradesSecond
	}
	return KeyGradesFirst
}

// Load загружает журнал семестра, при отсутствии возвращает пустой
func (r *GradeRepository) Load(ctx context.Context, term model.Term) (model.Gradebook, error) {
	var book model.Gradebook
	ok, err := r.base.LoadJSON(ctx, gradesKey(term), &book)
	if err != nil {
		return nil, err
	}
	if !ok || book == nil {
		book = model.Gradebook{}
	}
	return book, nil
}

// Save записывает журнал семестра целиком
func (r *GradeRepository) Save(ctx context.Context, term model.Term, book model.Gradebook) error {
	return r.base.SaveJSON(ctx, gradesKey(term), book)
}

// Subjects загружает предметы, при отсутствии ключа возвращает базовый набор
func (r *GradeRepository) Subjects(ctx context.Context) ([]model.Subject, error) {
	var subjects []model.Subject
	ok, err := r.base.LoadJSON(ctx, KeySubjects, &subjects)
	if err != nil {
		return nil, err
	}
	if !ok {
		return DefaultSubjects(), nil
	}
	return subjects, nil
}

// SaveSubjects записывает список предметов
func (r *GradeRepository) SaveSubjects(ctx context.Context, subjects []model.Subject) error {
	return r.base.SaveJSON(ctx, KeySubjects, subjects)
}
