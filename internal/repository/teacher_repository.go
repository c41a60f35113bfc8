package repository

import (
	"context"

	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository/base"
)

type TeacherRepository struct {
	base *base.Repository
}

func NewTeacherRepository(store kvstore.Store) *TeacherRepository {
	return &TeacherRepository{base: base.NewRepository(store)}
}

// All загружает состав, при пустом хранилище возвращает демо-список
func (r *TeacherRepository) All(ctx context.Context) ([]model.Teacher, error) {
	var teachers []model.Teacher
	ok, err := r.base.LoadJSON(ctx, KeyTeachers, &teachers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return DefaultTeachers(), nil
	}
	return teachers, nil
}

// Save записывает весь состав
func (r *TeacherRepository) Save(ctx context.Context, teachers []model.Teacher) error {
	return r.base.SaveJSON(ctx, KeyTeachers, teachers)
}
