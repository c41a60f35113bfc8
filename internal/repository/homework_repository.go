package repository

import (
	"context"

	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository/base"
)

type HomeworkRepository struct {
	base *base.Repository
}

func NewHomeworkRepository(store kvstore.Store) *HomeworkRepository {
	return &HomeworkRepository{base: base.NewRepository(store)}
}

// All загружает задания, порядок хранения — новые в начале
func (r *HomeworkRepository) All(ctx context.Context) ([]model.Homework, error) {
	var items []model.Homework
	ok, err := r.base.LoadJSON(ctx, KeyHomework, &items)
	if err != nil {
		return nil, err
	}
	if !ok {
		return DefaultHomework(), nil
	}
	return items, nil
}

// ByClass задания одного класса с сохранением порядка
func (r *HomeworkRepository) ByClass(ctx context.Context, class string) ([]model.Homework, error) {
	items, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Homework, 0, len(items))
	for _, h := range items {
		if h.Class == class {
			out = append(out, h)
		}
	}
	return out, nil
}

// Save записывает весь список заданий
func (r *HomeworkRepository) Save(ctx context.Context, items []model.Homework) error {
	return r.base.SaveJSON(ctx, KeyHomework, items)
}
