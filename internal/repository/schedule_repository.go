package repository

import (
	"context"

	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository/base"
)

type ScheduleRepository struct {
	base *base.Repository
}

func NewScheduleRepository(store kvstore.Store) *ScheduleRepository {
	return &ScheduleRepository{base: base.NewRepository(store)}
}

// Load загружает расписания всех классов, при отсутствии возвращает пустые
func (r *ScheduleRepository) Load(ctx context.Context) (model.ClassSchedule, error) {
	var schedule model.ClassSchedule
	ok, err := r.base.LoadJSON(ctx, KeySchedule, &schedule)
	if err != nil {
		return nil, err
	}
	if !ok || schedule == nil {
		schedule = model.ClassSchedule{}
	}
	return schedule, nil
}

// Save записывает расписания всех классов одним документом
func (r *ScheduleRepository) Save(ctx context.Context, schedule model.ClassSchedule) error {
	return r.base.SaveJSON(ctx, KeySchedule, schedule)
}
