package repository

import (
	"context"

	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository/base"
)

type AttendanceRepository struct {
	base *base.Repository
}

func NewAttendanceRepository(store kvstore.Store) *AttendanceRepository {
	return &AttendanceRepository{base: base.NewRepository(store)}
}

// Load загружает отметки за дату, при отсутствии возвращает пустую запись
func (r *AttendanceRepository) Load(ctx context.Context, date string) (model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	ok, err := r.base.LoadJSON(ctx, AttendanceKey(date), &record)
	if err != nil {
		return nil, err
	}
	if !ok || record == nil {
		record = model.AttendanceRecord{}
	}
	return record, nil
}

// Save полностью перезаписывает отметки за дату
func (r *AttendanceRepository) Save(ctx context.Context, date string, record model.AttendanceRecord) error {
	return r.base.SaveJSON(ctx, AttendanceKey(date), record)
}
