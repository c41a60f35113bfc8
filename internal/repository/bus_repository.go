package repository

import (
	"context"

	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository/base"
)

type BusRepository struct {
	base *base.Repository
}

func NewBusRepository(store kvstore.Store) *BusRepository {
	return &BusRepository{base: base.NewRepository(store)}
}

// Route загружает маршрут автобуса, при отсутствии записи отдаёт демо-маршрут
func (r *BusRepository) Route(ctx context.Context) (model.BusRoute, error) {
	var route model.BusRoute
	ok, err := r.base.LoadJSON(ctx, KeyBusData, &route)
	if err != nil {
		return model.BusRoute{}, err
	}
	if !ok {
		return DefaultBusRoute(), nil
	}
	return route, nil
}

// Save записывает маршрут автобуса
func (r *BusRepository) Save(ctx context.Context, route model.BusRoute) error {
	return r.base.SaveJSON(ctx, KeyBusData, route)
}
