package repository

import (
	"context"

	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository/base"
)

type OrderRepository struct {
	base *base.Repository
}

func NewOrderRepository(store kvstore.Store) *OrderRepository {
	return &OrderRepository{base: base.NewRepository(store)}
}

// Cart загружает корзину, при отсутствии возвращает пустую
func (r *OrderRepository) Cart(ctx context.Context) ([]model.CartItem, error) {
	var items []model.CartItem
	if _, err := r.base.LoadJSON(ctx, KeyCart, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return items, nil
}

// SaveCart записывает корзину целиком
func (r *OrderRepository) SaveCart(ctx context.Context, items []model.CartItem) error {
	return r.base.SaveJSON(ctx, KeyCart, items)
}

// Orders загружает список заказов
func (r *OrderRepository) Orders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if _, err := r.base.LoadJSON(ctx, KeyOrders, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// SaveOrders записывает список заказов целиком
func (r *OrderRepository) SaveOrders(ctx context.Context, orders []model.Order) error {
	return r.base.SaveJSON(ctx, KeyOrders, orders)
}
