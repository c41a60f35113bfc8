package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository"
	"github.com/viola-academy/academy_app/internal/repository/base"
	"go.uber.org/zap"
)

// ShopService магазин формы, меню столовой, корзина и заказы
type ShopService struct {
	store       kvstore.Store
	orderRepo   *repository.OrderRepository
	studentRepo *repository.StudentRepository
	logger      *zap.Logger
	now         func() time.Time
}

func NewShopService(
	store kvstore.Store,
	orderRepo *repository.OrderRepository,
	studentRepo *repository.StudentRepository,
	logger *zap.Logger,
) *ShopService {
	return &ShopService{
		store:       store,
		orderRepo:   orderRepo,
		studentRepo: studentRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// UniformCatalog каталог школьной формы, цены в динарах
func UniformCatalog() []model.Product {
	return []model.Product{
		{ID: "uniform_summer", NameEn: "Summer Uniform", NameAr: "الزي الصيفي", Price: 15, Image: "https://placehold.co/400x400/f1c40f/white?text=Summer"},
		{ID: "uniform_winter", NameEn: "Winter Uniform", NameAr: "الزي الشتوي", Price: 25, Image: "https://placehold.co/400x400/34495e/white?text=Winter"},
	}
}

// LunchCatalog меню столовой
func LunchCatalog() []model.Product {
	return []model.Product{
		{ID: "lunch_cheese", Category: "sandwiches", NameEn: "Cheese Sandwich", NameAr: "ساندويش جبنة", Price: 1.5},
		{ID: "lunch_turkey", Category: "sandwiches", NameEn: "Turkey Wrap", NameAr: "راب حبش", Price: 2.0},
		{ID: "snack_apple", Category: "snacks", NameEn: "Apple Slices", NameAr: "شرائح تفاح", Price: 0.5},
		{ID: "snack_juice", Category: "snacks", NameEn: "Juice Box", NameAr: "عصير", Price: 0.25},
	}
}

// Cart текущая корзина
func (s *ShopService) Cart(ctx context.Context) ([]model.CartItem, error) {
	return s.orderRepo.Cart(ctx)
}

// AddToCart кладёт позицию в корзину
func (s *ShopService) AddToCart(ctx context.Context, name string, price float64, itemType string) ([]model.CartItem, error) {
	if name == "" || price < 0 {
		return nil, ErrMissingFields
	}
	items, err := s.orderRepo.Cart(ctx)
	if err != nil {
		return nil, fmt.Errorf("add to cart: %w", err)
	}
	items = append(items, model.CartItem{
		ID:    s.now().UnixMilli(),
		Name:  name,
		Price: price,
		Type:  itemType,
	})
	if err := s.orderRepo.SaveCart(ctx, items); err != nil {
		return nil, fmt.Errorf("add to cart: %w", err)
	}
	return items, nil
}

// RemoveFromCart убирает позицию по порядковому номеру
func (s *ShopService) RemoveFromCart(ctx context.Context, index int) ([]model.CartItem, error) {
	items, err := s.orderRepo.Cart(ctx)
	if err != nil {
		return nil, fmt.Errorf("remove from cart: %w", err)
	}
	if index < 0 || index >= len(items) {
		return nil, ErrNotFound
	}
	items = append(items[:index], items[index+1:]...)
	if err := s.orderRepo.SaveCart(ctx, items); err != nil {
		return nil, fmt.Errorf("remove from cart: %w", err)
	}
	return items, nil
}

// ClearCart опустошает корзину
func (s *ShopService) ClearCart(ctx context.Context) error {
	return s.orderRepo.SaveCart(ctx, []model.CartItem{})
}

// CheckoutRequest данные оформления заказа
type CheckoutRequest struct {
	StudentID      string              `json:"student_id"`
	ParentName     string              `json:"parent_name" validate:"required"`
	Phone          string              `json:"phone" validate:"required"`
	StudentDetails string              `json:"student_details"`
	PaymentMethod  model.PaymentMethod `json:"payment_method" validate:"required,oneof=Cash Wallet"`
}

// Checkout оформляет заказ из текущей корзины. Корзина и остаток кошелька
// перечитываются в момент оформления. Оплата кошельком, новый заказ и
// очистка корзины записываются одной атомарной операцией: заказ либо
// проведён целиком, либо хранилище не изменилось.
func (s *ShopService) Checkout(ctx context.Context, req CheckoutRequest) (*model.Order, error) {
	if req.ParentName == "" || req.Phone == "" {
		return nil, ErrMissingFields
	}
	if req.PaymentMethod != model.PaymentCash && req.PaymentMethod != model.PaymentWallet {
		return nil, ErrMissingFields
	}

	items, err := s.orderRepo.Cart(ctx)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	total := model.CartTotal(items)

	orders, err := s.orderRepo.Orders(ctx)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}

	order := model.Order{
		ID:             uuid.NewString(),
		Date:           s.now().Format("2006-01-02 15:04"),
		ParentName:     req.ParentName,
		Phone:          req.Phone,
		StudentDetails: req.StudentDetails,
		Items:          items,
		Total:          total,
		PaymentMethod:  req.PaymentMethod,
		Status:         model.OrderPending,
	}
	orders = append([]model.Order{order}, orders...)

	writes := map[string]string{}
	if writes[repository.KeyOrders], err = base.Encode(orders); err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	if writes[repository.KeyCart], err = base.Encode([]model.CartItem{}); err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}

	if req.PaymentMethod == model.PaymentWallet {
		// свежий остаток, без каких-либо записей при нехватке средств
		students, err := s.studentRepo.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("checkout: %w", err)
		}
		found := false
		for i := range students {
			if students[i].ID == req.StudentID {
				if total > students[i].Credit {
					return nil, ErrInsufficientBalance
				}
				students[i].Credit -= total
				found = true
				break
			}
		}
		if !found {
			return nil, ErrNotFound
		}
		if writes[repository.KeyStudents], err = base.Encode(students); err != nil {
			return nil, fmt.Errorf("checkout: %w", err)
		}
	}

	if err := s.store.SetMulti(ctx, writes); err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Float64("total", total),
		zap.String("payment", string(order.PaymentMethod)))
	return &order, nil
}

// Orders все заказы, новые первыми
func (s *ShopService) Orders(ctx context.Context) ([]model.Order, error) {
	return s.orderRepo.Orders(ctx)
}

// MarkCompleted закрывает заказ. Разрешён единственный переход
// Pending -> Completed, обратного пути нет.
func (s *ShopService) MarkCompleted(ctx context.Context, orderID string) (*model.Order, error) {
	orders, err := s.orderRepo.Orders(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete order: %w", err)
	}
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		if orders[i].Status != model.OrderPending {
			return nil, ErrInvalidStatus
		}
		orders[i].Status = model.OrderCompleted
		if err := s.orderRepo.SaveOrders(ctx, orders); err != nil {
			return nil, fmt.Errorf("complete order: %w", err)
		}
		s.logger.Info("order completed", zap.String("order_id", orderID))
		return &orders[i], nil
	}
	return nil, ErrNotFound
}
