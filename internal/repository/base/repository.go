package base

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viola-academy/academy_app/internal/kvstore"
)

// Repository базовый репозиторий: JSON-документы поверх key-value хранилища
type Repository struct {
	store kvstore.Store
}

// NewRepository создаёт новый базовый репозиторий
func NewRepository(store kvstore.Store) *Repository {
	return &Repository{store: store}
}

// Store возвращает нижележащее хранилище
func (r *Repository) Store() kvstore.Store {
	return r.store
}

// LoadJSON читает документ под ключом. Возвращает false, если ключа нет
// или данные не разбираются: повреждённый документ считается отсутствующим,
// вызывающий подставляет значение по умолчанию.
func (r *Repository) LoadJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, nil
	}
	return true, nil
}

// SaveJSON сериализует документ и записывает его под ключом целиком
func (r *Repository) SaveJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Encode сериализует документ для записи через SetMulti
func Encode(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}
	return string(raw), nil
}
