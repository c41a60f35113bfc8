package app

import (
	"context"
	"fmt"

	"github.com/viola-academy/academy_app/internal/kvstore"
	"github.com/viola-academy/academy_app/internal/model"
	"github.com/viola-academy/academy_app/internal/repository"
	"github.com/viola-academy/academy_app/internal/repository/base"
	"go.uber.org/zap"
)

// Seeder наполняет пустое хранилище демо-данными при старте.
// Существующие документы никогда не перезаписываются.
type Seeder struct {
	store  kvstore.Store
	logger *zap.Logger
}

func NewSeeder(store kvstore.Store, logger *zap.Logger) *Seeder {
	return &Seeder{store: store, logger: logger}
}

// Run записывает отсутствующие стартовые документы
func (s *Seeder) Run(ctx context.Context) error {
	seeds := []struct {
		key   string
		value any
	}{
		{repository.KeyStudents, repository.DefaultStudents()},
		{repository.KeyTeachers, repository.DefaultTeachers()},
		{repository.KeySubjects, repository.DefaultSubjects()},
		{repository.KeyHomework, repository.DefaultHomework()},
		{repository.KeyGallery, repository.DefaultGallery()},
		{repository.KeyBusData, repository.DefaultBusRoute()},
		{repository.KeyHomeData, repository.DefaultHomeContent()},
		{repository.KeySchedule, model.ClassSchedule{}},
	}

	seeded := 0
	for _, seed := range seeds {
		_, exists, err := s.store.Get(ctx, seed.key)
		if err != nil {
			return fmt.Errorf("seed %s: %w", seed.key, err)
		}
		if exists {
			continue
		}
		raw, err := base.Encode(seed.value)
		if err != nil {
			return fmt.Errorf("seed %s: %w", seed.key, err)
		}
		if err := s.store.Set(ctx, seed.key, raw); err != nil {
			return fmt.Errorf("seed %s: %w", seed.key, err)
		}
		seeded++
	}

	if seeded > 0 {
		s.logger.Info("demo data seeded", zap.Int("documents", seeded))
	}
	return nil
}
