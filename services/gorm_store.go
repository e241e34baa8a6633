package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakerich1/DietApi/models"
)

type gormRepository[T any] struct {
	db *gorm.DB
}

func newGormRepository[T any](db *gorm.DB) *gormRepository[T] {
	return &gormRepository[T]{db: db}
}

// NewGormStore wires the relational tables and migrates them.
func NewGormStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&models.FoodEntry{}, &models.WaterEntry{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return NewStore(
		newGormRepository[models.FoodEntry](db),
		newGormRepository[models.WaterEntry](db),
		func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	), nil
}

func (r *gormRepository[T]) Create(ctx context.Context, entry *T) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

func (r *gormRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	var entry T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	return &entry, nil
}

func (r *gormRepository[T]) DeleteByID(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error; err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

func (r *gormRepository[T]) FindCreatedBetween(ctx context.Context, start, end time.Time) ([]T, error) {
	out := make([]T, 0)
	err := r.db.WithContext(ctx).
		Where("created >= ? AND created <= ?", start, end).
		Order("created asc").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("select range: %w", err)
	}
	return out, nil
}
