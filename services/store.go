package services

import (
	"context"
	"errors"
	"time"

	"github.com/jakerich1/DietApi/models"
)

var (
	ErrNotFound  = errors.New("entry not found")
	ErrInvalidID = errors.New("invalid entry id")
)

// EntryRepository is the storage contract shared by food and water entries.
type EntryRepository[T any] interface {
	Create(ctx context.Context, entry *T) error
	FindByID(ctx context.Context, id string) (*T, error)
	// DeleteByID succeeds when no entry matches id.
	DeleteByID(ctx context.Context, id string) error
	// FindCreatedBetween is inclusive on both bounds.
	FindCreatedBetween(ctx context.Context, start, end time.Time) ([]T, error)
}

// Store is the process-wide persistence handle. It is opened once at
// startup and closed on shutdown.
type Store struct {
	Food  EntryRepository[models.FoodEntry]
	Water EntryRepository[models.WaterEntry]

	closeFn func(ctx context.Context) error
}

func NewStore(food EntryRepository[models.FoodEntry], water EntryRepository[models.WaterEntry], closeFn func(ctx context.Context) error) *Store {
	return &Store{Food: food, Water: water, closeFn: closeFn}
}

func (s *Store) Close(ctx context.Context) error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn(ctx)
}
