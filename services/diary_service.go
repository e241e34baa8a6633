package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jakerich1/DietApi/models"
)

// DayRange returns midnight of t's calendar day and midnight of the next
// day, both in t's location.
func DayRange(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

type DiaryService struct {
	store *Store
}

func NewDiaryService(store *Store) *DiaryService {
	return &DiaryService{store: store}
}

// ListDay fetches food and water entries created in [start, end] concurrently.
// Either fetch failing fails the whole listing.
func (s *DiaryService) ListDay(ctx context.Context, start, end time.Time) (*models.DayDiary, error) {
	var (
		food  []models.FoodEntry
		water []models.WaterEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		food, err = s.store.Food.FindCreatedBetween(gctx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		water, err = s.store.Water.FindCreatedBetween(gctx, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if food == nil {
		food = []models.FoodEntry{}
	}
	if water == nil {
		water = []models.WaterEntry{}
	}
	return &models.DayDiary{FoodDiary: food, WaterDiary: water}, nil
}
