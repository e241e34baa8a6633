package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jakerich1/DietApi/models"
)

type DiaryUploader interface {
	UploadJSON(ctx context.Context, prefix string, body []byte) (key, url string, err error)
}

type ExportService struct {
	diary    *DiaryService
	uploader DiaryUploader
}

func NewExportService(diary *DiaryService, uploader DiaryUploader) *ExportService {
	return &ExportService{diary: diary, uploader: uploader}
}

type ExportResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type daySnapshot struct {
	Date string `json:"date"`
	*models.DayDiary
}

// ExportDay uploads a JSON snapshot of the diary for day's calendar date.
func (s *ExportService) ExportDay(ctx context.Context, day time.Time) (*ExportResult, error) {
	start, end := DayRange(day)
	diary, err := s.diary.ListDay(ctx, start, end)
	if err != nil {
		return nil, err
	}

	date := start.Format("2006-01-02")
	body, err := json.Marshal(daySnapshot{Date: date, DayDiary: diary})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	key, url, err := s.uploader.UploadJSON(ctx, "diary-exports/"+date, body)
	if err != nil {
		return nil, err
	}
	return &ExportResult{Key: key, URL: url}, nil
}
