package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakerich1/DietApi/utils"
)

// WaterEntry is one logged drink. Amount keeps the validated text.
type WaterEntry struct {
	ID      string    `json:"id" gorm:"primaryKey;type:uuid"`
	Amount  string    `json:"amount" gorm:"type:text;not null"`
	Created time.Time `json:"created" gorm:"index;not null"`
}

func (w *WaterEntry) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

func (w WaterEntry) CreatedFormat() string {
	return utils.FormatDateMed(w.Created)
}

func (w WaterEntry) MarshalJSON() ([]byte, error) {
	type entry WaterEntry
	return json.Marshal(struct {
		UnderscoreID string `json:"_id"`
		entry
		CreatedFormat string `json:"createdFormat"`
	}{w.ID, entry(w), w.CreatedFormat()})
}
