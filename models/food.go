package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakerich1/DietApi/utils"
)

// FoodEntry is one logged food item. Protein and Calories keep the
// validated text the client sent.
type FoodEntry struct {
	ID       string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name     string    `json:"name" gorm:"type:text;not null"`
	Protein  string    `json:"protein" gorm:"size:64;not null"`
	Calories string    `json:"calories" gorm:"size:64;not null"`
	Created  time.Time `json:"created" gorm:"index;not null"`
}

func (f *FoodEntry) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// CreatedFormat renders Created as a medium date, e.g. "Oct 14, 2026".
func (f FoodEntry) CreatedFormat() string {
	return utils.FormatDateMed(f.Created)
}

func (f FoodEntry) MarshalJSON() ([]byte, error) {
	type entry FoodEntry
	return json.Marshal(struct {
		UnderscoreID string `json:"_id"`
		entry
		CreatedFormat string `json:"createdFormat"`
	}{f.ID, entry(f), f.CreatedFormat()})
}
