package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakerich1/DietApi/utils"
)

func TestFoodEntry_JSON(t *testing.T) {
	created := time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)
	e := FoodEntry{ID: "65e6f0", Name: "Apple", Protein: "0.5", Calories: "95", Created: created}

	b, err := json.Marshal(e)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, map[string]any{
		"_id":           "65e6f0",
		"id":            "65e6f0",
		"name":          "Apple",
		"protein":       "0.5",
		"calories":      "95",
		"created":       "2024-03-05T09:30:00Z",
		"createdFormat": utils.FormatDateMed(created),
	}, got)
}

func TestWaterEntry_JSON(t *testing.T) {
	created := time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)
	b, err := json.Marshal([]WaterEntry{{ID: "w1", Amount: "250", Created: created}})
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "w1", got[0]["_id"])
	assert.Equal(t, "250", got[0]["amount"])
	assert.Equal(t, utils.FormatDateMed(created), got[0]["createdFormat"])
	assert.NotContains(t, got[0], "__v")
}

func TestBeforeCreate_AssignsOnlyMissingIDs(t *testing.T) {
	f := &FoodEntry{}
	require.NoError(t, f.BeforeCreate(nil))
	assert.Len(t, f.ID, 36)

	w := &WaterEntry{ID: "keep"}
	require.NoError(t, w.BeforeCreate(nil))
	assert.Equal(t, "keep", w.ID)
}
