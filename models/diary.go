package models

// DayDiary groups every entry created inside one day window.
type DayDiary struct {
	FoodDiary  []FoodEntry  `json:"food_diary"`
	WaterDiary []WaterEntry `json:"water_diary"`
}
