package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jakerich1/DietApi/services"
	"github.com/jakerich1/DietApi/utils"
)

type DiaryController struct {
	Diary  *services.DiaryService
	Export *services.ExportService // nil when exports are not configured
	Log    *slog.Logger
	Loc    *time.Location
}

func NewDiaryController(diary *services.DiaryService, export *services.ExportService, log *slog.Logger) *DiaryController {
	return &DiaryController{Diary: diary, Export: export, Log: log, Loc: time.Local}
}

func (dc *DiaryController) parseDay(c *gin.Context) (time.Time, bool) {
	raw, err := bindDate(c)
	if err != nil {
		c.String(http.StatusBadRequest, msgInvalidDate)
		return time.Time{}, false
	}
	day, err := utils.ParseISODate(raw, dc.Loc)
	if err != nil {
		c.String(http.StatusBadRequest, msgInvalidDate)
		return time.Time{}, false
	}
	return day, true
}

// GET /  { "date": "2024-03-05" }
func (dc *DiaryController) ListDay(c *gin.Context) {
	day, ok := dc.parseDay(c)
	if !ok {
		return
	}

	start, end := services.DayRange(day)
	diary, err := dc.Diary.ListDay(storageContext(c), start, end)
	if err != nil {
		requestLog(c, dc.Log).Error("list diary failed", "start", start, "end", end, "error", err)
		c.String(http.StatusInternalServerError, msgDiaryFailed)
		return
	}
	c.JSON(http.StatusOK, diary)
}

// POST /export  { "date": "2024-03-05" }
func (dc *DiaryController) ExportDay(c *gin.Context) {
	day, ok := dc.parseDay(c)
	if !ok {
		return
	}

	res, err := dc.Export.ExportDay(storageContext(c), day)
	if err != nil {
		requestLog(c, dc.Log).Error("export diary failed", "day", day, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	c.JSON(http.StatusCreated, res)
}
