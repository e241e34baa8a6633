package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jakerich1/DietApi/models"
	"github.com/jakerich1/DietApi/services"
	"github.com/jakerich1/DietApi/utils"
)

var waterSchema = utils.Schema{
	{Field: "amount", Rules: []utils.Rule{
		utils.Trim,
		utils.MinLength(1, "Water amount must be specified"),
		utils.MaxLength(124, "Water amount exceeds maximum length"),
		utils.Escape,
	}},
}

type WaterController struct {
	Water services.EntryRepository[models.WaterEntry]
	Hub   Broadcaster
	Log   *slog.Logger
	Now   func() time.Time
}

func NewWaterController(store *services.Store, hub Broadcaster, log *slog.Logger) *WaterController {
	return &WaterController{Water: store.Water, Hub: hub, Log: log, Now: time.Now}
}

func (wc *WaterController) GetWater(c *gin.Context) {
	getEntry(c, wc.Water, wc.Log)
}

func (wc *WaterController) DeleteWater(c *gin.Context) {
	deleteEntry(c, wc.Water, wc.Log, wc.Hub, "water")
}

// POST /water  { "amount": "250" }
func (wc *WaterController) CreateWater(c *gin.Context) {
	var req struct {
		Amount fieldValue `json:"amount" form:"amount"`
	}
	if err := bindBody(c, &req); err != nil {
		respondMalformed(c)
		return
	}

	clean, verrs := waterSchema.Validate(map[string]string{"amount": string(req.Amount)})
	if len(verrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
		return
	}

	entry := &models.WaterEntry{Amount: clean["amount"], Created: wc.Now()}
	if err := wc.Water.Create(storageContext(c), entry); err != nil {
		requestLog(c, wc.Log).Error("create water entry failed", "error", err)
		c.String(http.StatusInternalServerError, msgSaveFailed)
		return
	}

	publish(wc.Hub, services.DiaryEvent{Kind: "water.created", ID: entry.ID, Entry: entry})
	c.Header("Location", "/water/"+entry.ID)
	c.String(http.StatusCreated, "Water entry submitted")
}
