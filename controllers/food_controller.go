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

var foodSchema = utils.Schema{
	{Field: "name", Rules: []utils.Rule{
		utils.Trim,
		utils.MinLength(1, "Food name must be specified"),
		utils.MaxLength(124, "Food name exceeds maximum length of 124 characters"),
		utils.Escape,
	}},
	{Field: "calories", Rules: []utils.Rule{
		utils.Trim,
		utils.MinLength(1, "Calories must be specified"),
		utils.MaxLength(10, "Calories exceeds maximum length"),
	}},
	{Field: "protein", Rules: []utils.Rule{
		utils.Trim,
		utils.MinLength(1, "Protein must be specified"),
		utils.MaxLength(10, "Protein exceeds maximum length"),
	}},
}

type foodRequest struct {
	Name     fieldValue `json:"name" form:"name"`
	Calories fieldValue `json:"calories" form:"calories"`
	Protein  fieldValue `json:"protein" form:"protein"`
}

type FoodController struct {
	Food services.EntryRepository[models.FoodEntry]
	Hub  Broadcaster
	Log  *slog.Logger
	Now  func() time.Time
}

func NewFoodController(store *services.Store, hub Broadcaster, log *slog.Logger) *FoodController {
	return &FoodController{Food: store.Food, Hub: hub, Log: log, Now: time.Now}
}

// GET /food/:id
func (fc *FoodController) GetFood(c *gin.Context) {
	getEntry(c, fc.Food, fc.Log)
}

// DELETE /food/:id
func (fc *FoodController) DeleteFood(c *gin.Context) {
	deleteEntry(c, fc.Food, fc.Log, fc.Hub, "food")
}

// POST /food  { "name": "Apple", "calories": "95", "protein": "0.5" }
func (fc *FoodController) CreateFood(c *gin.Context) {
	var req foodRequest
	if err := bindBody(c, &req); err != nil {
		respondMalformed(c)
		return
	}

	clean, verrs := foodSchema.Validate(map[string]string{
		"name":     string(req.Name),
		"calories": string(req.Calories),
		"protein":  string(req.Protein),
	})
	if len(verrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
		return
	}

	entry := &models.FoodEntry{
		Name:     clean["name"],
		Protein:  clean["protein"],
		Calories: clean["calories"],
		Created:  fc.Now(),
	}
	if err := fc.Food.Create(storageContext(c), entry); err != nil {
		requestLog(c, fc.Log).Error("create food entry failed", "error", err)
		c.String(http.StatusInternalServerError, msgSaveFailed)
		return
	}

	publish(fc.Hub, services.DiaryEvent{Kind: "food.created", ID: entry.ID, Entry: entry})
	c.Header("Location", "/food/"+entry.ID)
	c.String(http.StatusCreated, "Food entry submitted")
}
