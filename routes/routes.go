package routes

import (
	"log/slog"
	"net/http"

	"github.com/jakerich1/DietApi/controllers"
	"github.com/jakerich1/DietApi/middlewares"
	"github.com/jakerich1/DietApi/services"

	"github.com/gin-gonic/gin"
)

// Deps are the process-wide collaborators handed to the router.
type Deps struct {
	Store  *services.Store
	Hub    *services.RealtimeHub
	Export *services.ExportService // optional
	Log    *slog.Logger
}

func SetupRouter(d Deps) *gin.Engine {
	if d.Log == nil {
		d.Log = slog.Default()
	}
	var hub controllers.Broadcaster
	if d.Hub != nil {
		hub = d.Hub
	}

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(d.Log))

	diary := controllers.NewDiaryController(services.NewDiaryService(d.Store), d.Export, d.Log)
	food := controllers.NewFoodController(d.Store, hub, d.Log)
	water := controllers.NewWaterController(d.Store, hub, d.Log)

	r.GET("/", diary.ListDay)

	r.GET("/food/:id", food.GetFood)
	r.DELETE("/food/:id", food.DeleteFood)
	r.POST("/food", food.CreateFood)

	r.GET("/water/:id", water.GetWater)
	r.DELETE("/water/:id", water.DeleteWater)
	r.POST("/water", water.CreateWater)

	if d.Hub != nil {
		r.GET("/ws", controllers.NewRealtimeController(d.Hub).DiaryWS)
	}
	if d.Export != nil {
		r.POST("/export", diary.ExportDay)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
