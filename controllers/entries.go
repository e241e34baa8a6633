package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jakerich1/DietApi/services"
)

// getEntry answers GET /<kind>/:id. Missing and malformed ids are reported
// as a server error like any other lookup failure.
func getEntry[T any](c *gin.Context, repo services.EntryRepository[T], log *slog.Logger) {
	id := c.Param("id")
	entry, err := repo.FindByID(storageContext(c), id)
	if err != nil {
		l := requestLog(c, log).With("id", id)
		switch {
		case errors.Is(err, services.ErrNotFound):
			l.Info("entry not found")
		case errors.Is(err, services.ErrInvalidID):
			l.Info("malformed entry id")
		default:
			l.Error("lookup failed", "error", err)
		}
		c.String(http.StatusInternalServerError, msgLocateFailed)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// deleteEntry answers DELETE /<kind>/:id with 202 whether or not the entry
// existed; only a storage error changes the response.
func deleteEntry[T any](c *gin.Context, repo services.EntryRepository[T], log *slog.Logger, hub Broadcaster, kind string) {
	id := c.Param("id")
	if err := repo.DeleteByID(storageContext(c), id); err != nil {
		requestLog(c, log).Error("delete failed", "id", id, "error", err)
		c.String(http.StatusInternalServerError, msgRemoveFailed)
		return
	}
	publish(hub, services.DiaryEvent{Kind: kind + ".deleted", ID: id})
	c.String(http.StatusAccepted, msgRemoved)
}
