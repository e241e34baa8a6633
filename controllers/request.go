package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/jakerich1/DietApi/services"
	"github.com/jakerich1/DietApi/utils"
)

const (
	msgInvalidDate   = "Supplied date is not valid"
	msgLocateFailed  = "Error locating entry"
	msgRemoveFailed  = "unable to remove entry"
	msgRemoved       = "Entry removed"
	msgSaveFailed    = "Unable to save entry"
	msgDiaryFailed   = "Error retrieving diary entries"
	msgMalformedBody = "Malformed request body"
)

// fieldValue accepts a body field sent as a JSON string, number or boolean,
// or as a form value.
type fieldValue string

func (f *fieldValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = fieldValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = fieldValue(n.String())
		return nil
	}
	var v bool
	if err := json.Unmarshal(b, &v); err == nil {
		*f = fieldValue(fmt.Sprint(v))
		return nil
	}
	return fmt.Errorf("unsupported field value %s", b)
}

// bindBody reads a JSON body (on any method) or form and query values. An
// empty body binds nothing and is not an error.
func bindBody(c *gin.Context, obj any) error {
	b := binding.Default(c.Request.Method, c.ContentType())
	if c.ContentType() == binding.MIMEJSON {
		b = binding.JSON
	}
	if err := c.ShouldBindWith(obj, b); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

type dateRequest struct {
	Date fieldValue `json:"date" form:"date"`
}

// bindDate returns the body field "date", falling back to ?date=.
func bindDate(c *gin.Context) (string, error) {
	var req dateRequest
	if c.ContentType() == binding.MIMEPOSTForm {
		date, err := formBodyValue(c, "date")
		if err != nil {
			return "", err
		}
		req.Date = fieldValue(date)
	} else if err := bindBody(c, &req); err != nil {
		return "", err
	}
	if req.Date == "" {
		req.Date = fieldValue(c.Query("date"))
	}
	return string(req.Date), nil
}

// formBodyValue reads key from an urlencoded body on any method. net/http
// only parses form bodies for POST, PUT and PATCH.
func formBodyValue(c *gin.Context, key string) (string, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return "", err
	}
	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return "", err
	}
	return values.Get(key), nil
}

func respondMalformed(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ValidationErrors{
		{Message: msgMalformedBody, Location: "body"},
	}})
}

// storageContext detaches storage calls from client cancellation; an
// abandoned request still completes its write.
func storageContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

func requestLog(c *gin.Context, log *slog.Logger) *slog.Logger {
	if log == nil {
		log = slog.Default()
	}
	if id := c.GetString("requestID"); id != "" {
		return log.With("request_id", id)
	}
	return log
}

// Broadcaster receives entry change events; see services.RealtimeHub.
type Broadcaster interface {
	Broadcast(ev services.DiaryEvent)
}

func publish(b Broadcaster, ev services.DiaryEvent) {
	if b != nil {
		b.Broadcast(ev)
	}
}
