package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/middleware"
	"github.com/soloflowhq/soloflow-api/internal/models"
)

type EventHandler struct {
	db *gorm.DB
}

func NewEventHandler(db *gorm.DB) *EventHandler {
	return &EventHandler{db: db}
}

type EventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

func (req *EventRequest) validate() string {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return "invalid_date"
	}
	if req.StartTime != "" {
		if _, err := time.Parse("15:04", req.StartTime); err != nil {
			return "invalid_start_time"
		}
	}
	if req.EndTime != "" {
		if _, err := time.Parse("15:04", req.EndTime); err != nil {
			return "invalid_end_time"
		}
	}
	return ""
}

func (h *EventHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	q := h.db.Where("user_id = ?", userID)

	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	}

	var events []models.Event
	if err := q.Order("date ASC, start_time ASC").Find(&events).Error; err != nil {
		httperr.Internal(c, "failed_to_list_events", "Could not list events.")
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid event payload.")
		return
	}
	if code := req.validate(); code != "" {
		httperr.BadRequest(c, code, "Invalid event payload.")
		return
	}

	event := models.Event{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}

	if err := h.db.Create(&event).Error; err != nil {
		httperr.Internal(c, "failed_to_create_event", "Could not create event.")
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var event models.Event
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&event).Error; err != nil {
		httperr.NotFound(c, "event_not_found", "Event not found.")
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid event payload.")
		return
	}
	if code := req.validate(); code != "" {
		httperr.BadRequest(c, code, "Invalid event payload.")
		return
	}

	event.Title = req.Title
	event.Description = req.Description
	event.Location = req.Location
	event.Date = req.Date
	event.StartTime = req.StartTime
	event.EndTime = req.EndTime

	if err := h.db.Save(&event).Error; err != nil {
		httperr.Internal(c, "failed_to_update_event", "Could not update event.")
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	res := h.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Event{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_event", "Could not delete event.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "event_not_found", "Event not found.")
		return
	}

	c.Status(http.StatusNoContent)
}
