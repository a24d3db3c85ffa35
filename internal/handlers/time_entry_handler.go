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

type TimeEntryHandler struct {
	db *gorm.DB
}

func NewTimeEntryHandler(db *gorm.DB) *TimeEntryHandler {
	return &TimeEntryHandler{db: db}
}

type TimeEntryRequest struct {
	ProjectID   uint      `json:"project_id" binding:"required"`
	TaskID      *uint     `json:"task_id"`
	Description string    `json:"description"`
	StartedAt   time.Time `json:"started_at" binding:"required"`
	DurationMin int       `json:"duration_min" binding:"required,min=1"`
	Billable    *bool     `json:"billable"`
}

func (h *TimeEntryHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	q := h.db.Where("user_id = ?", userID)

	if projectID := c.Query("project_id"); projectID != "" {
		q = q.Where("project_id = ?", projectID)
	}

	var entries []models.TimeEntry
	if err := q.Order("started_at DESC").Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_time_entries", "Could not list time entries.")
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (h *TimeEntryHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req TimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid time entry payload.")
		return
	}

	var project models.Project
	if err := h.db.Where("id = ? AND user_id = ?", req.ProjectID, userID).First(&project).Error; err != nil {
		httperr.BadRequest(c, "project_not_found", "Project not found.")
		return
	}

	billable := true
	if req.Billable != nil {
		billable = *req.Billable
	}

	entry := models.TimeEntry{
		UserID:      userID,
		ProjectID:   req.ProjectID,
		TaskID:      req.TaskID,
		Description: req.Description,
		StartedAt:   req.StartedAt,
		DurationMin: req.DurationMin,
		Billable:    billable,
	}

	if err := h.db.Create(&entry).Error; err != nil {
		httperr.Internal(c, "failed_to_create_time_entry", "Could not create time entry.")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *TimeEntryHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var entry models.TimeEntry
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		httperr.NotFound(c, "time_entry_not_found", "Time entry not found.")
		return
	}

	var req TimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid time entry payload.")
		return
	}

	entry.ProjectID = req.ProjectID
	entry.TaskID = req.TaskID
	entry.Description = req.Description
	entry.StartedAt = req.StartedAt
	entry.DurationMin = req.DurationMin
	if req.Billable != nil {
		entry.Billable = *req.Billable
	}

	if err := h.db.Save(&entry).Error; err != nil {
		httperr.Internal(c, "failed_to_update_time_entry", "Could not update time entry.")
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *TimeEntryHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	res := h.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.TimeEntry{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_time_entry", "Could not delete time entry.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "time_entry_not_found", "Time entry not found.")
		return
	}

	c.Status(http.StatusNoContent)
}
