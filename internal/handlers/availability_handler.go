package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soloflowhq/soloflow-api/internal/cache"
	domain "github.com/soloflowhq/soloflow-api/internal/domain/booking"
	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/middleware"
	"github.com/soloflowhq/soloflow-api/internal/models"
)

type AvailabilityHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewAvailabilityHandler(db *gorm.DB, c *cache.Cache) *AvailabilityHandler {
	return &AvailabilityHandler{db: db, cache: c}
}

type DayConfigRequest struct {
	Weekday *int `json:"weekday" binding:"required,min=0,max=6"`

	MorningEnabled bool   `json:"morning_enabled"`
	MorningStart   string `json:"morning_start"`
	MorningEnd     string `json:"morning_end"`

	AfternoonEnabled bool   `json:"afternoon_enabled"`
	AfternoonStart   string `json:"afternoon_start"`
	AfternoonEnd     string `json:"afternoon_end"`

	EveningEnabled bool   `json:"evening_enabled"`
	EveningStart   string `json:"evening_start"`
	EveningEnd     string `json:"evening_end"`
}

type UpdateAvailabilityRequest struct {
	Days []DayConfigRequest `json:"days" binding:"required,dive"`
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var windows []models.AvailabilityWindow
	if err := h.db.
		Where("user_id = ?", userID).
		Order("weekday ASC").
		Find(&windows).Error; err != nil {

		httperr.Internal(c, "failed_to_list_availability", "Could not load availability.")
		return
	}

	c.JSON(http.StatusOK, windows)
}

// Update replaces the whole weekly schedule: existing rows are dropped and
// the submitted days recreated in one transaction. A weekday absent from the
// payload ends up with no row, which reads as closed.
func (h *AvailabilityHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid availability payload.")
		return
	}

	seen := make(map[int]bool, len(req.Days))
	windows := make([]models.AvailabilityWindow, 0, len(req.Days))

	for _, day := range req.Days {
		if seen[*day.Weekday] {
			httperr.BadRequest(c, "duplicate_weekday", "Each weekday may appear only once.")
			return
		}
		seen[*day.Weekday] = true

		w := models.AvailabilityWindow{
			UserID:  userID,
			Weekday: *day.Weekday,

			MorningEnabled: day.MorningEnabled,
			MorningStart:   defaultClock(day.MorningStart, "09:00"),
			MorningEnd:     defaultClock(day.MorningEnd, "12:00"),

			AfternoonEnabled: day.AfternoonEnabled,
			AfternoonStart:   defaultClock(day.AfternoonStart, "13:00"),
			AfternoonEnd:     defaultClock(day.AfternoonEnd, "17:30"),

			EveningEnabled: day.EveningEnabled,
			EveningStart:   defaultClock(day.EveningStart, "17:30"),
			EveningEnd:     defaultClock(day.EveningEnd, "20:30"),
		}

		if code := validateWindow(&w); code != "" {
			httperr.BadRequest(c, code, "Invalid period bounds.")
			return
		}

		windows = append(windows, w)
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ?", userID).
			Delete(&models.AvailabilityWindow{}).Error; err != nil {
			return err
		}
		if len(windows) == 0 {
			return nil
		}
		return tx.Create(&windows).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_availability", "Could not save availability.")
		return
	}

	h.cache.InvalidatePrefix(c.Request.Context(), cache.AvailabilityPrefix(userID))

	c.JSON(http.StatusOK, windows)
}

func defaultClock(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// validateWindow checks every enabled period parses as HH:MM and runs
// start < end.
func validateWindow(w *models.AvailabilityWindow) string {
	periods := []struct {
		enabled    bool
		start, end string
	}{
		{w.MorningEnabled, w.MorningStart, w.MorningEnd},
		{w.AfternoonEnabled, w.AfternoonStart, w.AfternoonEnd},
		{w.EveningEnabled, w.EveningStart, w.EveningEnd},
	}

	for _, p := range periods {
		if !p.enabled {
			continue
		}
		start, err := domain.MinutesOfDay(p.start)
		if err != nil {
			return "invalid_time"
		}
		end, err := domain.MinutesOfDay(p.end)
		if err != nil {
			return "invalid_time"
		}
		if start >= end {
			return "invalid_period"
		}
	}
	return ""
}
