package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/httpresp"
	"github.com/soloflowhq/soloflow-api/internal/middleware"
	"github.com/soloflowhq/soloflow-api/internal/models"
	"github.com/soloflowhq/soloflow-api/internal/usecase/calendar"
)

type CalendarHandler struct {
	db *gorm.DB
}

func NewCalendarHandler(db *gorm.DB) *CalendarHandler {
	return &CalendarHandler{db: db}
}

// Month assembles the unified month view: bookings, events, task due dates
// and invoice due dates on a single timeline.
func (h *CalendarHandler) Month(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Expected year=YYYY and month=1..12.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Account not found.")
		return
	}

	loc := locationFromUser(&user)
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)
	monthPrefix := fmt.Sprintf("%04d-%02d-", year, month)

	var bookings []models.Booking
	if err := h.db.
		Preload("Client").
		Where("professional_id = ? AND date LIKE ?", userID, monthPrefix+"%").
		Find(&bookings).Error; err != nil {

		httperr.Internal(c, "failed_to_load_calendar", "Could not load calendar.")
		return
	}

	var events []models.Event
	if err := h.db.
		Where("user_id = ? AND date LIKE ?", userID, monthPrefix+"%").
		Find(&events).Error; err != nil {

		httperr.Internal(c, "failed_to_load_calendar", "Could not load calendar.")
		return
	}

	var tasks []models.Task
	if err := h.db.
		Where("user_id = ? AND due_date >= ? AND due_date < ?", userID, monthStart, monthEnd).
		Find(&tasks).Error; err != nil {

		httperr.Internal(c, "failed_to_load_calendar", "Could not load calendar.")
		return
	}

	var invoices []models.Invoice
	if err := h.db.
		Where("user_id = ? AND due_date >= ? AND due_date < ?", userID, monthStart, monthEnd).
		Find(&invoices).Error; err != nil {

		httperr.Internal(c, "failed_to_load_calendar", "Could not load calendar.")
		return
	}

	httpresp.List(c, calendar.MonthView(bookings, events, tasks, invoices))
}
