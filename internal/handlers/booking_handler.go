package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/httpresp"
	"github.com/soloflowhq/soloflow-api/internal/middleware"
	usecase "github.com/soloflowhq/soloflow-api/internal/usecase/booking"
)

type BookingHandler struct {
	listByDate  *usecase.ListBookingsByDate
	listByMonth *usecase.ListBookingsByMonth
	confirm     *usecase.ConfirmBooking
	decline     *usecase.DeclineBooking
	cancel      *usecase.CancelBooking
	reschedule  *usecase.RescheduleBooking
}

func NewBookingHandler(
	listByDate *usecase.ListBookingsByDate,
	listByMonth *usecase.ListBookingsByMonth,
	confirm *usecase.ConfirmBooking,
	decline *usecase.DeclineBooking,
	cancel *usecase.CancelBooking,
	reschedule *usecase.RescheduleBooking,
) *BookingHandler {
	return &BookingHandler{
		listByDate:  listByDate,
		listByMonth: listByMonth,
		confirm:     confirm,
		decline:     decline,
		cancel:      cancel,
		reschedule:  reschedule,
	}
}

func (h *BookingHandler) ListByDate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Expected date=YYYY-MM-DD.")
		return
	}

	bookings, err := h.listByDate.Execute(c.Request.Context(), userID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	year, errY := strconv.Atoi(c.Query("year"))
	month, errM := strconv.Atoi(c.Query("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Expected year=YYYY and month=1..12.")
		return
	}

	bookings, err := h.listByMonth.Execute(c.Request.Context(), userID, year, month)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.confirm.Execute(c.Request.Context(), userID, id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Decline(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.decline.Execute(c.Request.Context(), userID, id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := bookingID(c)
	if !ok {
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), userID, id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Expected date and time.")
		return
	}

	b, err := h.reschedule.Execute(c.Request.Context(), usecase.RescheduleBookingInput{
		ProfessionalID: userID,
		BookingID:      id,
		Date:           req.Date,
		Time:           req.Time,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, b)
}

func bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Booking id must be numeric.")
		return 0, false
	}
	return uint(id), true
}
