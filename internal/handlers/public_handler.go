package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/soloflowhq/soloflow-api/internal/domain/booking"
	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/models"
	usecase "github.com/soloflowhq/soloflow-api/internal/usecase/booking"
)

// PublicHandler serves the unauthenticated booking surface: a provider's
// profile page, their active services, the open slots of a day and the
// booking request itself.
type PublicHandler struct {
	db            *gorm.DB
	repo          domain.Repository
	availability  *usecase.GetAvailability
	createBooking *usecase.CreatePublicBooking
}

func NewPublicHandler(
	db *gorm.DB,
	repo domain.Repository,
	availability *usecase.GetAvailability,
	createBooking *usecase.CreatePublicBooking,
) *PublicHandler {
	return &PublicHandler{
		db:            db,
		repo:          repo,
		availability:  availability,
		createBooking: createBooking,
	}
}

type PublicProfileResponse struct {
	Slug         string `json:"slug"`
	BusinessName string `json:"business_name"`
	Bio          string `json:"bio"`
	AvatarURL    string `json:"avatar_url"`
	Timezone     string `json:"timezone"`
}

func (h *PublicHandler) Profile(c *gin.Context) {
	provider, ok := h.providerFromSlug(c)
	if !ok {
		return
	}

	business := provider.BusinessName
	if business == "" {
		business = provider.Name
	}

	c.JSON(http.StatusOK, PublicProfileResponse{
		Slug:         provider.Slug,
		BusinessName: business,
		Bio:          provider.Bio,
		AvatarURL:    provider.AvatarURL,
		Timezone:     provider.Timezone,
	})
}

type PublicServiceResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

func (h *PublicHandler) Services(c *gin.Context) {
	provider, ok := h.providerFromSlug(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("user_id = ? AND active = ?", provider.ID, true).
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	out := make([]PublicServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, PublicServiceResponse{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			DurationMin: s.DurationMin,
			Price:       s.Price,
			Category:    s.Category,
		})
	}

	c.JSON(http.StatusOK, out)
}

func (h *PublicHandler) Availability(c *gin.Context) {
	provider, ok := h.providerFromSlug(c)
	if !ok {
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Expected date=YYYY-MM-DD.")
		return
	}

	in := usecase.AvailabilityInput{
		ProfessionalID: provider.ID,
		Date:           date,
	}
	if raw := c.Query("service_id"); raw != "" {
		serviceID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_service_id", "Service id must be numeric.")
			return
		}
		in.ServiceID = uint(serviceID)
	}
	if raw := c.Query("duration"); raw != "" {
		duration, err := strconv.Atoi(raw)
		if err != nil || duration <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be a positive number of minutes.")
			return
		}
		in.DurationMin = duration
	}

	slots, err := h.availability.Execute(c.Request.Context(), in)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date.Format("2006-01-02"),
		"slots": slots,
	})
}

type PublicBookingRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	provider, ok := h.providerFromSlug(c)
	if !ok {
		return
	}

	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	b, err := h.createBooking.Execute(c.Request.Context(), usecase.CreatePublicBookingInput{
		ProfessionalID: provider.ID,
		ClientName:     req.Name,
		ClientPhone:    req.Phone,
		ClientEmail:    req.Email,
		ServiceID:      req.ServiceID,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"external_id": b.ExternalID,
		"date":        b.Date,
		"time":        b.Time,
		"status":      b.Status,
	})
}

func (h *PublicHandler) providerFromSlug(c *gin.Context) (*models.User, bool) {
	provider, err := h.repo.GetProviderBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.NotFound(c, "provider_not_found", "Page not found.")
		return nil, false
	}
	return provider, true
}
