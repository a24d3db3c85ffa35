package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/middleware"
	"github.com/soloflowhq/soloflow-api/internal/models"
	"github.com/soloflowhq/soloflow-api/internal/timezone"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Account not found.")
		return
	}

	c.JSON(http.StatusOK, user)
}

type UpdateProfileRequest struct {
	Name              *string `json:"name"`
	Phone             *string `json:"phone"`
	BusinessName      *string `json:"business_name"`
	Bio               *string `json:"bio"`
	Timezone          *string `json:"timezone"`
	SlotIntervalMin   *int    `json:"slot_interval_min"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes"`
}

func (h *MeHandler) UpdateProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile payload.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Account not found.")
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.BusinessName != nil {
		user.BusinessName = *req.BusinessName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone.")
			return
		}
		user.Timezone = *req.Timezone
	}
	if req.SlotIntervalMin != nil {
		if *req.SlotIntervalMin < 15 || *req.SlotIntervalMin > 240 {
			httperr.BadRequest(c, "invalid_slot_interval", "Slot interval out of range.")
			return
		}
		user.SlotIntervalMin = *req.SlotIntervalMin
	}
	if req.MinAdvanceMinutes != nil {
		user.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not save profile.")
		return
	}

	c.JSON(http.StatusOK, user)
}
