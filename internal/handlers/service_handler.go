package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/middleware"
	"github.com/soloflowhq/soloflow-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required,min=5"`
	Price       float64 `json:"price"`
	Active      *bool   `json:"active"`
	Category    string  `json:"category"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var services []models.Service
	if err := h.db.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	svc := models.Service{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      active,
		Category:    req.Category,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var svc models.Service
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&svc).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.DurationMin = req.DurationMin
	svc.Price = req.Price
	svc.Category = req.Category
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not update service.")
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	res := h.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Service{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Could not delete service.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	c.Status(http.StatusNoContent)
}
