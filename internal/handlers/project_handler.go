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

type ProjectHandler struct {
	db *gorm.DB
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{db: db}
}

type ProjectRequest struct {
	ClientID    uint       `json:"client_id" binding:"required"`
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	HourlyRate  float64    `json:"hourly_rate"`
	Deadline    *time.Time `json:"deadline"`
}

func (h *ProjectHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	q := h.db.Preload("Client").Where("user_id = ?", userID)

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}

	var projects []models.Project
	if err := q.Order("created_at DESC").Find(&projects).Error; err != nil {
		httperr.Internal(c, "failed_to_list_projects", "Could not list projects.")
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid project payload.")
		return
	}

	var client models.Client
	if err := h.db.Where("id = ? AND user_id = ?", req.ClientID, userID).First(&client).Error; err != nil {
		httperr.BadRequest(c, "client_not_found", "Client not found.")
		return
	}

	status := req.Status
	if status == "" {
		status = "active"
	}

	project := models.Project{
		UserID:      userID,
		ClientID:    req.ClientID,
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		HourlyRate:  req.HourlyRate,
		Deadline:    req.Deadline,
	}

	if err := h.db.Create(&project).Error; err != nil {
		httperr.Internal(c, "failed_to_create_project", "Could not create project.")
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var project models.Project
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&project).Error; err != nil {
		httperr.NotFound(c, "project_not_found", "Project not found.")
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid project payload.")
		return
	}

	project.ClientID = req.ClientID
	project.Name = req.Name
	project.Description = req.Description
	if req.Status != "" {
		project.Status = req.Status
	}
	project.HourlyRate = req.HourlyRate
	project.Deadline = req.Deadline

	if err := h.db.Save(&project).Error; err != nil {
		httperr.Internal(c, "failed_to_update_project", "Could not update project.")
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	res := h.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Project{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_project", "Could not delete project.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "project_not_found", "Project not found.")
		return
	}

	c.Status(http.StatusNoContent)
}
