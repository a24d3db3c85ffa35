package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/middleware"
	"github.com/soloflowhq/soloflow-api/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Notes   string `json:"notes"`
}

func (h *ClientHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("user_id = ?", userID)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("created_at DESC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Could not list clients.")
		return
	}

	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid client payload.")
		return
	}

	client := models.Client{
		UserID:  userID,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Company: req.Company,
		Notes:   req.Notes,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Could not create client.")
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var client models.Client
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&client).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid client payload.")
		return
	}

	client.Name = req.Name
	client.Phone = req.Phone
	client.Email = req.Email
	client.Company = req.Company
	client.Notes = req.Notes

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Could not update client.")
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	res := h.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Client{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_client", "Could not delete client.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	c.Status(http.StatusNoContent)
}
