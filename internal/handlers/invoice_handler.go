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

type InvoiceHandler struct {
	db *gorm.DB
}

func NewInvoiceHandler(db *gorm.DB) *InvoiceHandler {
	return &InvoiceHandler{db: db}
}

type InvoiceRequest struct {
	ClientID  uint       `json:"client_id" binding:"required"`
	ProjectID *uint      `json:"project_id"`
	Number    string     `json:"number" binding:"required"`
	Amount    float64    `json:"amount" binding:"required"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes"`
	IssuedAt  *time.Time `json:"issued_at"`
	DueDate   *time.Time `json:"due_date"`
}

func (h *InvoiceHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	q := h.db.Preload("Client").Where("user_id = ?", userID)

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}

	var invoices []models.Invoice
	if err := q.Order("created_at DESC").Find(&invoices).Error; err != nil {
		httperr.Internal(c, "failed_to_list_invoices", "Could not list invoices.")
		return
	}

	c.JSON(http.StatusOK, invoices)
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid invoice payload.")
		return
	}

	var client models.Client
	if err := h.db.Where("id = ? AND user_id = ?", req.ClientID, userID).First(&client).Error; err != nil {
		httperr.BadRequest(c, "client_not_found", "Client not found.")
		return
	}

	status := req.Status
	if status == "" {
		status = "draft"
	}

	invoice := models.Invoice{
		UserID:    userID,
		ClientID:  req.ClientID,
		ProjectID: req.ProjectID,
		Number:    req.Number,
		Amount:    req.Amount,
		Status:    status,
		Notes:     req.Notes,
		IssuedAt:  req.IssuedAt,
		DueDate:   req.DueDate,
	}

	if err := h.db.Create(&invoice).Error; err != nil {
		httperr.Internal(c, "failed_to_create_invoice", "Could not create invoice.")
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var invoice models.Invoice
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&invoice).Error; err != nil {
		httperr.NotFound(c, "invoice_not_found", "Invoice not found.")
		return
	}

	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid invoice payload.")
		return
	}

	invoice.ClientID = req.ClientID
	invoice.ProjectID = req.ProjectID
	invoice.Number = req.Number
	invoice.Amount = req.Amount
	invoice.Notes = req.Notes
	invoice.IssuedAt = req.IssuedAt
	invoice.DueDate = req.DueDate

	if req.Status != "" && req.Status != invoice.Status {
		invoice.Status = req.Status
		if req.Status == "paid" && invoice.PaidAt == nil {
			now := time.Now()
			invoice.PaidAt = &now
		}
	}

	if err := h.db.Save(&invoice).Error; err != nil {
		httperr.Internal(c, "failed_to_update_invoice", "Could not update invoice.")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	res := h.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Invoice{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_invoice", "Could not delete invoice.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "invoice_not_found", "Invoice not found.")
		return
	}

	c.Status(http.StatusNoContent)
}
