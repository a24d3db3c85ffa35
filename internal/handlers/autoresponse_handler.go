package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/soloflowhq/soloflow-api/internal/cache"
	domain "github.com/soloflowhq/soloflow-api/internal/domain/autoresponse"
	"github.com/soloflowhq/soloflow-api/internal/httperr"
	"github.com/soloflowhq/soloflow-api/internal/middleware"
	"github.com/soloflowhq/soloflow-api/internal/models"
	usecase "github.com/soloflowhq/soloflow-api/internal/usecase/autoresponse"
)

type AutoResponseHandler struct {
	repo  domain.Repository
	cache *cache.Cache

	create     *usecase.CreateTemplate
	update     *usecase.UpdateTemplate
	deleteTpl  *usecase.DeleteTemplate
	setDefault *usecase.SetDefaultTemplate
	getDefault *usecase.GetDefaultTemplate
}

func NewAutoResponseHandler(
	repo domain.Repository,
	c *cache.Cache,
	create *usecase.CreateTemplate,
	update *usecase.UpdateTemplate,
	deleteTpl *usecase.DeleteTemplate,
	setDefault *usecase.SetDefaultTemplate,
	getDefault *usecase.GetDefaultTemplate,
) *AutoResponseHandler {
	return &AutoResponseHandler{
		repo:       repo,
		cache:      c,
		create:     create,
		update:     update,
		deleteTpl:  deleteTpl,
		setDefault: setDefault,
		getDefault: getDefault,
	}
}

func (h *AutoResponseHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	ctx := c.Request.Context()

	if typeName := c.Query("type"); typeName != "" {
		t := domain.Type(typeName)
		if !t.Valid() {
			httperr.BadRequest(c, "invalid_type", "Unknown template type.")
			return
		}

		templates, err := h.repo.ListByType(ctx, userID, t)
		if err != nil {
			httperr.Internal(c, "failed_to_list_templates", "Could not list templates.")
			return
		}
		c.JSON(http.StatusOK, templates)
		return
	}

	key := cache.TemplatesKey(userID)
	var cached []models.AutoResponse
	if h.cache.GetJSON(ctx, key, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	templates, err := h.repo.List(ctx, userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_templates", "Could not list templates.")
		return
	}

	h.cache.SetJSON(ctx, key, templates)

	c.JSON(http.StatusOK, templates)
}

type CreateTemplateRequest struct {
	Type      string `json:"type" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Content   string `json:"content" binding:"required"`
	IsDefault bool   `json:"is_default"`
}

func (h *AutoResponseHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid template payload.")
		return
	}

	ar, err := h.create.Execute(c.Request.Context(), usecase.CreateTemplateInput{
		UserID:    userID,
		Type:      req.Type,
		Name:      req.Name,
		Content:   req.Content,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ar)
}

type UpdateTemplateRequest struct {
	Type      *string `json:"type"`
	Name      *string `json:"name"`
	Content   *string `json:"content"`
	IsDefault *bool   `json:"is_default"`
}

func (h *AutoResponseHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := templateID(c)
	if !ok {
		return
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid template payload.")
		return
	}

	ar, err := h.update.Execute(c.Request.Context(), usecase.UpdateTemplateInput{
		UserID:    userID,
		ID:        id,
		Type:      req.Type,
		Name:      req.Name,
		Content:   req.Content,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ar)
}

func (h *AutoResponseHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := templateID(c)
	if !ok {
		return
	}

	if err := h.deleteTpl.Execute(c.Request.Context(), userID, id); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type SetDefaultRequest struct {
	Type string `json:"type" binding:"required"`
}

func (h *AutoResponseHandler) SetDefault(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := templateID(c)
	if !ok {
		return
	}

	var req SetDefaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Expected the template type.")
		return
	}

	ar, err := h.setDefault.Execute(c.Request.Context(), userID, req.Type, id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ar)
}

// GetDefault answers with 200 and a null body when the category has no
// default template.
func (h *AutoResponseHandler) GetDefault(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	typeName := c.Query("type")
	if typeName == "" {
		httperr.BadRequest(c, "missing_type", "Expected type=<category>.")
		return
	}

	ar, err := h.getDefault.Execute(c.Request.Context(), userID, typeName)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ar)
}

func templateID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Template id must be numeric.")
		return 0, false
	}
	return uint(id), true
}
