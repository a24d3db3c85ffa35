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

type TaskHandler struct {
	db *gorm.DB
}

func NewTaskHandler(db *gorm.DB) *TaskHandler {
	return &TaskHandler{db: db}
}

type TaskRequest struct {
	ProjectID   uint       `json:"project_id" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
}

func (h *TaskHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	q := h.db.Where("user_id = ?", userID)

	if projectID := c.Query("project_id"); projectID != "" {
		q = q.Where("project_id = ?", projectID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var tasks []models.Task
	if err := q.Order("due_date ASC NULLS LAST, created_at DESC").Find(&tasks).Error; err != nil {
		httperr.Internal(c, "failed_to_list_tasks", "Could not list tasks.")
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid task payload.")
		return
	}

	var project models.Project
	if err := h.db.Where("id = ? AND user_id = ?", req.ProjectID, userID).First(&project).Error; err != nil {
		httperr.BadRequest(c, "project_not_found", "Project not found.")
		return
	}

	status := req.Status
	if status == "" {
		status = "todo"
	}
	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}

	task := models.Task{
		UserID:      userID,
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     req.DueDate,
	}

	if err := h.db.Create(&task).Error; err != nil {
		httperr.Internal(c, "failed_to_create_task", "Could not create task.")
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var task models.Task
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
		httperr.NotFound(c, "task_not_found", "Task not found.")
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid task payload.")
		return
	}

	task.ProjectID = req.ProjectID
	task.Title = req.Title
	task.Description = req.Description
	task.DueDate = req.DueDate
	if req.Priority != "" {
		task.Priority = req.Priority
	}

	if req.Status != "" && req.Status != task.Status {
		task.Status = req.Status
		if req.Status == "done" {
			now := time.Now()
			task.CompletedAt = &now
		} else {
			task.CompletedAt = nil
		}
	}

	if err := h.db.Save(&task).Error; err != nil {
		httperr.Internal(c, "failed_to_update_task", "Could not update task.")
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	res := h.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Task{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_task", "Could not delete task.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "task_not_found", "Task not found.")
		return
	}

	c.Status(http.StatusNoContent)
}
