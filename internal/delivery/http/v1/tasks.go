package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nlevin/taskdeck/internal/models"
)

type taskResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newTaskResponse(task models.Task) taskResponse {
	return taskResponse{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

type activityLogResponse struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	OldValue  *string   `json:"old_value"`
	NewValue  *string   `json:"new_value"`
}

func newActivityLogResponse(entry models.ActivityLogEntry) activityLogResponse {
	return activityLogResponse{
		ID:        entry.ID,
		TaskID:    entry.TaskID,
		Action:    entry.Action,
		Timestamp: entry.Timestamp,
		OldValue:  entry.OldValue,
		NewValue:  entry.NewValue,
	}
}

type taskStatsResponse struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

type createTaskRequest struct {
	Title string `json:"title" binding:"required,max=255"`
}

type updateTaskRequest struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

func (h *handlerImpl) HandleListTasks(c *gin.Context) {
	tasks := h.store.AllTasks()

	response := make([]taskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = newTaskResponse(task)
	}

	h.logger.Debug().
		Int("count", len(response)).
		Msg("listed tasks")
	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind create task request")
		abort(c, newUnprocessableError(errInvalidRequestBody.Error()))
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		h.logger.Warn().Msg("rejected blank title")
		abort(c, newUnprocessableError(errEmptyTitle.Error()))
		return
	}

	task := h.store.CreateTask(title)

	h.logger.Info().
		Str("task_id", task.ID).
		Msg("created task")
	c.JSON(http.StatusCreated, newTaskResponse(task))
}

func (h *handlerImpl) HandleTaskStats(c *gin.Context) {
	stats := h.store.Stats()
	c.JSON(http.StatusOK, taskStatsResponse{
		Total:     stats.Total,
		Completed: stats.Completed,
		Pending:   stats.Pending,
	})
}

func (h *handlerImpl) HandleGetTask(c *gin.Context) {
	taskID := c.Param("id")

	task, err := h.store.GetTask(taskID)
	if err != nil {
		abort(c, newTaskNotFoundError(taskID))
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleCompleteTask(c *gin.Context) {
	taskID := c.Param("id")

	task, err := h.store.CompleteTask(taskID)
	if err != nil {
		h.logger.Warn().
			Str("task_id", taskID).
			Msg("task not found")
		abort(c, newTaskNotFoundError(taskID))
		return
	}

	h.logger.Info().
		Str("task_id", taskID).
		Msg("completed task")
	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	taskID := c.Param("id")

	var req updateTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind update task request")
		abort(c, newUnprocessableError(errInvalidRequestBody.Error()))
		return
	}

	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		if trimmed == "" {
			h.logger.Warn().
				Str("task_id", taskID).
				Msg("rejected blank title")
			abort(c, newUnprocessableError(errEmptyTitle.Error()))
			return
		}
		req.Title = &trimmed
	}

	task, err := h.store.UpdateTask(taskID, req.Title, req.Completed)
	if err != nil {
		h.logger.Warn().
			Str("task_id", taskID).
			Msg("task not found")
		abort(c, newTaskNotFoundError(taskID))
		return
	}

	h.logger.Info().
		Str("task_id", taskID).
		Msg("updated task")
	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	taskID := c.Param("id")

	if !h.store.DeleteTask(taskID) {
		h.logger.Warn().
			Str("task_id", taskID).
			Msg("task not found")
		abort(c, newTaskNotFoundError(taskID))
		return
	}

	h.logger.Info().
		Str("task_id", taskID).
		Msg("deleted task")
	c.Status(http.StatusNoContent)
}

func (h *handlerImpl) HandleTaskActivity(c *gin.Context) {
	taskID := c.Param("id")

	entries, err := h.store.TaskActivity(taskID)
	if err != nil {
		abort(c, newTaskNotFoundError(taskID))
		return
	}

	response := make([]activityLogResponse, len(entries))
	for i, entry := range entries {
		response[i] = newActivityLogResponse(entry)
	}

	c.JSON(http.StatusOK, response)
}
