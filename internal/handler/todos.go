package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sistema-bancario/backend/internal/model"
	"go.uber.org/zap"
)

// TodoHandler - 세션별 할 일 목록
type TodoHandler struct {
	logger *zap.Logger
}

func NewTodoHandler(logger *zap.Logger) *TodoHandler {
	return &TodoHandler{logger: logger}
}

// ListTodos godoc
// @Summary List to-do items
// @Tags todos
// @Produce json
// @Success 200 {object} model.TaskListResponse
// @Router /api/v1/todos [get]
func (h *TodoHandler) ListTodos(c *gin.Context) {
	c.JSON(http.StatusOK, workspaceFrom(c).Todos.List(c.Request.Context()))
}

// AddTodo godoc
// @Summary Add a to-do item
// @Tags todos
// @Accept json
// @Produce json
// @Param request body model.TaskRequest true "Text"
// @Success 201 {object} model.TaskResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/v1/todos [post]
func (h *TodoHandler) AddTodo(c *gin.Context) {
	var req model.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid request"})
		return
	}
	task, err := workspaceFrom(c).Todos.Add(c.Request.Context(), req.Text)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, model.TaskResponse{Status: "success", Data: task})
}

// ToggleTodo godoc
// @Summary Toggle a to-do item
// @Tags todos
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} model.TaskResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/todos/{id} [patch]
func (h *TodoHandler) ToggleTodo(c *gin.Context) {
	task, err := workspaceFrom(c).Todos.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, model.TaskResponse{Status: "success", Data: task})
}

// RemoveTodo godoc
// @Summary Remove a to-do item
// @Tags todos
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} model.StatusResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/todos/{id} [delete]
func (h *TodoHandler) RemoveTodo(c *gin.Context) {
	if err := workspaceFrom(c).Todos.Remove(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "success"})
}
