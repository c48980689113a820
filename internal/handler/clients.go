package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sistema-bancario/backend/internal/model"
	"go.uber.org/zap"
)

// ClientHandler - 고객 CRUD 핸들러
type ClientHandler struct {
	logger *zap.Logger
}

func NewClientHandler(logger *zap.Logger) *ClientHandler {
	return &ClientHandler{logger: logger}
}

// ListClients godoc
// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {object} model.ClientListResponse
// @Failure 401,502 {object} model.ErrorResponse
// @Router /api/v1/clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := workspaceFrom(c).Clients.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, model.ClientListResponse{Status: "success", Data: clients})
}

// GetClient godoc
// @Summary Get a client by ID
// @Tags clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} model.ClientResponse
// @Failure 400,401,404,502 {object} model.ErrorResponse
// @Router /api/v1/clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cl, err := workspaceFrom(c).Clients.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, model.ClientResponse{Status: "success", Data: cl})
}

// CreateClient godoc
// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Param request body model.Client true "Client"
// @Success 201 {object} model.ClientResponse
// @Failure 400,401,502 {object} model.ErrorResponse
// @Router /api/v1/clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req model.Client
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid request"})
		return
	}
	created, err := workspaceFrom(c).Clients.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, model.ClientResponse{Status: "success", Data: created})
}

// UpdateClient godoc
// @Summary Replace a client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param request body model.Client true "Client"
// @Success 200 {object} model.ClientResponse
// @Failure 400,401,404,502 {object} model.ErrorResponse
// @Router /api/v1/clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req model.Client
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid request"})
		return
	}
	updated, err := workspaceFrom(c).Clients.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, model.ClientResponse{Status: "success", Data: updated})
}

// DeleteClient godoc
// @Summary Delete a client
// @Tags clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} model.StatusResponse
// @Failure 400,401,404,502 {object} model.ErrorResponse
// @Router /api/v1/clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := workspaceFrom(c).Clients.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "success"})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "invalid id"})
		return 0, false
	}
	return id, true
}
