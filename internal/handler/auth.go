package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sistema-bancario/backend/internal/model"
	"go.uber.org/zap"
)

type AuthHandler struct {
	logger *zap.Logger
}

func NewAuthHandler(logger *zap.Logger) *AuthHandler {
	return &AuthHandler{logger: logger}
}

// Login godoc
// @Summary Login
// @Description Exchanges credentials for a token pair kept server-side (cookies or key-value store).
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.Credentials true "Username and password"
// @Success 200 {object} model.AuthCheckResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 502 {object} model.ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	session := workspaceFrom(c).Session
	if err := session.Login(c.Request.Context(), req); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, model.AuthCheckResponse{Authenticated: session.IsAuthenticated()})
}

// Logout godoc
// @Summary Logout
// @Description Clears the stored tokens. Always succeeds.
// @Tags auth
// @Produce json
// @Success 200 {object} model.StatusResponse
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	workspaceFrom(c).Session.Logout(c.Request.Context())
	c.JSON(http.StatusOK, model.StatusResponse{Status: "logged_out"})
}

// Check godoc
// @Summary Check session
// @Description Reports whether an access token is stored. No remote call is made.
// @Tags auth
// @Produce json
// @Success 200 {object} model.AuthCheckResponse
// @Router /api/v1/auth/check [get]
func (h *AuthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, model.AuthCheckResponse{Authenticated: workspaceFrom(c).Session.IsAuthenticated()})
}
