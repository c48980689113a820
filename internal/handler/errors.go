package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sistema-bancario/backend/internal/client"
	"github.com/sistema-bancario/backend/internal/model"
	"github.com/sistema-bancario/backend/internal/service"
	"go.uber.org/zap"
)

// writeError - 서비스/파이프라인 오류를 HTTP 응답으로 변환
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid input"})
	case errors.Is(err, service.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid amount"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "not found"})
	case errors.Is(err, service.ErrInsufficientFunds):
		c.JSON(http.StatusUnprocessableEntity, model.ErrorResponse{Error: "insufficient funds"})
	case errors.Is(err, client.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "invalid credentials"})
	case errors.Is(err, client.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "session expired"})
	case errors.Is(err, client.ErrRequestFailed):
		status := client.StatusCode(err)
		if status == http.StatusNotFound {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "not found", Status: status})
			return
		}
		logger.Warn("remote request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusBadGateway, model.ErrorResponse{Error: "request failed", Status: status})
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "server error"})
	}
}
