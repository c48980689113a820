package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sistema-bancario/backend/internal/model"
)

// Capability decides whether the current request may see a guarded resource.
type Capability func(c *gin.Context) bool

// Guard는 check가 참이면 allowed를, 아니면 fallback을 실행한다.
func Guard(check Capability, allowed, fallback gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check(c) {
			allowed(c)
			return
		}
		fallback(c)
	}
}

// Authenticated - 세션 컨트롤러 기준 로그인 여부
func Authenticated(c *gin.Context) bool {
	return workspaceFrom(c).Session.IsAuthenticated()
}

// AccessDenied is the default Guard fallback.
func AccessDenied(c *gin.Context) {
	c.JSON(http.StatusForbidden, model.ErrorResponse{Error: "access denied"})
}
