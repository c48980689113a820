package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGuard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	allowed := func(c *gin.Context) { c.String(http.StatusOK, "card") }

	tests := []struct {
		name  string
		check Capability
		code  int
	}{
		{name: "allowed", check: func(*gin.Context) bool { return true }, code: http.StatusOK},
		{name: "denied", check: func(*gin.Context) bool { return false }, code: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/guarded", Guard(tt.check, allowed, AccessDenied))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))

			assert.Equal(t, tt.code, w.Code)
		})
	}
}
