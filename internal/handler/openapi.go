package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sistema-bancario/backend/docs"
)

// OpenAPIDoc godoc
// @Summary OpenAPI document
// @Description Swagger 2.0 description of the BFF surface.
// @Tags health
// @Produce json
// @Success 200 {object} object
// @Router /openapi.json [get]
func OpenAPIDoc(c *gin.Context) {
	// 브라우저 캐시 때문에 오래된 문서를 보지 않도록
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(docs.SwaggerInfo.ReadDoc()))
}
