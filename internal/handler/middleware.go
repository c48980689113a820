package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sistema-bancario/backend/internal/client"
	"github.com/sistema-bancario/backend/internal/config"
	"github.com/sistema-bancario/backend/internal/kv"
	"github.com/sistema-bancario/backend/internal/service"
	"github.com/sistema-bancario/backend/internal/tokenstore"
	"go.uber.org/zap"
)

const (
	workspaceKey      = "workspace"
	sessionCookieName = "session_id"
)

// SessionMiddleware는 요청마다 토큰 저장소와 Workspace를 만든다.
//
// session_id 쿠키(uuid)는 세션 단위 key-value 항목의 namespace가 된다.
// TOKEN_STORE=kv면 토큰도 그 namespace 아래에 두고, 아니면 HttpOnly 쿠키에 둔다.
func SessionMiddleware(cfg config.SessionConfig, bank *client.BankClient, store kv.Store, logger *zap.Logger) gin.HandlerFunc {
	cookieCfg := tokenstore.CookieConfigFrom(cfg)

	return func(c *gin.Context) {
		namespace := "session:" + sessionID(c, cookieCfg) + ":"

		var tokens tokenstore.Store
		if cfg.Store == config.TokenStoreKV {
			tokens = tokenstore.NewKV(store, namespace, logger)
		} else {
			tokens = tokenstore.NewCookie(c, cookieCfg)
		}

		c.Set(workspaceKey, service.NewWorkspace(c.Request.Context(), bank, tokens, store, namespace, logger))
		c.Next()
	}
}

// sessionID returns the caller's session id, issuing a new one if absent or malformed.
func sessionID(c *gin.Context, cfg tokenstore.CookieConfig) string {
	if raw, err := c.Cookie(sessionCookieName); err == nil {
		if id, err := uuid.Parse(raw); err == nil {
			return id.String()
		}
	}
	id := uuid.NewString()
	c.SetSameSite(cfg.SameSite)
	c.SetCookie(sessionCookieName, id, cfg.RefreshMaxAge, cfg.Path, cfg.Domain, cfg.Secure, true)
	return id
}

func workspaceFrom(c *gin.Context) *service.Workspace {
	return c.MustGet(workspaceKey).(*service.Workspace)
}

// RequestLogger - 요청 한 건당 한 줄 (debug)
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("remote", c.ClientIP()),
			zap.Int("status", c.Writer.Status()),
			zap.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000.0),
			zap.Int("size", c.Writer.Size()),
		)
	}
}

func CORSMiddleware(allowedOrigins []string, allowCredentials bool) gin.HandlerFunc {
	originMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := originMap[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				if allowCredentials {
					c.Header("Access-Control-Allow-Credentials", "true")
				}
				c.Header("Access-Control-Allow-Headers", "Content-Type")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
