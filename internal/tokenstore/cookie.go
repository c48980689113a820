package tokenstore

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sistema-bancario/backend/internal/config"
	"github.com/sistema-bancario/backend/internal/model"
)

type CookieConfig struct {
	Path          string
	Domain        string
	Secure        bool
	SameSite      http.SameSite
	AccessMaxAge  int
	RefreshMaxAge int
}

func CookieConfigFrom(cfg config.SessionConfig) CookieConfig {
	return CookieConfig{
		Path:          cfg.CookiePath,
		Domain:        cfg.CookieDomain,
		Secure:        cfg.CookieSecure,
		SameSite:      cfg.CookieSameSite,
		AccessMaxAge:  cfg.AccessMaxAge,
		RefreshMaxAge: cfg.RefreshMaxAge,
	}
}

// Cookie는 하나의 gin 요청에 묶인 HttpOnly 쿠키 두 개(access_token, refresh_token)다.
// 응답에 쓴 값은 같은 요청 안의 이후 Get에서 바로 보인다.
type Cookie struct {
	c   *gin.Context
	cfg CookieConfig

	mu   sync.Mutex
	pair model.TokenPair
}

func NewCookie(c *gin.Context, cfg CookieConfig) *Cookie {
	access, _ := c.Cookie(AccessTokenKey)
	refresh, _ := c.Cookie(RefreshTokenKey)
	return &Cookie{
		c:    c,
		cfg:  cfg,
		pair: model.TokenPair{Access: access, Refresh: refresh},
	}
}

func (s *Cookie) Get(_ context.Context) (model.TokenPair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pair, s.pair.Access != ""
}

func (s *Cookie) Set(_ context.Context, pair model.TokenPair) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = pair
	s.write(AccessTokenKey, pair.Access, s.cfg.AccessMaxAge)
	s.write(RefreshTokenKey, pair.Refresh, s.cfg.RefreshMaxAge)
}

func (s *Cookie) Clear(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = model.TokenPair{}
	s.write(AccessTokenKey, "", -1)
	s.write(RefreshTokenKey, "", -1)
}

func (s *Cookie) write(name, value string, maxAge int) {
	if value == "" {
		maxAge = -1
	}
	s.c.SetSameSite(s.cfg.SameSite)
	s.c.SetCookie(name, value, maxAge, s.cfg.Path, s.cfg.Domain, s.cfg.Secure, true)
}
