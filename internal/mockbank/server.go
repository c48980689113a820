// Package mockbank is an in-memory stand-in for the remote banking API.
//
// It issues HS256 access/refresh tokens on /token/ and /token/refresh/ and serves
// /clientes/ and /contas/ behind bearer authentication, answering errors with
// {"detail": ...} bodies the way the real API does.
package mockbank

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sistema-bancario/backend/internal/config"
	"github.com/sistema-bancario/backend/internal/model"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrMisconfigured = errors.New("mockbank config invalid")

type Options struct {
	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	// BcryptCost가 0이면 bcrypt.DefaultCost
	BcryptCost int
	Now        func() time.Time
	Logger     *zap.Logger
}

// OptionsFrom - 환경 설정에서 Options 생성
func OptionsFrom(cfg config.MockBankConfig, logger *zap.Logger) Options {
	return Options{
		JWTSecret:  cfg.JWTSecret,
		AccessTTL:  cfg.AccessTTL,
		RefreshTTL: cfg.RefreshTTL,
		Logger:     logger,
	}
}

type Server struct {
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	bcryptCost int
	now        func() time.Time
	logger     *zap.Logger

	mu            sync.RWMutex
	users         map[string][]byte
	clients       map[int64]model.Client
	accounts      map[int64]model.Account
	nextClientID  int64
	nextAccountID int64
}

func New(opts Options) (*Server, error) {
	if opts.JWTSecret == "" {
		return nil, errors.Wrap(ErrMisconfigured, "JWT_SECRET is required")
	}
	if opts.AccessTTL <= 0 || opts.RefreshTTL <= 0 {
		return nil, errors.Wrap(ErrMisconfigured, "token lifetimes must be positive")
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Server{
		jwtSecret:  []byte(opts.JWTSecret),
		accessTTL:  opts.AccessTTL,
		refreshTTL: opts.RefreshTTL,
		bcryptCost: opts.BcryptCost,
		now:        opts.Now,
		logger:     opts.Logger.Named("mockbank"),
		users:      make(map[string][]byte),
		clients:    make(map[int64]model.Client),
		accounts:   make(map[int64]model.Account),
	}, nil
}

// AddUser는 로그인 가능한 사용자를 등록한다. 같은 이름이면 비밀번호를 바꾼다.
func (s *Server) AddUser(username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return errors.Wrap(ErrMisconfigured, "username and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}

	s.mu.Lock()
	s.users[username] = hash
	s.mu.Unlock()
	return nil
}

// Handler returns the API mounted under /api.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.POST("/token/", s.obtainToken)
	api.POST("/token/refresh/", s.refreshToken)

	protected := api.Group("", s.requireAccess)
	protected.GET("/clientes/", s.listClients)
	protected.POST("/clientes/", s.createClient)
	protected.GET("/clientes/:id/", s.getClient)
	protected.PUT("/clientes/:id/", s.updateClient)
	protected.DELETE("/clientes/:id/", s.deleteClient)

	protected.GET("/contas/", s.listAccounts)
	protected.POST("/contas/", s.createAccount)
	protected.GET("/contas/:id/", s.getAccount)
	protected.PUT("/contas/:id/", s.updateAccount)
	protected.DELETE("/contas/:id/", s.deleteAccount)

	return r
}

func detail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, model.DetailResponse{Detail: msg})
}
