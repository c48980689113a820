package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sistema-bancario/backend/internal/client"
	"github.com/sistema-bancario/backend/internal/config"
	"github.com/sistema-bancario/backend/internal/kv"
	"go.uber.org/zap"
)

type RouterDeps struct {
	Server  config.ServerConfig
	Session config.SessionConfig
	Bank    *client.BankClient
	// Store는 세션 단위 항목(to-do, TOKEN_STORE=kv 토큰)을 담는다.
	Store  kv.Store
	Logger *zap.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger), CORSMiddleware(deps.Server.AllowedOrigins, deps.Server.AllowCredentials))

	// 건강 체크 및 문서
	router.GET("/", Root)
	router.GET("/ping", Ping)
	router.GET("/openapi.json", OpenAPIDoc)

	api := router.Group("/api/v1", SessionMiddleware(deps.Session, deps.Bank, deps.Store, logger))

	auth := NewAuthHandler(logger)
	api.POST("/auth/login", auth.Login)
	api.POST("/auth/logout", auth.Logout)
	api.GET("/auth/check", auth.Check)

	clients := NewClientHandler(logger)
	api.GET("/clients", clients.ListClients)
	api.POST("/clients", clients.CreateClient)
	api.GET("/clients/:id", clients.GetClient)
	api.PUT("/clients/:id", clients.UpdateClient)
	api.DELETE("/clients/:id", clients.DeleteClient)

	accounts := NewAccountHandler(logger)
	api.GET("/accounts", accounts.ListAccounts)
	api.POST("/accounts", accounts.CreateAccount)
	api.POST("/accounts/deposit", accounts.Deposit)
	api.POST("/accounts/withdraw", accounts.Withdraw)
	api.GET("/accounts/:id", accounts.GetAccount)
	api.PUT("/accounts/:id", accounts.UpdateAccount)
	api.DELETE("/accounts/:id", accounts.DeleteAccount)

	profiles := NewProfileHandler(DefaultProfiles, "")
	api.GET("/profiles", Guard(Authenticated, profiles.ListProfiles, AccessDenied))

	todos := NewTodoHandler(logger)
	api.GET("/todos", todos.ListTodos)
	api.POST("/todos", todos.AddTodo)
	api.PATCH("/todos/:id", todos.ToggleTodo)
	api.DELETE("/todos/:id", todos.RemoveTodo)

	return router
}
