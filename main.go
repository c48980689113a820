package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/sistema-bancario/backend/internal/client"
	"github.com/sistema-bancario/backend/internal/config"
	"github.com/sistema-bancario/backend/internal/db"
	"github.com/sistema-bancario/backend/internal/handler"
	"github.com/sistema-bancario/backend/internal/kv"
	"github.com/sistema-bancario/backend/internal/logger"
	"go.uber.org/zap"
)

// @title Sistema Bancario BFF API
// @version 1.0
// @description Backend-for-frontend for the banking API: session handling, clients, accounts and balance movements.
// @BasePath /
func main() {
	// .env는 없어도 된다
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx := context.Background()

	// DATABASE_URL/PG*가 없으면 메모리 저장소 (재시작 시 세션과 할 일 목록이 사라짐)
	var store kv.Store = kv.NewMemory()
	if cfg.Postgres.Configured() {
		pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
		if err != nil {
			zl.Fatal("postgres connect failed", zap.Error(err))
		}
		defer pool.Close()

		pg := &db.Postgres{Pool: pool}
		if err := pg.EnsureKVSchema(ctx); err != nil {
			zl.Fatal("kv schema init failed", zap.Error(err))
		}
		store = pg
	} else if cfg.Session.Store == config.TokenStoreKV {
		zl.Warn("TOKEN_STORE=kv without postgres, tokens are kept in memory")
	}

	router := handler.NewRouter(handler.RouterDeps{
		Server:  cfg.Server,
		Session: cfg.Session,
		Bank:    client.NewBankClient(cfg.BankAPI, zl),
		Store:   store,
		Logger:  zl,
	})

	zl.Info("starting BFF",
		zap.String("addr", cfg.Server.Addr),
		zap.String("bank_api", cfg.BankAPI.BaseURL),
		zap.String("token_store", cfg.Session.Store))
	if err := router.Run(cfg.Server.Addr); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
