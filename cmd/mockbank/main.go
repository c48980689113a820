// Command mockbank serves an in-memory copy of the remote banking API for local development.
package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/sistema-bancario/backend/internal/config"
	"github.com/sistema-bancario/backend/internal/logger"
	"github.com/sistema-bancario/backend/internal/mockbank"
	"github.com/sistema-bancario/backend/internal/model"
	"go.uber.org/zap"
)

func main() {
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

	srv, err := mockbank.New(mockbank.OptionsFrom(cfg.MockBank, zl))
	if err != nil {
		zl.Fatal("mockbank config invalid", zap.Error(err))
	}
	if err := srv.AddUser(cfg.MockBank.AdminUsername, cfg.MockBank.AdminPassword); err != nil {
		zl.Fatal("admin user setup failed", zap.Error(err))
	}

	// 개발용 기본 데이터
	cl, err := srv.SeedClient(model.Client{Name: "Cliente Exemplo", TaxID: "000.000.000-00", Email: "cliente@example.com", Active: true})
	if err != nil {
		zl.Fatal("seed failed", zap.Error(err))
	}
	if _, err := srv.SeedAccount(model.Account{Number: "0001", Branch: "0001", Balance: "100.00", ClientID: cl.ID}); err != nil {
		zl.Fatal("seed failed", zap.Error(err))
	}

	zl.Info("starting mockbank", zap.String("addr", cfg.MockBank.Addr))
	if err := http.ListenAndServe(cfg.MockBank.Addr, srv.Handler()); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
