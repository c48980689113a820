package db

import (
	"testing"

	"github.com/sistema-bancario/backend/internal/config"
	"github.com/sistema-bancario/backend/internal/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ kv.Store = (*Postgres)(nil)

func TestBuildPostgresURL(t *testing.T) {
	got, err := buildPostgresURL(config.PostgresConfig{
		Host:     "db",
		Port:     "5433",
		User:     "bank",
		Password: "s3cret",
		Database: "bff",
		SSLMode:  "disable",
	})
	require.NoError(t, err)
	assert.Equal(t, "postgres://bank:s3cret@db:5433/bff?sslmode=disable", got)
}

func TestBuildPostgresURLPrefersDatabaseURL(t *testing.T) {
	got, err := buildPostgresURL(config.PostgresConfig{DatabaseURL: "postgres://x@y/z"})
	require.NoError(t, err)
	assert.Equal(t, "postgres://x@y/z", got)
}

func TestBuildPostgresURLRequiresUserAndDatabase(t *testing.T) {
	_, err := buildPostgresURL(config.PostgresConfig{Host: "db", Port: "5432"})
	assert.Error(t, err)
}
