package config

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	TokenStoreCookie = "cookie"
	TokenStoreKV     = "kv"
)

var ErrMisconfigured = errors.New("config invalid")

type Config struct {
	Server   ServerConfig
	BankAPI  BankAPIConfig
	Session  SessionConfig
	Postgres PostgresConfig
	Log      LogConfig
	MockBank MockBankConfig
}

type ServerConfig struct {
	Addr             string
	AllowedOrigins   []string
	AllowCredentials bool
}

type BankAPIConfig struct {
	BaseURL            string
	Timeout            time.Duration
	InsecureSkipVerify bool
}

type SessionConfig struct {
	Store          string
	CookieSecure   bool
	CookieSameSite http.SameSite
	CookieDomain   string
	CookiePath     string
	AccessMaxAge   int
	RefreshMaxAge  int
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

// Configured reports whether enough is set to open a pool.
func (c PostgresConfig) Configured() bool {
	return c.DatabaseURL != "" || (c.User != "" && c.Database != "")
}

type LogConfig struct {
	Level string
	Dev   bool
}

type MockBankConfig struct {
	Addr          string
	JWTSecret     string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	AdminUsername string
	AdminPassword string
}

func Load() (Config, error) {
	timeout, err := parseDuration("BANK_API_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	insecure, err := parseBool("BANK_API_INSECURE_SKIP_VERIFY", false)
	if err != nil {
		return Config{}, err
	}
	allowCredentials, err := parseBool("CORS_ALLOW_CREDENTIALS", true)
	if err != nil {
		return Config{}, err
	}
	cookieSecure, err := parseBool("AUTH_COOKIE_SECURE", true)
	if err != nil {
		return Config{}, err
	}
	sameSite, err := parseSameSite(os.Getenv("AUTH_COOKIE_SAMESITE"))
	if err != nil {
		return Config{}, err
	}
	if sameSite == http.SameSiteNoneMode && !cookieSecure {
		return Config{}, errors.Wrap(ErrMisconfigured, "SameSite=None requires Secure cookie")
	}
	accessMaxAge, err := parseInt("ACCESS_COOKIE_MAX_AGE", 60*60)
	if err != nil {
		return Config{}, err
	}
	refreshMaxAge, err := parseInt("REFRESH_COOKIE_MAX_AGE", 60*60*24*7)
	if err != nil {
		return Config{}, err
	}
	store := strings.ToLower(getenv("TOKEN_STORE", TokenStoreCookie))
	if store != TokenStoreCookie && store != TokenStoreKV {
		return Config{}, errors.Wrapf(ErrMisconfigured, "invalid TOKEN_STORE %q", store)
	}
	logDev, err := parseBool("LOG_DEV", false)
	if err != nil {
		return Config{}, err
	}
	accessTTL, err := parseDuration("JWT_ACCESS_TTL", "5m")
	if err != nil {
		return Config{}, err
	}
	refreshTTL, err := parseDuration("JWT_REFRESH_TTL", "24h")
	if err != nil {
		return Config{}, err
	}

	return Config{
		Server: ServerConfig{
			Addr:             getenv("BFF_ADDR", ":8080"),
			AllowedOrigins:   splitList(getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
			AllowCredentials: allowCredentials,
		},
		BankAPI: BankAPIConfig{
			BaseURL:            strings.TrimRight(getenv("BANK_API_URL", "https://aula-angular.bcorp.tec.br/api"), "/"),
			Timeout:            timeout,
			InsecureSkipVerify: insecure,
		},
		Session: SessionConfig{
			Store:          store,
			CookieSecure:   cookieSecure,
			CookieSameSite: sameSite,
			CookieDomain:   os.Getenv("AUTH_COOKIE_DOMAIN"),
			CookiePath:     getenv("AUTH_COOKIE_PATH", "/"),
			AccessMaxAge:   accessMaxAge,
			RefreshMaxAge:  refreshMaxAge,
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		Log: LogConfig{
			Level: strings.ToLower(os.Getenv("LOG_LEVEL")),
			Dev:   logDev,
		},
		MockBank: MockBankConfig{
			Addr:          getenv("MOCKBANK_ADDR", ":8000"),
			JWTSecret:     os.Getenv("JWT_SECRET"),
			AccessTTL:     accessTTL,
			RefreshTTL:    refreshTTL,
			AdminUsername: getenv("ADMIN_USERNAME", "admin"),
			AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		},
	}, nil
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.Wrapf(ErrMisconfigured, "invalid %s", key)
	}
	return parsed, nil
}

func parseInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(ErrMisconfigured, "invalid %s", key)
	}
	return parsed, nil
}

func parseDuration(key, fallback string) (time.Duration, error) {
	parsed, err := time.ParseDuration(getenv(key, fallback))
	if err != nil {
		return 0, errors.Wrapf(ErrMisconfigured, "invalid %s", key)
	}
	return parsed, nil
}

func parseSameSite(value string) (http.SameSite, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return 0, errors.Wrap(ErrMisconfigured, "invalid AUTH_COOKIE_SAMESITE")
	}
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
