package mockbank

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sistema-bancario/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newTestServer(t *testing.T) (*Server, *clock) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	clk := &clock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s, err := New(Options{
		JWTSecret:  "test-secret",
		AccessTTL:  5 * time.Minute,
		RefreshTTL: time.Hour,
		BcryptCost: bcrypt.MinCost,
		Now:        clk.Now,
	})
	require.NoError(t, err)
	require.NoError(t, s.AddUser("ana", "s3cret-pass"))
	return s, clk
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, h http.Handler) model.TokenPair {
	t.Helper()
	w := do(t, h, http.MethodPost, "/api/token/", "", model.Credentials{Username: "ana", Password: "s3cret-pass"})
	require.Equal(t, http.StatusOK, w.Code)
	var pair model.TokenPair
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pair))
	return pair
}

func TestNewRequiresSecret(t *testing.T) {
	_, err := New(Options{AccessTTL: time.Minute, RefreshTTL: time.Hour})
	assert.Error(t, err)
}

func TestObtainToken(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()

	pair := login(t, h)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)

	w := do(t, h, http.MethodPost, "/api/token/", "", model.Credentials{Username: "ana", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"detail"`)

	w = do(t, h, http.MethodPost, "/api/token/", "", model.Credentials{Username: "ana"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccessTokenExpiresAndRefreshes(t *testing.T) {
	s, clk := newTestServer(t)
	h := s.Handler()
	pair := login(t, h)

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/contas/", pair.Access, nil).Code)

	clk.now = clk.now.Add(6 * time.Minute)
	w := do(t, h, http.MethodGet, "/api/contas/", pair.Access, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token_not_valid")

	w = do(t, h, http.MethodPost, "/api/token/refresh/", "", model.RefreshRequest{Refresh: pair.Refresh})
	require.Equal(t, http.StatusOK, w.Code)
	var refreshed map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refreshed))
	assert.NotContains(t, refreshed, "refresh", "refresh token is not rotated")

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/contas/", refreshed["access"], nil).Code)
}

func TestRefreshRejectsExpiredAndWrongType(t *testing.T) {
	s, clk := newTestServer(t)
	h := s.Handler()
	pair := login(t, h)

	w := do(t, h, http.MethodPost, "/api/token/refresh/", "", model.RefreshRequest{Refresh: pair.Access})
	assert.Equal(t, http.StatusUnauthorized, w.Code, "access token is not a refresh token")

	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodGet, "/api/contas/", pair.Refresh, nil).Code)

	clk.now = clk.now.Add(2 * time.Hour)
	w = do(t, h, http.MethodPost, "/api/token/refresh/", "", model.RefreshRequest{Refresh: pair.Refresh})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestResourcesRequireBearer(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s.Handler(), http.MethodGet, "/api/clientes/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAccountCRUD(t *testing.T) {
	s, _ := newTestServer(t)
	h := s.Handler()
	token := login(t, h).Access

	w := do(t, h, http.MethodPost, "/api/clientes/", token, model.Client{Name: "Ana", TaxID: "123", Email: "ana@example.com"})
	require.Equal(t, http.StatusCreated, w.Code)
	var cl model.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cl))
	assert.Equal(t, int64(1), cl.ID)

	w = do(t, h, http.MethodPost, "/api/contas/", token, model.Account{Number: "0001", Branch: "12", Balance: "100", ClientID: cl.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	var acc model.Account
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &acc))
	assert.Equal(t, "100.00", acc.Balance)

	acc.Balance = "-1"
	w = do(t, h, http.MethodPut, "/api/contas/1/", token, acc)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "saldo must not be negative.")

	acc.Balance = "150.5"
	w = do(t, h, http.MethodPut, "/api/contas/1/", token, acc)
	require.Equal(t, http.StatusOK, w.Code)
	stored, ok := s.Account(1)
	require.True(t, ok)
	assert.Equal(t, "150.50", stored.Balance)

	w = do(t, h, http.MethodPost, "/api/contas/", token, model.Account{Number: "2", Branch: "1", Balance: "0", ClientID: 99})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/api/contas/1/", token, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/contas/1/", token, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/api/contas/1/", token, nil).Code)
}
