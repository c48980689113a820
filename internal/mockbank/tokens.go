package mockbank

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sistema-bancario/backend/internal/model"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenType  = "access"
	refreshTokenType = "refresh"
)

var errTokenInvalid = errors.New("token is invalid or expired")

type tokenClaims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func (s *Server) issue(username, tokenType string) (string, error) {
	ttl := s.accessTTL
	if tokenType == refreshTokenType {
		ttl = s.refreshTTL
	}
	now := s.now()
	claims := tokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

// parse validates signature, expiry and token_type, returning the subject.
func (s *Server) parse(raw, tokenType string) (string, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errTokenInvalid
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", errTokenInvalid
	}
	if claims.TokenType != tokenType {
		return "", errTokenInvalid
	}

	s.mu.RLock()
	_, ok := s.users[claims.Subject]
	s.mu.RUnlock()
	if !ok {
		return "", errTokenInvalid
	}
	return claims.Subject, nil
}

func (s *Server) obtainToken(c *gin.Context) {
	var creds model.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil || creds.Username == "" || creds.Password == "" {
		detail(c, http.StatusBadRequest, "username and password are required.")
		return
	}

	s.mu.RLock()
	hash, ok := s.users[creds.Username]
	s.mu.RUnlock()
	if !ok || bcrypt.CompareHashAndPassword(hash, []byte(creds.Password)) != nil {
		detail(c, http.StatusUnauthorized, "No active account found with the given credentials")
		return
	}

	access, err := s.issue(creds.Username, accessTokenType)
	if err != nil {
		s.serverError(c, err)
		return
	}
	refresh, err := s.issue(creds.Username, refreshTokenType)
	if err != nil {
		s.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.TokenPair{Access: access, Refresh: refresh})
}

// refreshToken은 access만 새로 발급한다. refresh 토큰은 돌려주지 않는다.
func (s *Server) refreshToken(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Refresh == "" {
		detail(c, http.StatusBadRequest, "refresh is required.")
		return
	}

	username, err := s.parse(req.Refresh, refreshTokenType)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, model.DetailResponse{Detail: "Token is invalid or expired", Code: "token_not_valid"})
		return
	}

	access, err := s.issue(username, accessTokenType)
	if err != nil {
		s.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.RefreshResponse{Access: access})
}

func (s *Server) requireAccess(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		detail(c, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if _, err := s.parse(token, accessTokenType); err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, model.DetailResponse{Detail: "Given token not valid for any token type", Code: "token_not_valid"})
		return
	}
	c.Next()
}

func (s *Server) serverError(c *gin.Context, err error) {
	s.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	detail(c, http.StatusInternalServerError, "A server error occurred.")
}
