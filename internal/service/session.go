package service

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sistema-bancario/backend/internal/model"
	"github.com/sistema-bancario/backend/internal/tokenstore"
	"go.uber.org/zap"
)

type SessionState int

const (
	Unauthenticated SessionState = iota
	Authenticated
)

func (s SessionState) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// tokenExchanger - 세션 컨트롤러가 쓰는 파이프라인 기능
type tokenExchanger interface {
	ObtainTokens(ctx context.Context, creds model.Credentials) (model.TokenPair, error)
	OnSessionExpired(fn func(ctx context.Context))
}

// SessionController는 로그인 상태의 유일한 변경 지점이다.
//
// 초기 상태는 저장소에 access 토큰이 있는지로 정한다 (네트워크 호출 없음).
// 파이프라인이 세션 만료를 알리면 Unauthenticated로 전이한다.
type SessionController struct {
	api    tokenExchanger
	tokens tokenstore.Store
	logger *zap.Logger

	mu    sync.RWMutex
	state SessionState
}

func NewSessionController(ctx context.Context, api tokenExchanger, tokens tokenstore.Store, logger *zap.Logger) *SessionController {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &SessionController{api: api, tokens: tokens, logger: logger}
	if _, ok := tokens.Get(ctx); ok {
		s.state = Authenticated
	}
	api.OnSessionExpired(s.expire)
	return s
}

func (s *SessionController) Login(ctx context.Context, creds model.Credentials) error {
	if strings.TrimSpace(creds.Username) == "" || strings.TrimSpace(creds.Password) == "" {
		return errors.Wrap(ErrInvalidInput, "username and password are required")
	}

	pair, err := s.api.ObtainTokens(ctx, creds)
	if err != nil {
		s.logger.Info("login failed", zap.String("username", creds.Username), zap.Error(err))
		return err
	}

	s.tokens.Set(ctx, pair)
	s.setState(Authenticated)
	return nil
}

// Logout은 실패하지 않는다.
func (s *SessionController) Logout(ctx context.Context) {
	s.tokens.Clear(ctx)
	s.setState(Unauthenticated)
}

func (s *SessionController) IsAuthenticated() bool {
	return s.State() == Authenticated
}

func (s *SessionController) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *SessionController) expire(_ context.Context) {
	s.logger.Info("session expired")
	s.setState(Unauthenticated)
}

func (s *SessionController) setState(state SessionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
