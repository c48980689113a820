package service

import (
	"context"

	"github.com/sistema-bancario/backend/internal/client"
	"github.com/sistema-bancario/backend/internal/kv"
	"github.com/sistema-bancario/backend/internal/tokenstore"
	"go.uber.org/zap"
)

// Workspace - 요청 하나에 필요한 세션 상태와 도메인 서비스 묶음.
// 전역 상태 대신 핸들러에 명시적으로 전달된다.
type Workspace struct {
	Session  *SessionController
	Clients  *ClientService
	Accounts *AccountService
	Todos    *TodoService
}

// NewWorkspace는 base 클라이언트의 http.Client를 공유하는 view를 tokens 위에 만든다.
// namespace는 세션 단위 key-value 항목의 prefix다.
func NewWorkspace(ctx context.Context, base *client.BankClient, tokens tokenstore.Store, store kv.Store, namespace string, logger *zap.Logger) *Workspace {
	if logger == nil {
		logger = zap.NewNop()
	}
	api := base.WithTokens(tokens)
	return &Workspace{
		Session:  NewSessionController(ctx, api, tokens, logger),
		Clients:  NewClientService(api),
		Accounts: NewAccountService(api, logger),
		Todos:    NewTodoService(store, namespace, logger),
	}
}
