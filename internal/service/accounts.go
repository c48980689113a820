package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sistema-bancario/backend/internal/model"
	"go.uber.org/zap"
)

const (
	accountsEndpoint = "/contas/"
	balanceDigits    = 2
)

type AccountService struct {
	api    apiExecutor
	logger *zap.Logger
}

func NewAccountService(api apiExecutor, logger *zap.Logger) *AccountService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountService{api: api, logger: logger}
}

func accountEndpoint(id int64) string {
	return fmt.Sprintf("%s%d/", accountsEndpoint, id)
}

func (s *AccountService) List(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := s.api.Execute(ctx, http.MethodGet, accountsEndpoint, nil, &accounts); err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []model.Account{}
	}
	return accounts, nil
}

func (s *AccountService) Get(ctx context.Context, id int64) (*model.Account, error) {
	var acc model.Account
	if err := s.api.Execute(ctx, http.MethodGet, accountEndpoint(id), nil, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func (s *AccountService) Create(ctx context.Context, acc model.Account) (*model.Account, error) {
	if err := normalizeAccount(&acc); err != nil {
		return nil, err
	}
	acc.ID = 0
	var created model.Account
	if err := s.api.Execute(ctx, http.MethodPost, accountsEndpoint, acc, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *AccountService) Update(ctx context.Context, id int64, acc model.Account) (*model.Account, error) {
	if err := normalizeAccount(&acc); err != nil {
		return nil, err
	}
	acc.ID = id
	return s.replace(ctx, acc)
}

func (s *AccountService) Delete(ctx context.Context, id int64) error {
	return s.api.Execute(ctx, http.MethodDelete, accountEndpoint(id), nil, nil)
}

// Deposit: 현재 잔액을 다시 읽고 amount를 더해 계좌 전체를 PUT 한다.
func (s *AccountService) Deposit(ctx context.Context, req model.MovementRequest) (*model.Account, error) {
	return s.mutateBalance(ctx, req, func(balance, amount decimal.Decimal) (decimal.Decimal, error) {
		return balance.Add(amount), nil
	})
}

// Withdraw: 결과가 음수면 ErrInsufficientFunds, 쓰기 없음.
// 화면 쪽 사전 검사와 별개로 이 검사가 최종 판단이다.
func (s *AccountService) Withdraw(ctx context.Context, req model.MovementRequest) (*model.Account, error) {
	return s.mutateBalance(ctx, req, func(balance, amount decimal.Decimal) (decimal.Decimal, error) {
		next := balance.Sub(amount)
		if next.IsNegative() {
			return decimal.Decimal{}, ErrInsufficientFunds
		}
		return next, nil
	})
}

// read-modify-write. 같은 계좌에 대한 동시 출금은 서로의 결과를 덮어쓸 수 있고,
// 원자성은 원격 API가 책임진다.
func (s *AccountService) mutateBalance(ctx context.Context, req model.MovementRequest, apply func(balance, amount decimal.Decimal) (decimal.Decimal, error)) (*model.Account, error) {
	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	acc, err := s.Get(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	balance, err := decimal.NewFromString(strings.TrimSpace(acc.Balance))
	if err != nil {
		return nil, errors.Wrapf(err, "account %d has malformed balance %q", acc.ID, acc.Balance)
	}

	next, err := apply(balance, amount)
	if err != nil {
		s.logger.Info("balance mutation rejected",
			zap.Int64("account_id", req.AccountID), zap.String("balance", acc.Balance),
			zap.String("amount", req.Amount), zap.Error(err))
		return nil, err
	}

	acc.ID = req.AccountID
	acc.Balance = FormatBalance(next)
	return s.replace(ctx, *acc)
}

func (s *AccountService) replace(ctx context.Context, acc model.Account) (*model.Account, error) {
	var updated model.Account
	if err := s.api.Execute(ctx, http.MethodPut, accountEndpoint(acc.ID), acc, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ParseAmount accepts a positive decimal string.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(ErrInvalidAmount, "%q is not a decimal", raw)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, errors.Wrapf(ErrInvalidAmount, "%q must be greater than zero", raw)
	}
	return amount, nil
}

func FormatBalance(d decimal.Decimal) string {
	return d.StringFixed(balanceDigits)
}

func normalizeAccount(acc *model.Account) error {
	if strings.TrimSpace(acc.Number) == "" || strings.TrimSpace(acc.Branch) == "" || acc.ClientID == 0 {
		return errors.Wrap(ErrInvalidInput, "numero, agencia and cliente are required")
	}
	raw := strings.TrimSpace(acc.Balance)
	if raw == "" {
		raw = "0"
	}
	balance, err := decimal.NewFromString(raw)
	if err != nil {
		return errors.Wrapf(ErrInvalidAmount, "saldo %q is not a decimal", acc.Balance)
	}
	if balance.IsNegative() {
		return errors.Wrapf(ErrInvalidAmount, "saldo %q is negative", acc.Balance)
	}
	acc.Balance = FormatBalance(balance)
	return nil
}
