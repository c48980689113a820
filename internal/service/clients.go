package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sistema-bancario/backend/internal/model"
)

const clientsEndpoint = "/clientes/"

// apiExecutor - 인증 파이프라인 (client.BankClient)
type apiExecutor interface {
	Execute(ctx context.Context, method, endpoint string, body, out any) error
}

type ClientService struct {
	api apiExecutor
}

func NewClientService(api apiExecutor) *ClientService {
	return &ClientService{api: api}
}

func clientEndpoint(id int64) string {
	return fmt.Sprintf("%s%d/", clientsEndpoint, id)
}

func (s *ClientService) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	if err := s.api.Execute(ctx, http.MethodGet, clientsEndpoint, nil, &clients); err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []model.Client{}
	}
	return clients, nil
}

func (s *ClientService) Get(ctx context.Context, id int64) (*model.Client, error) {
	var c model.Client
	if err := s.api.Execute(ctx, http.MethodGet, clientEndpoint(id), nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ClientService) Create(ctx context.Context, c model.Client) (*model.Client, error) {
	if err := validateClient(c); err != nil {
		return nil, err
	}
	c.ID = 0
	var created model.Client
	if err := s.api.Execute(ctx, http.MethodPost, clientsEndpoint, c, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *ClientService) Update(ctx context.Context, id int64, c model.Client) (*model.Client, error) {
	if err := validateClient(c); err != nil {
		return nil, err
	}
	c.ID = id
	var updated model.Client
	if err := s.api.Execute(ctx, http.MethodPut, clientEndpoint(id), c, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ClientService) Delete(ctx context.Context, id int64) error {
	return s.api.Execute(ctx, http.MethodDelete, clientEndpoint(id), nil, nil)
}

func validateClient(c model.Client) error {
	var missing []string
	if strings.TrimSpace(c.Name) == "" {
		missing = append(missing, "nome")
	}
	if strings.TrimSpace(c.TaxID) == "" {
		missing = append(missing, "cpf")
	}
	if strings.TrimSpace(c.Email) == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return errors.Wrapf(ErrInvalidInput, "missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
