package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/sistema-bancario/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCreateRequiresFields(t *testing.T) {
	api := newFakeAPI()
	svc := NewClientService(api)

	_, err := svc.Create(context.Background(), model.Client{Name: "Ana"})

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "cpf, email")
	assert.Empty(t, api.calls)
}

func TestClientEndpoints(t *testing.T) {
	api := newFakeAPI()
	svc := NewClientService(api)
	ctx := context.Background()

	in := model.Client{Name: "Ana", TaxID: "123.456.789-00", Email: "ana@example.com", Password: "x", Active: true}
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "Ana", created.Name)

	_, err = svc.Update(ctx, 4, in)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, 4))

	require.Len(t, api.calls, 3)
	assert.Equal(t, http.MethodPost, api.calls[0].method)
	assert.Equal(t, "/clientes/", api.calls[0].endpoint)
	assert.Equal(t, http.MethodPut, api.calls[1].method)
	assert.Equal(t, "/clientes/4/", api.calls[1].endpoint)
	assert.Equal(t, int64(4), api.calls[1].body.(model.Client).ID)
	assert.Equal(t, call{method: http.MethodDelete, endpoint: "/clientes/4/"}, api.calls[2])
}
