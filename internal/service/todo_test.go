package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/sistema-bancario/backend/internal/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoLifecycle(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	svc := NewTodoService(store, "session:1:", nil)

	first, err := svc.Add(ctx, "  pagar boleto ")
	require.NoError(t, err)
	assert.Equal(t, "pagar boleto", first.Text)
	second, err := svc.Add(ctx, "ligar para o banco")
	require.NoError(t, err)

	list := svc.List(ctx)
	require.Len(t, list.Data, 2)
	assert.Equal(t, second.ID, list.Data[0].ID, "newest first")
	assert.Equal(t, 2, list.Pending)

	toggled, err := svc.Toggle(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Done)

	// 다른 인스턴스도 같은 저장소에서 읽는다
	list = NewTodoService(store, "session:1:", nil).List(ctx)
	assert.Equal(t, 1, list.Pending)
	assert.Equal(t, 1, list.Done)

	require.NoError(t, svc.Remove(ctx, second.ID))
	assert.Len(t, svc.List(ctx).Data, 1)

	assert.True(t, errors.Is(svc.Remove(ctx, "missing"), ErrNotFound))
	_, err = svc.Toggle(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTodoRejectsBlankText(t *testing.T) {
	_, err := NewTodoService(kv.NewMemory(), "", nil).Add(context.Background(), "   ")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestTodoCorruptDataStartsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Put(ctx, map[string]string{"tarefas": "{not json"}))

	list := NewTodoService(store, "", nil).List(ctx)
	assert.Empty(t, list.Data)
	assert.Zero(t, list.Pending)
}
