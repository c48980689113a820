package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Put(ctx, map[string]string{"a": "1", "b": "2"}))

	got, err := m.Get(ctx, "a", "b", "missing")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, got)

	require.NoError(t, m.Delete(ctx, "a", "missing"))
	got, err = m.Get(ctx, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"b": "2"}, got)
}
