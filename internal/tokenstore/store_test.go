package tokenstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/sistema-bancario/backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestMemoryLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	_, ok := s.Get(ctx)
	assert.False(t, ok)

	s.Set(ctx, model.TokenPair{Access: "a1", Refresh: "r1"})
	pair, ok := s.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, model.TokenPair{Access: "a1", Refresh: "r1"}, pair)

	s.Clear(ctx)
	pair, ok = s.Get(ctx)
	assert.False(t, ok)
	assert.Empty(t, pair.Refresh)
}

func TestMemoryRefreshOnlyPairIsNotAuthenticated(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	s.Set(ctx, model.TokenPair{Refresh: "r1"})

	pair, ok := s.Get(ctx)
	assert.False(t, ok)
	assert.Equal(t, "r1", pair.Refresh)
}

// 동시에 읽는 쪽은 서로 다른 쌍의 access/refresh 조합을 보면 안 된다.
func TestMemoryPairsAreNeverTorn(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	s.Set(ctx, model.TokenPair{Access: "a0", Refresh: "r0"})

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				n := fmt.Sprintf("%d-%d", w, i)
				s.Set(ctx, model.TokenPair{Access: "a" + n, Refresh: "r" + n})
			}
		}(w)
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				pair, _ := s.Get(ctx)
				if pair.Access[1:] != pair.Refresh[1:] {
					t.Errorf("torn pair: %+v", pair)
					return
				}
			}
		}()
	}
	wg.Wait()
}
