// Package tokenstore는 현재 access/refresh 토큰 쌍을 보관한다.
//
// 저장 매체 (Memory, Cookie, KV)를 Store 인터페이스 뒤로 숨겨
// 요청 파이프라인이 매체를 몰라도 되도록 한다.
package tokenstore

import (
	"context"
	"sync"

	"github.com/sistema-bancario/backend/internal/model"
)

const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// Store는 에러를 반환하지 않는다. 매체 장애 시 읽기는 빈 값, 쓰기는 무시된다.
//
// Get의 bool은 access 토큰 존재 여부다. access가 만료되어 사라지고 refresh만
// 남은 경우에도 pair는 그대로 반환된다.
type Store interface {
	Get(ctx context.Context) (model.TokenPair, bool)
	Set(ctx context.Context, pair model.TokenPair)
	Clear(ctx context.Context)
}

type Memory struct {
	mu   sync.RWMutex
	pair model.TokenPair
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get(_ context.Context) (model.TokenPair, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pair, m.pair.Access != ""
}

func (m *Memory) Set(_ context.Context, pair model.TokenPair) {
	m.mu.Lock()
	m.pair = pair
	m.mu.Unlock()
}

func (m *Memory) Clear(_ context.Context) {
	m.mu.Lock()
	m.pair = model.TokenPair{}
	m.mu.Unlock()
}
