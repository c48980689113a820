// Package kv는 토큰 저장소와 할 일 목록이 공유하는 key-value 저장 매체를 정의한다.
//
// 구현체:
//   - Memory: 프로세스 메모리 (테스트, 단일 인스턴스)
//   - db.Postgres: kv_entries 테이블 (TOKEN_STORE=kv + DATABASE_URL)
package kv

import (
	"context"
	"sync"
)

// Store는 여러 key를 한 번에 읽고 쓴다. Put은 전체가 반영되거나 전혀 반영되지 않는다.
type Store interface {
	Get(ctx context.Context, keys ...string) (map[string]string, error)
	Put(ctx context.Context, entries map[string]string) error
	Delete(ctx context.Context, keys ...string) error
}

type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, keys ...string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		if val, ok := m.entries[key]; ok {
			out[key] = val
		}
	}
	return out, nil
}

func (m *Memory) Put(_ context.Context, entries map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, val := range entries {
		m.entries[key] = val
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}
