package tokenstore

import (
	"context"
	"sync"

	"github.com/sistema-bancario/backend/internal/kv"
	"github.com/sistema-bancario/backend/internal/model"
	"go.uber.org/zap"
)

// KV는 토큰 쌍을 key-value 항목 두 개로 저장한다: <namespace>access_token, <namespace>refresh_token.
type KV struct {
	store     kv.Store
	namespace string
	logger    *zap.Logger

	mu sync.Mutex
}

func NewKV(store kv.Store, namespace string, logger *zap.Logger) *KV {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KV{store: store, namespace: namespace, logger: logger}
}

func (s *KV) accessKey() string  { return s.namespace + AccessTokenKey }
func (s *KV) refreshKey() string { return s.namespace + RefreshTokenKey }

func (s *KV) Get(ctx context.Context) (model.TokenPair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.store.Get(ctx, s.accessKey(), s.refreshKey())
	if err != nil {
		s.logger.Warn("token store read failed", zap.String("namespace", s.namespace), zap.Error(err))
		return model.TokenPair{}, false
	}
	pair := model.TokenPair{Access: entries[s.accessKey()], Refresh: entries[s.refreshKey()]}
	return pair, pair.Access != ""
}

func (s *KV) Set(ctx context.Context, pair model.TokenPair) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 빈 토큰은 항목을 남기지 않는다.
	if pair.Access == "" || pair.Refresh == "" {
		var empty []string
		if pair.Access == "" {
			empty = append(empty, s.accessKey())
		}
		if pair.Refresh == "" {
			empty = append(empty, s.refreshKey())
		}
		if err := s.store.Delete(ctx, empty...); err != nil {
			s.logger.Warn("token store write failed", zap.String("namespace", s.namespace), zap.Error(err))
			return
		}
	}

	entries := make(map[string]string, 2)
	if pair.Access != "" {
		entries[s.accessKey()] = pair.Access
	}
	if pair.Refresh != "" {
		entries[s.refreshKey()] = pair.Refresh
	}
	if len(entries) == 0 {
		return
	}
	if err := s.store.Put(ctx, entries); err != nil {
		s.logger.Warn("token store write failed", zap.String("namespace", s.namespace), zap.Error(err))
	}
}

func (s *KV) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, s.accessKey(), s.refreshKey()); err != nil {
		s.logger.Warn("token store clear failed", zap.String("namespace", s.namespace), zap.Error(err))
	}
}
