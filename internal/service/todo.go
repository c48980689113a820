package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sistema-bancario/backend/internal/kv"
	"github.com/sistema-bancario/backend/internal/model"
	"go.uber.org/zap"
)

const todoKeySuffix = "tarefas"

// TodoService - 세션별 할 일 목록. 목록 전체를 JSON 항목 하나로 저장한다.
//
// 읽기 실패나 깨진 데이터는 빈 목록으로 시작하고, 저장 실패는 로그만 남긴다.
type TodoService struct {
	store  kv.Store
	key    string
	logger *zap.Logger

	mu sync.Mutex
}

func NewTodoService(store kv.Store, namespace string, logger *zap.Logger) *TodoService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TodoService{store: store, key: namespace + todoKeySuffix, logger: logger}
}

func (s *TodoService) List(ctx context.Context) model.TaskListResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return summarize(s.load(ctx))
}

// Add는 새 항목을 맨 앞에 넣는다.
func (s *TodoService) Add(ctx context.Context, text string) (*model.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.Wrap(ErrInvalidInput, "texto is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := model.Task{ID: uuid.NewString(), Text: text}
	s.save(ctx, append([]model.Task{task}, s.load(ctx)...))
	return &task, nil
}

func (s *TodoService) Toggle(ctx context.Context, id string) (*model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.load(ctx)
	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Done = !tasks[i].Done
			s.save(ctx, tasks)
			task := tasks[i]
			return &task, nil
		}
	}
	return nil, ErrNotFound
}

func (s *TodoService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.load(ctx)
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return ErrNotFound
	}
	s.save(ctx, kept)
	return nil
}

func (s *TodoService) load(ctx context.Context) []model.Task {
	entries, err := s.store.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("todo list read failed", zap.String("key", s.key), zap.Error(err))
		return []model.Task{}
	}
	raw, ok := entries[s.key]
	if !ok {
		return []model.Task{}
	}
	var tasks []model.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		s.logger.Warn("todo list is corrupt, starting empty", zap.String("key", s.key), zap.Error(err))
		return []model.Task{}
	}
	return tasks
}

func (s *TodoService) save(ctx context.Context, tasks []model.Task) {
	raw, err := json.Marshal(tasks)
	if err != nil {
		s.logger.Warn("todo list encode failed", zap.Error(err))
		return
	}
	if err := s.store.Put(ctx, map[string]string{s.key: string(raw)}); err != nil {
		s.logger.Warn("todo list write failed", zap.String("key", s.key), zap.Error(err))
	}
}

func summarize(tasks []model.Task) model.TaskListResponse {
	pending := 0
	for _, t := range tasks {
		if !t.Done {
			pending++
		}
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return model.TaskListResponse{Pending: pending, Done: len(tasks) - pending, Data: tasks}
}
