// file: internals/features/contracts/drafts/repository/memory.go
package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// MemoryDraftRepository: fake in-memory untuk test.
type MemoryDraftRepository struct {
	mu   sync.Mutex
	data map[uuid.UUID]map[string]json.RawMessage
}

func NewMemoryDraftRepository() *MemoryDraftRepository {
	return &MemoryDraftRepository{data: make(map[uuid.UUID]map[string]json.RawMessage)}
}

func (r *MemoryDraftRepository) Get(_ context.Context, sessionID uuid.UUID, key string) (json.RawMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.data[sessionID]; ok {
		if v, ok := m[key]; ok {
			return append(json.RawMessage(nil), v...), nil
		}
	}
	return nil, nil
}

func (r *MemoryDraftRepository) GetAll(_ context.Context, sessionID uuid.UUID) (map[string]json.RawMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]json.RawMessage)
	for k, v := range r.data[sessionID] {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out, nil
}

func (r *MemoryDraftRepository) Set(_ context.Context, sessionID uuid.UUID, key string, value json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data[sessionID] == nil {
		r.data[sessionID] = make(map[string]json.RawMessage)
	}
	r.data[sessionID][key] = append(json.RawMessage(nil), value...)
	return nil
}

func (r *MemoryDraftRepository) Clear(_ context.Context, sessionID uuid.UUID, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		delete(r.data[sessionID], k)
	}
	return nil
}
