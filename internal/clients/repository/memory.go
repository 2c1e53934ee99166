package repository

import (
	"context"
	"sync"

	"freezestore/pkg/model"
)

type memoryClientRepository struct {
	mu      sync.RWMutex
	clients []model.Client
}

// NewMemoryClientRepository keeps clients for the lifetime of the process.
func NewMemoryClientRepository() ClientRepository {
	return &memoryClientRepository{}
}

func (r *memoryClientRepository) Create(_ context.Context, client *model.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients = append(r.clients, *client)
	return nil
}

func (r *memoryClientRepository) FindAll(_ context.Context) ([]model.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Client, len(r.clients))
	copy(out, r.clients)
	return out, nil
}

func (r *memoryClientRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.clients)), nil
}
