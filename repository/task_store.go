package repository

import (
	"context"
	"sync"

	"storefrontGraphQL/models"
)

// MemoryTaskStore keeps tasks in process memory. Tasks live as long as the process.
type MemoryTaskStore struct {
	mu    sync.RWMutex
	tasks []models.Task
}

func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{}
}

// Create appends t with ID equal to the number of tasks stored before it.
func (s *MemoryTaskStore) Create(_ context.Context, t models.Task) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = int64(len(s.tasks))
	s.tasks = append(s.tasks, t)
	return &t, nil
}

// List returns a copy of the tasks in insertion order.
func (s *MemoryTaskStore) List(_ context.Context) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}
