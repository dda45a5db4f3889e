package storage

import (
	"context"
	"errors"
	"sync"
)

// RecipeState loads and saves the raw JSON recipe collection.
type RecipeState interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// MemoryRecipeState is a simple in-memory implementation for testing
type MemoryRecipeState struct {
	mu    sync.Mutex
	data  []byte
	err   error
	saves int
}

func NewMemoryRecipeState(data []byte) *MemoryRecipeState {
	return &MemoryRecipeState{data: data}
}

func NewMemoryRecipeStateWithError() *MemoryRecipeState {
	return &MemoryRecipeState{err: errors.New("not found")}
}

func (m *MemoryRecipeState) Load(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.data, nil
}

func (m *MemoryRecipeState) Save(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.data = append([]byte(nil), data...)
	m.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (m *MemoryRecipeState) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
