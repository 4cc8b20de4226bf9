// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

type memoryLocalStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryLocalStorage returns a [LocalStorage] that lives only as long as
// the process. Used for DSN "memory" and in tests.
func NewMemoryLocalStorage() LocalStorage {
	return &memoryLocalStorage{items: make(map[string]string)}
}

func (s *memoryLocalStorage) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (s *memoryLocalStorage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value
	return nil
}

func (s *memoryLocalStorage) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}

func (s *memoryLocalStorage) Close() error {
	return nil
}
