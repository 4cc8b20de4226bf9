// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	s := NewMemoryLocalStorage()
	ctx := context.Background()

	_, err := s.Get(ctx, KeyToken)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, KeyToken, "a"))
	require.NoError(t, s.Set(ctx, KeyToken, "b"))
	got, err := s.Get(ctx, KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	require.NoError(t, s.Remove(ctx, KeyToken))
	require.NoError(t, s.Remove(ctx, KeyToken))
	_, err = s.Get(ctx, KeyToken)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	assert.NoError(t, s.Close())
}

func TestMemoryStorage_Concurrent(t *testing.T) {
	s := NewMemoryLocalStorage()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%5)
			_ = s.Set(ctx, key, "v")
			_, _ = s.Get(ctx, key)
			_ = s.Remove(ctx, key)
		}(i)
	}
	wg.Wait()
}
