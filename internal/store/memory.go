package store

import (
	"context"
	"sort"
	"sync/atomic"

	"github.com/patrickmn/go-cache"

	apperrors "mfinvestor/internal/errors"
)

const backendMemory = "memory"

// MemoryStore keeps values in process memory. Nothing survives Close.
type MemoryStore struct {
	c      *cache.Cache
	closed atomic.Bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{c: cache.New(cache.NoExpiration, 0)}
}

func (s *MemoryStore) checkOpen(op, key string) error {
	if s.closed.Load() {
		return apperrors.NewStorageError(backendMemory, op, key, apperrors.ErrStorageClosed)
	}
	return nil
}

// Get returns the value stored under key.
func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	if err := s.checkOpen("get", key); err != nil {
		return "", err
	}
	v, ok := s.c.Get(key)
	if !ok {
		return "", apperrors.NewStorageError(backendMemory, "get", key, apperrors.ErrKeyNotFound)
	}
	return v.(string), nil
}

// Set stores value under key.
func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := s.checkOpen("set", key); err != nil {
		return err
	}
	s.c.Set(key, value, cache.NoExpiration)
	return nil
}

// Delete removes key.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := s.checkOpen("delete", key); err != nil {
		return err
	}
	s.c.Delete(key)
	return nil
}

// Keys lists all stored keys in order.
func (s *MemoryStore) Keys(ctx context.Context) ([]string, error) {
	if err := s.checkOpen("keys", ""); err != nil {
		return nil, err
	}
	items := s.c.Items()
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Close drops every entry.
func (s *MemoryStore) Close() error {
	if s.closed.CompareAndSwap(false, true) {
		s.c.Flush()
	}
	return nil
}
