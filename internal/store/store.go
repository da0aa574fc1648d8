// Package store provides the key/value storage capability and its backends.
//
// The app keeps small pieces of client state (theme, cached profile fields)
// under string keys. Which backend holds them depends on the runtime target:
// native builds use encrypted storage, web builds plain persistent storage,
// and tests or one-shot runs an in-memory cache.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"mfinvestor/internal/config"
	apperrors "mfinvestor/internal/errors"
	"mfinvestor/internal/logging"
)

// KeyValueStore defines the storage capability.
type KeyValueStore interface {
	// Get returns the value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Lister is implemented by stores that can enumerate their keys.
type Lister interface {
	// Keys returns every stored key in ascending order.
	Keys(ctx context.Context) ([]string, error)
}

// Open selects the backend for the configured target.
func Open(cfg config.StorageConfig) (KeyValueStore, error) {
	var (
		kv  KeyValueStore
		err error
	)
	switch cfg.Target {
	case config.TargetNative:
		kv, err = NewSecureStore(cfg.Path, cfg.Passphrase)
	case config.TargetWeb:
		kv, err = NewSQLiteStore(cfg.Path)
	case config.TargetMemory:
		kv = NewMemoryStore()
	default:
		return nil, apperrors.Wrapf(apperrors.ErrUnknownTarget, "target %q", cfg.Target)
	}
	if err != nil {
		return nil, err
	}
	return kv, nil
}

// loggedStore logs every operation of the wrapped store at debug level.
type loggedStore struct {
	next    KeyValueStore
	backend string
	logger  zerolog.Logger
}

// WithLogging wraps kv so each operation is logged under the backend name.
// A logger carried by the operation's context takes precedence over logger.
func WithLogging(kv KeyValueStore, backend string, logger zerolog.Logger) KeyValueStore {
	return &loggedStore{next: kv, backend: backend, logger: logger}
}

func (s *loggedStore) log(ctx context.Context, op, key string, start time.Time, err error) {
	logging.LogStorageOp(logging.FromContextOr(ctx, s.logger), s.backend, op, key, time.Since(start), err)
}

func (s *loggedStore) Get(ctx context.Context, key string) (string, error) {
	start := time.Now()
	v, err := s.next.Get(ctx, key)
	s.log(ctx, "get", key, start, err)
	return v, err
}

func (s *loggedStore) Set(ctx context.Context, key, value string) error {
	start := time.Now()
	err := s.next.Set(ctx, key, value)
	s.log(ctx, "set", key, start, err)
	return err
}

func (s *loggedStore) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.next.Delete(ctx, key)
	s.log(ctx, "delete", key, start, err)
	return err
}

func (s *loggedStore) Keys(ctx context.Context) ([]string, error) {
	l, ok := s.next.(Lister)
	if !ok {
		return nil, fmt.Errorf("%s store cannot list keys", s.backend)
	}
	start := time.Now()
	keys, err := l.Keys(ctx)
	s.log(ctx, "keys", "", start, err)
	return keys, err
}

func (s *loggedStore) Close() error {
	return s.next.Close()
}
