package kv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
)

// ChangeFunc is called after a key is written or deleted.
type ChangeFunc func(key string)

// Store is the JSON layer over a Backend. Values that do not decode are
// treated as absent and cleared.
type Store struct {
	backend Backend
	logger  *log.Logger

	locksMu sync.Mutex
	locks   map[string]*keyLock

	listenersMu sync.RWMutex
	listeners   []ChangeFunc
}

func NewStore(backend Backend, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{backend: backend, logger: logger, locks: make(map[string]*keyLock)}
}

func (s *Store) Backend() Backend {
	return s.backend
}

func (s *Store) OnChange(fn ChangeFunc) {
	if fn == nil {
		return
	}
	s.listenersMu.Lock()
	s.listeners = append(s.listeners, fn)
	s.listenersMu.Unlock()
}

func (s *Store) notify(keys ...string) {
	s.listenersMu.RLock()
	ls := make([]ChangeFunc, len(s.listeners))
	copy(ls, s.listeners)
	s.listenersMu.RUnlock()

	for _, k := range keys {
		for _, fn := range ls {
			fn(k)
		}
	}
}

// GetJSON decodes the value at key into out. It reports false when the key is
// absent or held a malformed value.
func (s *Store) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	b, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("kv get %s: %w", key, err)
	}
	if !ok || len(b) == 0 {
		return false, nil
	}
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		s.Discard(ctx, key, "null value")
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		s.Discard(ctx, key, err.Error())
		return false, nil
	}
	return true, nil
}

// Discard logs and removes a value that cannot serve as stored state.
// Readers then see the key as absent.
func (s *Store) Discard(ctx context.Context, key, reason string) {
	s.logger.Printf("[KV] malformed value, clearing | key=%s backend=%s err=%s", key, s.backend.Name(), reason)
	if err := s.backend.Delete(ctx, key); err != nil {
		s.logger.Printf("[KV] clear malformed failed | key=%s err=%v", key, err)
		return
	}
	s.notify(key)
}

func (s *Store) SetJSON(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv encode %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, key, b); err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	s.notify(key)
	return nil
}

// SetRaw writes b unchanged. Used by seeding and tests that need exact bytes.
func (s *Store) SetRaw(ctx context.Context, key string, b []byte) error {
	if err := s.backend.Set(ctx, key, b); err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	s.notify(key)
	return nil
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	_, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("kv get %s: %w", key, err)
	}
	return ok, nil
}

func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.backend.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("kv delete: %w", err)
	}
	s.notify(keys...)
	return nil
}

// keyLock is held in the locks map only while some caller holds or waits for it.
type keyLock struct {
	mu   sync.Mutex
	refs int
}

// Locked runs fn while holding the in-process lock for key, so a
// read-modify-write of one key is never interleaved with another writer in
// this process. Other processes sharing the backend still win by last write.
func (s *Store) Locked(key string, fn func() error) error {
	s.locksMu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &keyLock{}
		s.locks[key] = l
	}
	l.refs++
	s.locksMu.Unlock()

	l.mu.Lock()
	defer func() {
		l.mu.Unlock()
		s.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, key)
		}
		s.locksMu.Unlock()
	}()
	return fn()
}

func (s *Store) lockCount() int {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	return len(s.locks)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.backend.Ping(ctx)
}

func (s *Store) Close() error {
	return s.backend.Close()
}
