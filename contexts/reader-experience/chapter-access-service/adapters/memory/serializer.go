package memory

import (
	"context"
	"strings"
	"sync"
)

// KeyedLock serializes work per user with one mutex per key. Suited to the
// single-process deployment; a multi-node deployment would replace this
// adapter with a transactional or advisory-lock implementation.
type KeyedLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewKeyedLock() *KeyedLock {
	return &KeyedLock{
		locks: make(map[string]*sync.Mutex),
	}
}

func (l *KeyedLock) WithUserLock(ctx context.Context, userID string, fn func(ctx context.Context) error) error {
	key := strings.TrimSpace(userID)
	if key == "" {
		return fn(ctx)
	}

	l.mu.Lock()
	lock, ok := l.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[key] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	return fn(ctx)
}
