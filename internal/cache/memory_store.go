package cache

import (
	"strings"
	"sync"
)

// MemoryStore is a map-backed Store with an optional byte quota.
// It does not survive restarts; use BoltStore for that.
type MemoryStore struct {
	// If muPtr is nil, the store is NOT goroutine-safe.
	muPtr *sync.RWMutex

	items    map[string][]byte
	size     int
	maxBytes int
}

// MemoryOptions controls construction of a MemoryStore.
type MemoryOptions struct {
	// ConcurrencySafe controls whether operations are guarded by a RWMutex.
	ConcurrencySafe bool
	// MaxBytes bounds the total size of stored values. Zero means unbounded.
	MaxBytes int
}

// NewMemoryStore constructs a MemoryStore with the given options.
func NewMemoryStore(opts MemoryOptions) *MemoryStore {
	var mu *sync.RWMutex
	if opts.ConcurrencySafe {
		mu = &sync.RWMutex{}
	}
	return &MemoryStore{
		muPtr:    mu,
		items:    make(map[string][]byte),
		maxBytes: opts.MaxBytes,
	}
}

func (s *MemoryStore) lockR() func() {
	if s.muPtr == nil {
		return func() {}
	}
	s.muPtr.RLock()
	return s.muPtr.RUnlock
}

func (s *MemoryStore) lockW() func() {
	if s.muPtr == nil {
		return func() {}
	}
	s.muPtr.Lock()
	return s.muPtr.Unlock
}

// Get implements Store.Get.
func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	unlock := s.lockR()
	defer unlock()

	v, ok := s.items[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set implements Store.Set. It returns ErrQuotaExceeded when the write
// would push the store past MaxBytes.
func (s *MemoryStore) Set(key string, value []byte) error {
	unlock := s.lockW()
	defer unlock()

	next := s.size - len(s.items[key]) + len(value)
	if s.maxBytes > 0 && next > s.maxBytes {
		return ErrQuotaExceeded
	}
	v := make([]byte, len(value))
	copy(v, value)
	s.items[key] = v
	s.size = next
	return nil
}

// Delete implements Store.Delete.
func (s *MemoryStore) Delete(key string) error {
	unlock := s.lockW()
	defer unlock()

	s.size -= len(s.items[key])
	delete(s.items, key)
	return nil
}

// Clear implements Store.Clear.
func (s *MemoryStore) Clear(prefix string) error {
	unlock := s.lockW()
	defer unlock()

	for k, v := range s.items {
		if strings.HasPrefix(k, prefix) {
			s.size -= len(v)
			delete(s.items, k)
		}
	}
	return nil
}

// Len returns the number of stored keys.
func (s *MemoryStore) Len() int {
	unlock := s.lockR()
	defer unlock()
	return len(s.items)
}

// Ensure MemoryStore implements Store at compile time.
var _ Store = (*MemoryStore)(nil)
