package common

import "sync"

// Slot caches at most one value. It starts EMPTY and becomes POPULATED on
// the first successful GetOrCreate; there is no transition back.
type Slot[T any] struct {
	value     T
	populated bool
	mutex     sync.RWMutex
}

// Get returns the cached value and whether the slot is populated (thread-safe)
func (s *Slot[T]) Get() (T, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.value, s.populated
}

// Populated reports whether a value has been stored
func (s *Slot[T]) Populated() bool {
	_, ok := s.Get()
	return ok
}

// GetOrCreate returns the cached value, or runs create and caches its result.
// create runs at most once successfully; concurrent callers wait on the first
// one and observe the same value. When create fails the slot stays EMPTY and
// the error is returned unchanged so a later call can retry.
func (s *Slot[T]) GetOrCreate(create func() (T, error)) (T, error) {
	if value, ok := s.Get(); ok {
		return value, nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.populated {
		return s.value, nil
	}

	value, err := create()
	if err != nil {
		var zero T
		return zero, err
	}

	s.value = value
	s.populated = true
	return value, nil
}
