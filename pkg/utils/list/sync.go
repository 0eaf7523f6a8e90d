package list

import (
	"sync"
)

// SyncList guards every call of a [List] with one RWMutex.
// Each call is atomic on its own, a sequence of calls is not.
type SyncList[T any] struct {
	l  *List[T]
	mu sync.RWMutex
}

func NewSyncList[T comparable]() *SyncList[T] { return &SyncList[T]{l: New[T]()} }

func NewSyncListFunc[T any](equal func(a, b T) bool) *SyncList[T] {
	return &SyncList[T]{l: NewFunc(equal)}
}

func (s *SyncList[T]) AddFirst(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.AddFirst(v)
}

func (s *SyncList[T]) AddLast(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.AddLast(v)
}

func (s *SyncList[T]) AddAfter(v, anchor T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.AddAfter(v, anchor)
}

func (s *SyncList[T]) AddBefore(v, anchor T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.AddBefore(v, anchor)
}

func (s *SyncList[T]) Contains(v T) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Contains(v)
}

func (s *SyncList[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Len()
}

func (s *SyncList[T]) Front() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Front()
}

func (s *SyncList[T]) Back() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.Back()
}

func (s *SyncList[T]) IsBefore(x, y T) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.IsBefore(x, y)
}

func (s *SyncList[T]) IsAfter(x, y T) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.l.IsAfter(x, y)
}

func (s *SyncList[T]) Remove(v T) (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.Remove(v)
}

func (s *SyncList[T]) RemoveFirst() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.RemoveFirst()
}

func (s *SyncList[T]) RemoveLast() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.l.RemoveLast()
}

func (s *SyncList[T]) Clear() {
	s.mu.Lock()
	s.l.Clear()
	s.mu.Unlock()
}
