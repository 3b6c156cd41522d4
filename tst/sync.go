package tst

import (
	"iter"
	"sync"
)

// Sync is a Trie guarded by a reader/writer lock: any number of readers or
// a single writer at a time.
//
// The iterators hold the read lock until the iteration ends, so the loop
// body must not call mutating methods of the same Sync.
type Sync[V any] struct {
	mu   sync.RWMutex
	trie *Trie[V]
}

func NewSync[V any](opts ...Option) *Sync[V] {
	return &Sync[V]{trie: New[V](opts...)}
}

func (s *Sync[V]) Insert(key string, val V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.trie.Insert(key, val)
}

func (s *Sync[V]) Add(key string, val V) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.trie.Add(key, val)
}

func (s *Sync[V]) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.trie.Remove(key)
}

func (s *Sync[V]) MakeEmpty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trie.MakeEmpty()
}

func (s *Sync[V]) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.trie.Prune()
}

func (s *Sync[V]) Value(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.trie.Value(key)
}

func (s *Sync[V]) Contains(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.trie.Contains(key)
}

func (s *Sync[V]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.trie.Size()
}

func (s *Sync[V]) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.trie.Empty()
}

func (s *Sync[V]) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.trie.Stats()
}

func (s *Sync[V]) All() iter.Seq2[string, V] {
	return s.locked(s.trie.All())
}

func (s *Sync[V]) WithPrefix(prefix string) iter.Seq2[string, V] {
	return s.locked(s.trie.WithPrefix(prefix))
}

func (s *Sync[V]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		s.mu.RLock()
		defer s.mu.RUnlock()

		s.trie.Keys()(yield)
	}
}

func (s *Sync[V]) locked(seq iter.Seq2[string, V]) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		s.mu.RLock()
		defer s.mu.RUnlock()

		seq(yield)
	}
}
