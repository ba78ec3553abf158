package upperbound

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Memo caches dispatch results per use site, so a hot call site pays for
// one branch evaluation in total rather than one per call.
//
// Semantics:
//   - The first Eval for a site key runs the dispatcher once and stores
//     the result; every later Eval with that key returns the stored value
//     without touching the family again.
//   - Concurrent first calls for the same key are collapsed: exactly one
//     goroutine evaluates, the rest wait and share its result.
//   - Distinct keys are independent; callers choose the keying (one key
//     per (desired value, family) pair keeps results referentially
//     transparent — same inputs, literally the same cached value).
//
// A Memo must not be copied after first use.
type Memo[T any] struct {
	group singleflight.Group

	mu   sync.RWMutex
	done map[string]T
}

// NewMemo returns an empty Memo.
func NewMemo[T any]() *Memo[T] {
	return &Memo[T]{done: make(map[string]T)}
}

// Eval returns the dispatch result for a at the given site, evaluating the
// family's selected branch only on the first call per site key.
//
// A panic from the branch on that first evaluation propagates to every
// caller waiting on the same key, and nothing is cached — the next Eval
// for the key starts over.
func (m *Memo[T]) Eval(site string, a Acceptor[T]) T {
	m.mu.RLock()
	v, ok := m.done[site]
	m.mu.RUnlock()
	if ok {
		return v
	}

	// Collapse concurrent first evaluations; only one runs the branch.
	res, _, _ := m.group.Do(site, func() (interface{}, error) {
		m.mu.RLock()
		v, ok := m.done[site]
		m.mu.RUnlock()
		if ok {
			return v, nil
		}

		val := Eval(a)

		m.mu.Lock()
		m.done[site] = val
		m.mu.Unlock()

		return val, nil
	})

	return res.(T)
}

// Cached reports the stored result for a site key, if any, without
// triggering evaluation.
func (m *Memo[T]) Cached(site string) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.done[site]

	return v, ok
}

// Len reports the number of sites with a cached result.
func (m *Memo[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.done)
}
