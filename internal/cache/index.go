package cache

import (
	"iter"

	lru "github.com/hashicorp/golang-lru/v2"
)

type HitObserver interface {
	IncIndexHit()
	IncIndexMiss()
}

// Index memoizes lookups that otherwise walk a whole snapshot. Entries are
// only valid for the snapshot they were computed from; owners call Purge
// whenever the snapshot changes.
type Index[K comparable, V any] struct {
	size     int
	lru      *lru.Cache[K, V]
	observer HitObserver
}

func NewIndex[K comparable, V any](size int, observer HitObserver) (*Index[K, V], error) {
	if size < 1 {
		size = 1
	}
	c, err := lru.New[K, V](size)
	if err != nil {
		return nil, err
	}
	return &Index[K, V]{
		size:     size,
		lru:      c,
		observer: observer,
	}, nil
}

// GetOrLoad returns the cached value for key or computes it with load. Misses
// reported by load (ok == false) are not cached.
func (x *Index[K, V]) GetOrLoad(key K, load func() (V, bool)) (V, bool) {
	if v, ok := x.lru.Get(key); ok {
		if x.observer != nil {
			x.observer.IncIndexHit()
		}
		return v, true
	}
	if x.observer != nil {
		x.observer.IncIndexMiss()
	}

	v, ok := load()
	if ok {
		x.lru.Add(key, v)
	}
	return v, ok
}

// Warm preloads entries, stopping once the index is full.
func (x *Index[K, V]) Warm(entries iter.Seq2[K, V]) {
	n := 0
	for k, v := range entries {
		if n >= x.size {
			return
		}
		x.lru.Add(k, v)
		n++
	}
}

func (x *Index[K, V]) Purge() { x.lru.Purge() }

func (x *Index[K, V]) Len() int { return x.lru.Len() }
