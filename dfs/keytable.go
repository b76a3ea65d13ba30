package dfs

// stateTable tracks the VisitState of every key reached during one sort run.
// Keys absent from the table are Unvisited.
type stateTable[K any] interface {
	// state returns the recorded state of k, or Unvisited.
	state(k K) VisitState
	// set records s for k. Only InProgress and Done are ever stored.
	set(k K, s VisitState)
	// same reports whether a and b denote the same key.
	same(a, b K) bool
}

// mapTable backs comparable keys with a plain Go map.
type mapTable[K comparable] map[K]VisitState

func newMapTable[K comparable](capacity int) mapTable[K] {
	return make(mapTable[K], capacity)
}

func (m mapTable[K]) state(k K) VisitState { return m[k] }

func (m mapTable[K]) set(k K, s VisitState) { m[k] = s }

func (m mapTable[K]) same(a, b K) bool { return a == b }

// hashEntry is one key/state pair inside a hashTable bucket.
type hashEntry[K any] struct {
	key   K
	state VisitState
}

// hashTable backs keys compared through a caller-supplied Equality.
// Keys are bucketed by Hash and resolved inside a bucket with Equal.
type hashTable[K any] struct {
	eq      Equality[K]
	buckets map[uint64][]hashEntry[K]
}

func newHashTable[K any](eq Equality[K], capacity int) *hashTable[K] {
	return &hashTable[K]{
		eq:      eq,
		buckets: make(map[uint64][]hashEntry[K], capacity),
	}
}

func (h *hashTable[K]) state(k K) VisitState {
	for _, e := range h.buckets[h.eq.Hash(k)] {
		if h.eq.Equal(e.key, k) {
			return e.state
		}
	}

	return Unvisited
}

func (h *hashTable[K]) set(k K, s VisitState) {
	sum := h.eq.Hash(k)
	bucket := h.buckets[sum]
	for i := range bucket {
		if h.eq.Equal(bucket[i].key, k) {
			bucket[i].state = s
			return
		}
	}
	h.buckets[sum] = append(bucket, hashEntry[K]{key: k, state: s})
}

func (h *hashTable[K]) same(a, b K) bool { return h.eq.Equal(a, b) }
