package api

import "sync"

// Tracker guards against stale classification responses. Each capture takes
// a sequence number before its request is sent; when the response arrives,
// only the response matching the most recently issued sequence may update
// state. A slow early request can therefore never overwrite the result of a
// faster later one.
type Tracker struct {
	mu     sync.Mutex
	issued uint64
}

// Next issues the next sequence number, making it the latest.
func (t *Tracker) Next() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.issued++

	return t.issued
}

// Latest reports whether seq is still the most recently issued sequence.
// Responses for which this returns false must be discarded.
func (t *Tracker) Latest(seq uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return seq == t.issued
}
