package dred

// Snapshot is one encoder output kept for redundancy.
type Snapshot struct {
	Latents Latents
	State   InitialState
}

// History keeps the most recent encoder outputs in a fixed-capacity ring,
// overwriting the oldest entry when full. Index 0 is the newest entry.
//
// History is not safe for concurrent use.
type History struct {
	buf  []Snapshot
	head int // next write position
	n    int
}

// NewHistory returns a history holding up to capacity snapshots.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{buf: make([]Snapshot, capacity)}
}

// Push records one encoder output.
func (h *History) Push(latents *Latents, state *InitialState) {
	s := &h.buf[h.head]
	s.Latents = *latents
	s.State = *state
	h.head = (h.head + 1) % len(h.buf)
	if h.n < len(h.buf) {
		h.n++
	}
}

// Len returns the number of snapshots held.
func (h *History) Len() int { return h.n }

// Cap returns the capacity.
func (h *History) Cap() int { return len(h.buf) }

// At returns the i-th newest snapshot; At(0) is the latest push. The
// pointer stays valid until the entry is overwritten.
func (h *History) At(i int) *Snapshot {
	if i < 0 || i >= h.n {
		return nil
	}
	j := h.head - 1 - i
	if j < 0 {
		j += len(h.buf)
	}
	return &h.buf[j]
}

// Clear drops every snapshot.
func (h *History) Clear() {
	h.head = 0
	h.n = 0
}

// Redundancy returns the oldest snapshot within the newest n and the
// latent vectors that follow it, newest last, ready for a decoder to seed
// from the snapshot and replay. n is clamped to Len; for n <= 0 the seed
// is nil. The returned slice is appended to dst.
func (h *History) Redundancy(dst []Latents, n int) (*InitialState, []Latents) {
	n = min(n, h.n)
	if n <= 0 {
		return nil, dst
	}
	seed := &h.At(n - 1).State
	for i := n - 2; i >= 0; i-- {
		dst = append(dst, h.At(i).Latents)
	}
	return seed, dst
}
