package ads1115

import "sync"

// snapshotRing is a fixed-capacity FIFO over a preallocated array. When
// full, a push evicts the oldest entry, so the ring always holds the most
// recent completed snapshots. Written by the sampler, drained by any number
// of consumers; both ends go through one mutex so a pop can never observe a
// half-evicted state.
type snapshotRing struct {
	mu    sync.Mutex
	buf   [historyDepth]Snapshot
	head  int // index of the oldest entry
	count int
}

func (r *snapshotRing) push(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count == len(r.buf) {
		r.buf[r.head] = s
		r.head = (r.head + 1) % len(r.buf)
		return
	}
	r.buf[(r.head+r.count)%len(r.buf)] = s
	r.count++
}

// pop removes and returns the oldest snapshot. Never blocks; ok is false
// when the ring is empty.
func (r *snapshotRing) pop() (Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count == 0 {
		return Snapshot{}, false
	}
	s := r.buf[r.head]
	r.buf[r.head] = Snapshot{}
	r.head = (r.head + 1) % len(r.buf)
	r.count--
	return s, true
}

func (r *snapshotRing) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
