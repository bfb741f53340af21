package scan

import "sync"

// queue is an unbounded FIFO of pending directory paths. Pop blocks
// until an item arrives or the queue is closed; close wakes everything.
// Order is not semantically significant, but no path is ever dropped
// and each pushed path is popped exactly once.
type queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []string
	closed bool
}

func newQueue() *queue {
	q := &queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *queue) push(path string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.items = append(q.items, path)
	q.cond.Signal()
}

// pop returns the next path, or ok=false once the queue is closed and
// drained of nothing more to hand out.
func (q *queue) pop() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.items) == 0 {
		return "", false
	}
	path := q.items[0]
	q.items = q.items[1:]
	return path, true
}

// close is idempotent. Items still queued are discarded, which is the
// wanted behavior on cancellation: workers finish their current entry
// and exit without draining.
func (q *queue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.items = nil
	q.cond.Broadcast()
}
