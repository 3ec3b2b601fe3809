package router

import (
	apperrors "Integration_Pool_Manager/internal/pool-manager/errors"
	"Integration_Pool_Manager/internal/pool-manager/metrics"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"container/heap"
	"context"
	"fmt"
	"sync"
)

type waiter struct {
	rank  int
	seq   uint64
	ready chan struct{}
	index int
}

// waitQueue orders waiters by request priority, FIFO within a priority.
type waitQueue []*waiter

func (q waitQueue) Len() int { return len(q) }

func (q waitQueue) Less(i, j int) bool {
	if q[i].rank != q[j].rank {
		return q[i].rank < q[j].rank
	}
	return q[i].seq < q[j].seq
}

func (q waitQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *waitQueue) Push(x any) {
	w := x.(*waiter)
	w.index = len(*q)
	*q = append(*q, w)
}

func (q *waitQueue) Pop() any {
	old := *q
	n := len(old)
	w := old[n-1]
	old[n-1] = nil
	w.index = -1
	*q = old[:n-1]
	return w
}

// admission caps concurrent operations. A limit of zero admits everything.
type admission struct {
	mu       sync.Mutex
	limit    int
	inFlight int
	seq      uint64
	queue    waitQueue
	metrics  *metrics.Metrics
}

func newAdmission(limit int, m *metrics.Metrics) *admission {
	return &admission{limit: limit, metrics: m}
}

func (a *admission) Acquire(ctx context.Context, priority model.RequestPriority) error {
	if a.limit <= 0 {
		return nil
	}

	a.mu.Lock()
	if a.inFlight < a.limit && a.queue.Len() == 0 {
		a.inFlight++
		a.mu.Unlock()
		return nil
	}
	a.seq++
	w := &waiter{rank: priority.Rank(), seq: a.seq, ready: make(chan struct{})}
	heap.Push(&a.queue, w)
	a.metrics.SetAdmissionQueueDepth(a.queue.Len())
	a.mu.Unlock()

	select {
	case <-w.ready:
		return nil
	case <-ctx.Done():
		a.mu.Lock()
		if w.index >= 0 {
			heap.Remove(&a.queue, w.index)
			a.metrics.SetAdmissionQueueDepth(a.queue.Len())
			a.mu.Unlock()
			return fmt.Errorf("%w: %v", apperrors.ErrAdmissionCancelled, ctx.Err())
		}
		a.mu.Unlock()
		// The slot was handed over while we were leaving.
		a.Release()
		return fmt.Errorf("%w: %v", apperrors.ErrAdmissionCancelled, ctx.Err())
	}
}

// Release hands the slot to the most urgent waiter, or frees it.
func (a *admission) Release() {
	if a.limit <= 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.queue.Len() > 0 {
		w := heap.Pop(&a.queue).(*waiter)
		a.metrics.SetAdmissionQueueDepth(a.queue.Len())
		close(w.ready)
		return
	}
	a.inFlight--
}
