package memory

import (
	"sync"

	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/domain"
	"github.com/Apurer/go-gin-fulfillment/internal/domains/delivery/ports"
)

var _ ports.DispatchQueue = (*DispatchQueue)(nil)

// DispatchQueue is an unbounded in-process FIFO. Its contents are lost on restart.
type DispatchQueue struct {
	mu      sync.Mutex
	batches []domain.Batch
}

func NewDispatchQueue() *DispatchQueue {
	return &DispatchQueue{}
}

func (q *DispatchQueue) Enqueue(batch domain.Batch) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.batches = append(q.batches, batch)
}

// Poll removes and returns the head of the queue.
func (q *DispatchQueue) Poll() (domain.Batch, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.batches) == 0 {
		return domain.Batch{}, false
	}
	head := q.batches[0]
	q.batches[0] = domain.Batch{}
	q.batches = q.batches[1:]
	if len(q.batches) == 0 {
		q.batches = nil
	}
	return head, true
}

func (q *DispatchQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.batches)
}
