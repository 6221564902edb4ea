// Implements the BatchQueue, which holds all batches waiting to be dispatched.
// Batches are enqueued in partitioner order and consumed one per trip.

package sim

import (
	"fmt"
	"strings"
)

// BatchQueue represents a FIFO queue of batches waiting for a vehicle.
type BatchQueue struct {
	queue []Batch // FIFO queue of batches
}

// Enqueue adds a batch to the back of the queue.
func (bq *BatchQueue) Enqueue(b Batch) {
	bq.queue = append(bq.queue, b)
}

func (bq *BatchQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, b := range bq.queue {
		sb.WriteString(fmt.Sprintf("%v(%dkg)", b.IDs(), b.TotalWeight()))
		if i < len(bq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of batches in the queue.
func (bq *BatchQueue) Len() int {
	return len(bq.queue)
}

// Peek returns the batch at the front of the queue without removing it.
// The second result is false if the queue is empty.
func (bq *BatchQueue) Peek() (Batch, bool) {
	if len(bq.queue) == 0 {
		return Batch{}, false
	}
	return bq.queue[0], true
}

// Dequeue removes the batch at the front of the queue.
func (bq *BatchQueue) Dequeue() (Batch, bool) {
	if len(bq.queue) == 0 {
		return Batch{}, false
	}
	b := bq.queue[0]
	bq.queue = bq.queue[1:]
	return b, true
}
