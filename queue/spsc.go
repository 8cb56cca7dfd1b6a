// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

import (
	"code.hybscloud.com/atomix"
)

// SPSC is a single-producer single-consumer bounded ring with a zero-copy
// claim/publish API.
//
// Based on Lamport's ring buffer with cached index optimization: the
// producer caches the consumer's read index, and vice versa, reducing
// cross-core cache line traffic to the common case of one load per call.
//
// Exactly one goroutine may call the producer methods (ProducerSlot,
// Publish) and exactly one goroutine may call the consumer methods
// (ConsumerSlot, Consume). The ring never blocks: a full ring fails
// ProducerSlot, an empty ring fails ConsumerSlot.
type SPSC[T any] struct {
	_           pad
	writeIdx    atomix.Uint64 // producer cursor, released on Publish
	_           pad
	cachedRead  uint64 // producer's cached view of readIdx
	_           pad
	readIdx     atomix.Uint64 // consumer cursor, released on Consume
	_           pad
	cachedWrite uint64 // consumer's cached view of writeIdx
	_           pad
	buffer      []T
	mask        uint64
}

// NewSPSC creates a new SPSC ring. Capacity rounds up to the next power of 2.
// Panics if capacity < 2.
func NewSPSC[T any](capacity int) *SPSC[T] {
	if capacity < 2 {
		panic("queue: capacity must be >= 2")
	}
	n := uint64(roundToPow2(capacity))
	return &SPSC[T]{
		buffer: make([]T, n),
		mask:   n - 1,
	}
}

// ProducerSlot returns a pointer to the next writable slot, or nil if the
// ring is full. Producer only.
//
// The caller writes the payload in place, then must call Publish to make it
// visible to the consumer. No copy occurs: the returned pointer aliases the
// ring's own backing array.
func (q *SPSC[T]) ProducerSlot() *T {
	write := q.writeIdx.LoadRelaxed()
	if write-q.cachedRead >= q.mask+1 {
		q.cachedRead = q.readIdx.LoadAcquire()
		if write-q.cachedRead >= q.mask+1 {
			return nil
		}
	}
	return &q.buffer[write&q.mask]
}

// Publish makes the slot last returned by ProducerSlot visible to the
// consumer by incrementing writeIdx with release ordering. Producer only.
//
// Publish must be called at most once per successful ProducerSlot call, and
// only after the payload has been fully written.
func (q *SPSC[T]) Publish() {
	q.writeIdx.StoreRelease(q.writeIdx.LoadRelaxed() + 1)
}

// ConsumerSlot returns a pointer to the oldest unread slot, or nil if the
// ring is empty. Consumer only.
//
// The returned pointer is a borrow: it is only valid until the matching
// Consume call. No copy occurs.
func (q *SPSC[T]) ConsumerSlot() *T {
	read := q.readIdx.LoadRelaxed()
	if read >= q.cachedWrite {
		q.cachedWrite = q.writeIdx.LoadAcquire()
		if read >= q.cachedWrite {
			return nil
		}
	}
	return &q.buffer[read&q.mask]
}

// Consume releases the slot last returned by ConsumerSlot by incrementing
// readIdx with release ordering, making it available for reuse by the
// producer. Consumer only.
//
// Consume must be called at most once per successful ConsumerSlot call, and
// only after the payload has been fully read.
func (q *SPSC[T]) Consume() {
	q.readIdx.StoreRelease(q.readIdx.LoadRelaxed() + 1)
}

// Cap returns the ring capacity.
func (q *SPSC[T]) Cap() int {
	return int(q.mask + 1)
}
