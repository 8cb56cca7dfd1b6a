// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pool provides a fixed-capacity, cache-aligned object pool with
// O(1) acquire/release, idempotent release, and a selectable zeroing
// policy.
//
// Slots are never individually allocated or freed after construction: the
// pool carves a single contiguous payload region up front and links free
// slots through a lock-free Treiber stack addressed by 32-bit index, never
// by raw pointer. This keeps the hot path free of the system allocator and
// sidesteps pointer-level ABA entirely.
//
//	p := pool.New[Order](1024, pool.ZeroOnAcquire)
//	slot := p.Acquire()
//	if slot == nil {
//	    // exhausted
//	}
//	*slot.Value() = order
//	p.Release(slot)
package pool

import (
	"math"
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"

	"github.com/nanotrade/tradecore/cacheline"
)

// ZeroPolicy selects when (if ever) a slot's payload is zeroed.
type ZeroPolicy uint8

const (
	// ZeroNone never zeros the payload; callers must not rely on its
	// contents across acquire/release cycles.
	ZeroNone ZeroPolicy = iota
	// ZeroOnAcquire zeros the payload before Acquire returns it.
	ZeroOnAcquire
	// ZeroOnRelease zeros the payload before it transitions to Free.
	ZeroOnRelease
)

const nilIndex = math.MaxUint32

// slot lifecycle states, held in a header.state atomix.Uint64.
const (
	stateFree uint64 = iota
	stateInUse
)

// header is the per-slot metadata, separate from the payload region so
// payload alignment is never disturbed by bookkeeping fields.
type header struct {
	state    atomix.Uint64
	nextFree atomix.Uint64 // slot index (32-bit range), nilIndex if terminal
}

// Slot is a handle to an acquired pool element. It is only valid between a
// successful Acquire and the matching Release.
type Slot[T any] struct {
	index uint64
	value *T
}

// Value returns a pointer to the slot's payload.
func (s *Slot[T]) Value() *T {
	return s.value
}

// Pool is a fixed-capacity typed allocator. Safe for concurrent use by any
// number of goroutines.
type Pool[T any] struct {
	headers  []header
	payloads []cacheline.Aligned[T]
	head     atomix.Uint64 // free-list head, slot index or nilIndex
	policy   ZeroPolicy
	count    atomix.Int64 // observability: slots currently in use
	capacity uint64
	base     uintptr
	extent   uintptr
}

// New creates a pool with exactly capacity slots for values of type T.
// Every slot starts Free. capacity must be between 1 and 2^32-2.
func New[T any](capacity int, policy ZeroPolicy) *Pool[T] {
	if capacity < 1 || capacity > math.MaxUint32-1 {
		panic("pool: capacity must be between 1 and 2^32-2")
	}

	p := &Pool[T]{
		headers:  make([]header, capacity),
		payloads: make([]cacheline.Aligned[T], capacity),
		policy:   policy,
		capacity: uint64(capacity),
	}

	for i := 0; i < capacity; i++ {
		p.headers[i].state.StoreRelaxed(stateFree)
		if i == capacity-1 {
			p.headers[i].nextFree.StoreRelaxed(nilIndex)
		} else {
			p.headers[i].nextFree.StoreRelaxed(uint64(i + 1))
		}
	}
	p.head.StoreRelaxed(0)

	p.base = uintptr(unsafe.Pointer(&p.payloads[0]))
	p.extent = uintptr(len(p.payloads)) * unsafe.Sizeof(p.payloads[0])

	return p
}

// Acquire returns a slot in InUse state, or nil if the pool is exhausted.
// Never blocks and never calls the system allocator.
func (p *Pool[T]) Acquire() *Slot[T] {
	sw := spin.Wait{}
	for {
		head := p.head.LoadRelaxed()
		if head == nilIndex {
			return nil
		}
		next := p.headers[head].nextFree.LoadRelaxed()
		if !p.head.CompareAndSwapAcqRel(head, next) {
			sw.Once()
			continue
		}
		if !p.headers[head].state.CompareAndSwapAcqRel(stateFree, stateInUse) {
			// Another acquirer already flipped this slot (shouldn't
			// happen under the protocol, but retry defensively rather
			// than hand out a slot in an inconsistent state).
			sw.Once()
			continue
		}
		p.count.AddAcqRel(1)
		value := p.payloads[head].Get()
		if p.policy == ZeroOnAcquire {
			var zero T
			*value = zero
		}
		return &Slot[T]{index: head, value: value}
	}
}

// AcquireZeroed behaves like Acquire but zeros the payload regardless of
// the pool's configured policy.
func (p *Pool[T]) AcquireZeroed() *Slot[T] {
	s := p.Acquire()
	if s == nil {
		return nil
	}
	if p.policy != ZeroOnAcquire {
		var zero T
		*s.value = zero
	}
	return s
}

// Release returns slot to the pool. Idempotent: releasing an already-Free
// slot, a nil slot, or a slot not owned by this pool is a silent no-op.
// Never blocks.
func (p *Pool[T]) Release(slot *Slot[T]) {
	if slot == nil {
		return
	}
	if !p.owns(slot) {
		return
	}
	if p.headers[slot.index].state.LoadAcquire() != stateInUse {
		return
	}

	if p.policy == ZeroOnRelease {
		var zero T
		*slot.value = zero
	}

	if !p.headers[slot.index].state.CompareAndSwapAcqRel(stateInUse, stateFree) {
		return
	}

	sw := spin.Wait{}
	for {
		head := p.head.LoadRelaxed()
		p.headers[slot.index].nextFree.StoreRelaxed(head)
		if p.head.CompareAndSwapAcqRel(head, slot.index) {
			break
		}
		sw.Once()
	}
	p.count.AddAcqRel(-1)
}

// owns reports whether slot was obtained from p, validated by address range
// rather than by trusting the caller's bookkeeping.
func (p *Pool[T]) owns(slot *Slot[T]) bool {
	if slot.index >= p.capacity {
		return false
	}
	addr := uintptr(unsafe.Pointer(slot.value))
	return addr >= p.base && addr < p.base+p.extent
}

// Cap returns the pool's fixed capacity.
func (p *Pool[T]) Cap() int {
	return int(p.capacity)
}

// InUse returns the number of slots currently acquired. For observability
// only; under concurrent access the value may be stale by the time it is
// read.
func (p *Pool[T]) InUse() int64 {
	return p.count.LoadRelaxed()
}
