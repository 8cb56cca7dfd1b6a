// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package queue provides bounded lock-free FIFO ring buffers for the two
// producer/consumer shapes the trading core needs:
//
//   - SPSC: single-producer single-consumer, zero-copy claim/publish
//   - MPMC: multi-producer multi-consumer, CAS with per-slot sequence numbers
//
// # Quick Start
//
//	spsc := queue.NewSPSC[Tick](1024)
//	mpmc := queue.NewMPMC[*Order](4096)
//
// # SPSC: zero-copy claim/publish
//
// SPSC trades the copy-based Enqueue/Dequeue interface for a two-phase API
// that avoids copying the payload in or out of the ring:
//
//	// Producer
//	if slot := q.ProducerSlot(); slot != nil {
//	    *slot = tick
//	    q.Publish()
//	}
//
//	// Consumer
//	if slot := q.ConsumerSlot(); slot != nil {
//	    process(*slot)
//	    q.Consume()
//	}
//
// Exactly one goroutine may call the producer methods and exactly one
// goroutine may call the consumer methods. Violating this causes data races.
//
// # MPMC: CAS with per-slot sequence
//
// MPMC implements the standard [Queue] interface:
//
//	val := 42
//	if err := q.Enqueue(&val); err != nil {
//	    // queue.IsWouldBlock(err): ring is full
//	}
//
//	elem, err := q.Dequeue()
//	if err == nil {
//	    use(elem)
//	}
//
// Any number of goroutines may call Enqueue and Dequeue concurrently.
//
// # Error Handling
//
// Non-blocking operations return [ErrWouldBlock] rather than blocking. This
// error is sourced from [code.hybscloud.com/iox] for ecosystem consistency.
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Enqueue(&item)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if !queue.IsWouldBlock(err) {
//	        return err
//	    }
//	    backoff.Wait()
//	}
//
// # Capacity
//
// Capacity rounds up to the next power of 2; minimum is 2.
//
//	queue.NewMPMC[int](1000) // actual capacity: 1024
//
// Neither ring exposes a length: accurate counts in lock-free algorithms
// require expensive cross-core synchronization. Track counts in application
// logic when needed.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives (mutex,
// channels, WaitGroup) but cannot observe happens-before relationships
// established purely through atomic acquire-release orderings. Both rings
// here are correct under the C11/Go memory model but may produce false
// positives under -race; tests that would trip this skip themselves when
// [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit memory
// ordering, and [code.hybscloud.com/spin] for CPU pause instructions during
// MPMC contention.
package queue
