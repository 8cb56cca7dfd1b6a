// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package affinity

import (
	"runtime"
	"sync"
)

// Task is a unit of work submitted to a Pool. It runs on a worker pinned to
// a fixed core and returns a single result.
type Task[T any] func() T

// Receipt is a future-like handle to a Task's eventual result.
type Receipt[T any] struct {
	done   chan struct{}
	result T
}

// Wait blocks until the task completes and returns its result.
func (r *Receipt[T]) Wait() T {
	<-r.done
	return r.result
}

// Done reports whether the task has completed without blocking.
func (r *Receipt[T]) Done() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

type job[T any] struct {
	fn     Task[T]
	result *Receipt[T]
}

// Pool is a fixed set of workers, each permanently pinned to one core from
// the supplied list, with real-time priority best-effort and a name
// derived from its index. There is no work stealing: each worker drains
// its own channel only.
//
// Construction starts all workers immediately. Stop signals every worker to
// exit after its current task, drains no further submissions, and blocks
// until all workers have joined.
type Pool[T any] struct {
	queues []chan job[T]
	stop   chan struct{}
	next   int
	wg     sync.WaitGroup
}

// PoolConfig names the cores to pin workers to and, optionally, a
// real-time priority to request for every worker (0 means default
// scheduling).
type PoolConfig struct {
	CoreIDs  []int
	Priority int
	NamePfx  string
	QueueLen int
}

// NewPool constructs and starts a Pool with one worker per entry in
// cfg.CoreIDs. Pinning and priority failures are non-fatal: a worker whose
// placement fails still runs, just without the affinity guarantee.
func NewPool[T any](cfg PoolConfig, onPlacementError func(workerIdx int, err error)) *Pool[T] {
	queueLen := cfg.QueueLen
	if queueLen <= 0 {
		queueLen = 64
	}

	p := &Pool[T]{
		queues: make([]chan job[T], len(cfg.CoreIDs)),
		stop:   make(chan struct{}),
	}

	for i, coreID := range cfg.CoreIDs {
		p.queues[i] = make(chan job[T], queueLen)
		p.wg.Add(1)
		go p.run(i, coreID, cfg, onPlacementError)
	}

	return p
}

func (p *Pool[T]) run(idx, coreID int, cfg PoolConfig, onPlacementError func(int, error)) {
	defer p.wg.Done()
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := Pin(coreID); err != nil && onPlacementError != nil {
		onPlacementError(idx, err)
	}
	if cfg.Priority > 0 {
		if err := SetRealtime(cfg.Priority); err != nil && onPlacementError != nil {
			onPlacementError(idx, err)
		}
	}
	if cfg.NamePfx != "" {
		_ = SetName(workerName(cfg.NamePfx, idx))
	}

	q := p.queues[idx]
	for {
		select {
		case j := <-q:
			j.result.result = j.fn()
			close(j.result.done)
		case <-p.stop:
			// Drain whatever is already queued for this worker, then exit.
			for {
				select {
				case j := <-q:
					j.result.result = j.fn()
					close(j.result.done)
				default:
					return
				}
			}
		}
	}
}

// Submit hands fn to the next worker in round-robin order and returns a
// Receipt for its eventual result. Submit does not block on the task
// running, only on the worker's queue having room.
func (p *Pool[T]) Submit(fn Task[T]) *Receipt[T] {
	r := &Receipt[T]{done: make(chan struct{})}
	idx := p.next % len(p.queues)
	p.next++
	p.queues[idx] <- job[T]{fn: fn, result: r}
	return r
}

// Stop signals all workers to stop accepting new work after draining what
// is already queued, and blocks until every worker has exited.
func (p *Pool[T]) Stop() {
	close(p.stop)
	p.wg.Wait()
}

func workerName(prefix string, idx int) string {
	const digits = "0123456789"
	if idx < 10 {
		return prefix + "-" + string(digits[idx])
	}
	var buf [20]byte
	i := len(buf)
	for idx > 0 {
		i--
		buf[i] = digits[idx%10]
		idx /= 10
	}
	return prefix + "-" + string(buf[i:])
}
