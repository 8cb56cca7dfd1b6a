// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logger provides an async, lock-free logger for latency-sensitive
// producer threads. Log formats into a fixed-size record and enqueues it
// without blocking; a dedicated writer goroutine batches records and
// flushes them with a single vectored write per batch.
//
//	lg, err := logger.Init("/var/log/trading/core.log", logger.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer lg.Shutdown()
//
//	lg.Log(logger.Info, "gateway-0", "order %d filled at %d", orderID, price)
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nanotrade/tradecore/affinity"
	"github.com/nanotrade/tradecore/queue"
	"github.com/nanotrade/tradecore/tsc"
)

// state is the logger's lifecycle, per the {Uninitialized -> Running ->
// Drained -> Closed} state machine. Log is a no-op outside Running.
type state int32

const (
	stateUninitialized state = iota
	stateRunning
	stateDrained
	stateClosed
)

// Stats are cumulative, observability-only counters. Safe to read from any
// goroutine; values may be stale by the time they're read.
type Stats struct {
	Dropped uint64
	Written uint64
	Bytes   uint64
	Errors  uint64
}

// Logger is an async batched-write logger. The zero value is not usable;
// construct with Init.
type Logger struct {
	state state

	ring *queue.MPMC[Record]
	file *os.File

	cfg Config

	dropped atomic.Uint64
	written atomic.Uint64
	bytes   atomic.Uint64
	errors  atomic.Uint64
	ioFault atomic.Bool

	wakeCh chan struct{}

	wg sync.WaitGroup
}

// Init opens path (creating parent directories with 0755 and the file with
// 0644 if needed), allocates the ring, and starts the writer goroutine.
// Safe to call once per process per output file.
func Init(path string, cfg Config) (*Logger, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	lg := &Logger{
		ring:   queue.NewMPMC[Record](cfg.QueueCapacity),
		file:   f,
		cfg:    cfg,
		wakeCh: make(chan struct{}, 1),
	}
	lg.state = stateRunning

	if !cfg.TestFastpath {
		lg.wg.Add(1)
		go lg.writerLoop()
	}

	return lg, nil
}

// Log formats args into a Record and enqueues it under threadID, the
// caller-supplied producer identity (Go has no native TLS to cache one
// behind). Never blocks, never fails observably: a full ring increments the
// dropped counter instead. A no-op in Uninitialized and Closed states.
func (lg *Logger) Log(level Level, threadID string, format string, args ...any) {
	if lg == nil || atomic.LoadInt32((*int32)(&lg.state)) != int32(stateRunning) {
		return
	}

	var rec Record
	rec.TimestampNs = tsc.Now()
	rec.Level = level
	rec.ThreadID = threadID
	rec.SetMessage(fmt.Sprintf(format, args...))

	if lg.cfg.TestFastpath {
		lg.writeRecords([]Record{rec})
		return
	}

	if err := lg.ring.Enqueue(&rec); err != nil {
		lg.dropped.Add(1)
		return
	}
	lg.wake()
}

func (lg *Logger) wake() {
	select {
	case lg.wakeCh <- struct{}{}:
	default:
	}
}

// Shutdown signals the writer to drain remaining records and exit, then
// closes the file. Idempotent.
func (lg *Logger) Shutdown() {
	if lg == nil {
		return
	}
	if !atomic.CompareAndSwapInt32((*int32)(&lg.state), int32(stateRunning), int32(stateDrained)) {
		return
	}
	lg.wake()
	lg.wg.Wait()
	_ = lg.file.Close()
	atomic.StoreInt32((*int32)(&lg.state), int32(stateClosed))
}

// Stats returns a snapshot of cumulative counters.
func (lg *Logger) Stats() Stats {
	return Stats{
		Dropped: lg.dropped.Load(),
		Written: lg.written.Load(),
		Bytes:   lg.bytes.Load(),
		Errors:  lg.errors.Load(),
	}
}

func (lg *Logger) writerLoop() {
	defer lg.wg.Done()

	if lg.cfg.WriterCPU >= 0 {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		if err := affinity.Pin(lg.cfg.WriterCPU); err != nil {
			lg.errors.Add(1)
		}
	}

	ticker := time.NewTicker(maxDuration(lg.cfg.FlushInterval, time.Millisecond))
	defer ticker.Stop()

	for {
		batch := lg.drainBatch()
		if len(batch) > 0 {
			lg.writeRecords(batch)
		}

		if atomic.LoadInt32((*int32)(&lg.state)) != int32(stateRunning) {
			// Drain fully before exiting.
			for {
				final := lg.drainBatch()
				if len(final) == 0 {
					return
				}
				lg.writeRecords(final)
			}
		}

		if len(batch) > 0 {
			continue // keep draining while records are flowing
		}

		select {
		case <-lg.wakeCh:
		case <-ticker.C:
		}
	}
}

// drainBatch pulls up to BatchSize records from the ring. If the ring is
// initially empty it spins SpinBeforeWait iterations, giving a producer
// racing to enqueue a chance to land before the writer falls back to
// blocking on wakeCh/the flush ticker.
func (lg *Logger) drainBatch() []Record {
	batch := make([]Record, 0, lg.cfg.BatchSize)

	for len(batch) < lg.cfg.BatchSize {
		rec, err := lg.ring.Dequeue()
		if err != nil {
			if len(batch) > 0 {
				return batch
			}
			for i := 0; i < lg.cfg.SpinBeforeWait; i++ {
				rec, err = lg.ring.Dequeue()
				if err == nil {
					batch = append(batch, rec)
					break
				}
			}
			if err != nil {
				return batch
			}
			continue
		}
		batch = append(batch, rec)
	}
	return batch
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}
