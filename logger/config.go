// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package logger

import (
	"strconv"
	"time"
)

// Config holds logger tunables read from an external key-value map.
// Unknown keys are ignored; missing keys fall back to the defaults below.
type Config struct {
	// QueueCapacity is the number of records the ring can hold. Rounds up
	// to a power of two.
	QueueCapacity int
	// BatchSize bounds how many records the writer drains per iteration
	// before flushing.
	BatchSize int
	// SpinBeforeWait is the number of extra dequeue attempts the writer
	// makes on an empty ring before it blocks waiting for a wake-up signal
	// or the flush ticker.
	SpinBeforeWait int
	// FlushInterval bounds the time between flushes regardless of batch
	// fill.
	FlushInterval time.Duration
	// WriterCPU pins the writer goroutine's OS thread to this core; -1
	// disables pinning.
	WriterCPU int
	// TestFastpath bypasses asynchrony entirely, writing records
	// synchronously on the calling goroutine. Never safe in production.
	TestFastpath bool
}

// DefaultConfig returns the logger's built-in tunables.
func DefaultConfig() Config {
	return Config{
		QueueCapacity:  4096,
		BatchSize:      64,
		SpinBeforeWait: 1000,
		FlushInterval:  5 * time.Millisecond,
		WriterCPU:      -1,
		TestFastpath:   false,
	}
}

// ParseConfig builds a Config from DefaultConfig, overridden by any
// recognized key present in m. Unknown keys are ignored. Malformed values
// for a recognized key leave that field at its default.
func ParseConfig(m map[string]string) Config {
	cfg := DefaultConfig()

	if v, ok := m["queue_capacity"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.QueueCapacity = n
		}
	}
	if v, ok := m["batch_size"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BatchSize = n
		}
	}
	if v, ok := m["spin_before_wait"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.SpinBeforeWait = n
		}
	}
	if v, ok := m["flush_ms"]; ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.FlushInterval = time.Duration(n) * time.Millisecond
		}
	}
	if v, ok := m["writer_cpu"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.WriterCPU = n
		}
	}
	if v, ok := m["test_fastpath"]; ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.TestFastpath = b
		}
	}

	return cfg
}
