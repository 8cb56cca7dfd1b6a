// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tsc provides a monotonically non-decreasing nanosecond counter
// that is cheaper to read than a syscall.
//
// Go has no portable way to read a CPU cycle counter without per-arch
// assembly, and this corpus carries none. Instead a background goroutine
// refreshes a cached timestamp at a fixed resolution and Now reads it with
// a single atomic load; the calibration (the first read of the system
// clock, and the periodic refresh) happens off the hot path entirely.
//
//	ts := tsc.Now()
//
// Callers needing an isolated, independently calibrated source (tests,
// per-component clocks) should construct their own [Source].
package tsc

import (
	"time"

	"code.hybscloud.com/atomix"
	timecache "github.com/agilira/go-timecache"
)

// defaultResolution bounds how stale Now's value can be. It does not bound
// the cost of Now itself, which is always a single atomic load.
const defaultResolution = 50 * time.Microsecond

// Source is an independently calibrated nanosecond counter. The zero value
// is not usable; construct with NewSource.
type Source struct {
	cache   *timecache.Cache
	start   time.Time
	current atomix.Uint64
	ticker  *time.Ticker
	done    chan struct{}
}

// NewSource calibrates a new Source against the system clock and starts a
// background goroutine that refreshes the cached timestamp every
// resolution. The epoch is arbitrary: it is the instant of calibration.
func NewSource(resolution time.Duration) *Source {
	if resolution <= 0 {
		resolution = defaultResolution
	}
	s := &Source{
		cache:  timecache.NewWithResolution(resolution),
		start:  time.Now(),
		ticker: time.NewTicker(resolution),
		done:   make(chan struct{}),
	}
	s.current.StoreRelaxed(0)
	go s.run()
	return s
}

func (s *Source) run() {
	for {
		select {
		case <-s.done:
			return
		case <-s.ticker.C:
			s.current.StoreRelease(uint64(s.cache.CachedTime().Sub(s.start)))
		}
	}
}

// Now returns nanoseconds elapsed since this Source was calibrated. Never
// decreases between calls. Reading costs a single atomic load: no syscall,
// no lock.
func (s *Source) Now() uint64 {
	return s.current.LoadAcquire()
}

// Close stops the background refresh goroutine. A Source does not need to
// be closed for the process to exit cleanly, but long-lived tests that
// construct many Sources should close them to avoid leaking goroutines.
func (s *Source) Close() {
	s.ticker.Stop()
	s.cache.Stop()
	close(s.done)
}

var defaultSource = NewSource(defaultResolution)

// Now returns nanoseconds elapsed since process-wide calibration, using the
// package's default Source. Never decreases between calls.
func Now() uint64 {
	return defaultSource.Now()
}
