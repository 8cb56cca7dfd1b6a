// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool_test

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanotrade/tradecore/pool"
)

type order struct {
	id   int64
	qty  int64
	side byte
}

func TestAcquiredSlotsDoNotShareACacheLine(t *testing.T) {
	p := pool.New[order](16, pool.ZeroNone)
	a := p.Acquire()
	b := p.Acquire()
	require.NotNil(t, a)
	require.NotNil(t, b)

	addrA := uintptr(unsafe.Pointer(a.Value()))
	addrB := uintptr(unsafe.Pointer(b.Value()))
	diff := addrB - addrA
	if addrA > addrB {
		diff = addrA - addrB
	}
	assert.Zero(t, diff%64)
	assert.NotZero(t, diff)
}

func TestAcquireExhaustionReturnsNilThenRecoversOnRelease(t *testing.T) {
	p := pool.New[order](4, pool.ZeroNone)

	var slots []*pool.Slot[order]
	for i := 0; i < 4; i++ {
		s := p.Acquire()
		require.NotNil(t, s)
		slots = append(slots, s)
	}

	assert.Nil(t, p.Acquire())

	p.Release(slots[0])
	s := p.Acquire()
	assert.NotNil(t, s)
}

func TestDoubleReleaseIsIdempotent(t *testing.T) {
	p := pool.New[order](4, pool.ZeroNone)
	s := p.Acquire()
	require.NotNil(t, s)

	assert.EqualValues(t, 1, p.InUse())
	p.Release(s)
	assert.EqualValues(t, 0, p.InUse())
	p.Release(s) // second release: no-op, no panic, no corruption
	assert.EqualValues(t, 0, p.InUse())

	// pool must still be fully usable afterward
	for i := 0; i < 4; i++ {
		require.NotNil(t, p.Acquire())
	}
	assert.Nil(t, p.Acquire())
}

func TestReleaseOfNilIsNoOp(t *testing.T) {
	p := pool.New[order](2, pool.ZeroNone)
	assert.NotPanics(t, func() {
		p.Release(nil)
	})
}

func TestReleaseOfForeignSlotIsNoOp(t *testing.T) {
	a := pool.New[order](2, pool.ZeroNone)
	b := pool.New[order](2, pool.ZeroNone)

	foreign := a.Acquire()
	require.NotNil(t, foreign)

	assert.EqualValues(t, 0, b.InUse())
	b.Release(foreign)
	assert.EqualValues(t, 0, b.InUse())
	// a's accounting is untouched
	assert.EqualValues(t, 1, a.InUse())
}

func TestZeroOnAcquirePolicy(t *testing.T) {
	p := pool.New[order](2, pool.ZeroOnAcquire)
	s := p.Acquire()
	require.NotNil(t, s)
	s.Value().id = 42
	p.Release(s)

	s2 := p.Acquire()
	require.NotNil(t, s2)
	assert.Zero(t, s2.Value().id)
}

func TestZeroOnReleasePolicy(t *testing.T) {
	p := pool.New[order](2, pool.ZeroOnRelease)
	s := p.Acquire()
	require.NotNil(t, s)
	s.Value().id = 7
	p.Release(s)

	s2 := p.Acquire()
	require.NotNil(t, s2)
	assert.Zero(t, s2.Value().id)
}

func TestAcquireZeroedIgnoresPolicy(t *testing.T) {
	p := pool.New[order](2, pool.ZeroNone)
	s := p.Acquire()
	require.NotNil(t, s)
	s.Value().id = 99
	p.Release(s)

	s2 := p.AcquireZeroed()
	require.NotNil(t, s2)
	assert.Zero(t, s2.Value().id)
}

// TestNoSlotReachableTwiceUnderContention has several goroutines acquire
// and release slots concurrently and verifies no two goroutines ever hold
// the same slot simultaneously.
func TestNoSlotReachableTwiceUnderContention(t *testing.T) {
	const capacity = 64
	const workers = 16
	const rounds = 2000

	p := pool.New[int](capacity, pool.ZeroNone)

	var held sync.Map
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				s := p.Acquire()
				if s == nil {
					continue
				}
				if prev, loaded := held.LoadOrStore(s.Value(), w); loaded {
					t.Errorf("slot %p held by workers %v and %d at once", s.Value(), prev, w)
				}
				*s.Value() = i
				held.Delete(s.Value())
				p.Release(s)
			}
		}(w)
	}
	wg.Wait()

	assert.EqualValues(t, 0, p.InUse())
}
