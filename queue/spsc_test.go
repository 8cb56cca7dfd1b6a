// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanotrade/tradecore/queue"
)

func TestSPSCProducerSlotNilWhenFull(t *testing.T) {
	q := queue.NewSPSC[int](2)

	for i := 0; i < q.Cap(); i++ {
		slot := q.ProducerSlot()
		require.NotNil(t, slot)
		*slot = i
		q.Publish()
	}

	assert.Nil(t, q.ProducerSlot())
}

func TestSPSCConsumerSlotNilWhenEmpty(t *testing.T) {
	q := queue.NewSPSC[int](4)
	assert.Nil(t, q.ConsumerSlot())
}

func TestSPSCRoundTripPreservesOrder(t *testing.T) {
	q := queue.NewSPSC[int](8)

	for i := 0; i < 5; i++ {
		slot := q.ProducerSlot()
		require.NotNil(t, slot)
		*slot = i
		q.Publish()
	}

	for i := 0; i < 5; i++ {
		slot := q.ConsumerSlot()
		require.NotNil(t, slot)
		assert.Equal(t, i, *slot)
		q.Consume()
	}

	assert.Nil(t, q.ConsumerSlot())
}

func TestSPSCCapacityRoundsUpToPow2(t *testing.T) {
	q := queue.NewSPSC[int](5)
	assert.Equal(t, 8, q.Cap())
}

func TestSPSCPanicsOnTooSmallCapacity(t *testing.T) {
	assert.Panics(t, func() {
		queue.NewSPSC[int](1)
	})
}

// TestSPSCConcurrentRoundTrip exercises one producer goroutine against one
// consumer goroutine across a large number of values, matching the
// zero-copy claim/publish contract under real concurrency.
func TestSPSCConcurrentRoundTrip(t *testing.T) {
	if queue.RaceEnabled {
		t.Skip("lock-free algorithm correctness is not observable under -race")
	}

	const n = 100_000
	q := queue.NewSPSC[int](1024)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < n; i++ {
			for {
				if slot := q.ProducerSlot(); slot != nil {
					*slot = i
					q.Publish()
					break
				}
			}
		}
	}()

	sum := 0
	for i := 0; i < n; i++ {
		for {
			slot := q.ConsumerSlot()
			if slot != nil {
				sum += *slot
				q.Consume()
				break
			}
		}
	}

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("producer goroutine did not finish")
	}

	assert.Equal(t, n*(n-1)/2, sum)
}
