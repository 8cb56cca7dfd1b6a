// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tsc_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanotrade/tradecore/tsc"
)

func TestNowIsMonotonicNonDecreasing(t *testing.T) {
	src := tsc.NewSource(time.Millisecond)
	defer src.Close()

	prev := src.Now()
	deadline := time.Now().Add(20 * time.Millisecond)
	for time.Now().Before(deadline) {
		cur := src.Now()
		require.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestNowAdvancesOverTime(t *testing.T) {
	src := tsc.NewSource(time.Millisecond)
	defer src.Close()

	first := src.Now()
	time.Sleep(10 * time.Millisecond)
	second := src.Now()
	assert.Greater(t, second, first)
}

func TestPackageLevelNowIsUsable(t *testing.T) {
	a := tsc.Now()
	time.Sleep(time.Millisecond)
	b := tsc.Now()
	assert.GreaterOrEqual(t, b, a)
}

func TestNewSourceDefaultsNonPositiveResolution(t *testing.T) {
	src := tsc.NewSource(0)
	defer src.Close()
	assert.NotPanics(t, func() {
		_ = src.Now()
	})
}
