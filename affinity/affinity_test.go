// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package affinity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nanotrade/tradecore/affinity"
)

// TestPinNeverPanics asserts pin failures surface as an error rather than a
// panic or process abort, regardless of platform or privilege level.
func TestPinNeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = affinity.Pin(0)
	})
}

func TestPinRejectsNegativeCoreID(t *testing.T) {
	err := affinity.Pin(-1)
	assert.Error(t, err)
}

func TestSetRealtimeRejectsOutOfRangePriority(t *testing.T) {
	assert.Error(t, affinity.SetRealtime(0))
	assert.Error(t, affinity.SetRealtime(100))
}

func TestSetRealtimeNeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = affinity.SetRealtime(50)
	})
}

func TestSetNameNeverPanics(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = affinity.SetName("worker-0")
	})
}
