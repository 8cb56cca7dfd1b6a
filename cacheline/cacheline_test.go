// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cacheline_test

import (
	"testing"
	"unsafe"

	"github.com/nanotrade/tradecore/cacheline"
)

func TestAlignedSizeIsMultipleOfLine(t *testing.T) {
	var a cacheline.Aligned[uint64]
	if unsafe.Sizeof(a)%cacheline.Size != 0 {
		t.Fatalf("sizeof(Aligned[uint64]) = %d, not a multiple of %d", unsafe.Sizeof(a), cacheline.Size)
	}
}

func TestAdjacentElementsDoNotShareALine(t *testing.T) {
	arr := make([]cacheline.Aligned[uint64], 4)
	base := uintptr(unsafe.Pointer(&arr[0]))
	for i := range arr {
		addr := uintptr(unsafe.Pointer(&arr[i]))
		if (addr-base)%cacheline.Size != 0 {
			t.Fatalf("element %d at offset %d is not line-aligned relative to base", i, addr-base)
		}
	}
}

func TestNewAlignedForwardsValue(t *testing.T) {
	a := cacheline.NewAligned(42)
	if got := *a.Get(); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestNewAlignedPanicsOnOversizedValue(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for oversized value")
		}
	}()
	type big [cacheline.Size*2 + 1]byte
	cacheline.NewAligned(big{})
}
