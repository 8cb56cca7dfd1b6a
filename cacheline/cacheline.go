// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cacheline

import "unsafe"

// maxValueSize is the largest T this package can isolate. The reserved
// region is 2*Size regardless of T, which leaves a full Size bytes for the
// value no matter how badly misaligned the region's own start address is;
// a value larger than that could be pushed across a line boundary by the
// alignment shift.
const maxValueSize = Size

// Aligned reserves a fixed 2*Size byte region and places Value at the first
// Size-aligned address inside it. The region's size never depends on T, so
// sizeof(Aligned[T]) is always an exact multiple of Size: two adjacent
// Aligned[T] fields, or adjacent elements of an []Aligned[T], never share a
// line. Because the offset is computed from the region's own runtime
// address rather than assumed from the allocator, Get's returned pointer is
// always aligned to a genuine Size-byte boundary (`addr mod Size == 0`), not
// merely isolated relative to its neighbors.
//
// The zero value is ready to use. There is no direct field access:
// construct with NewAligned, or write through a zero value's Get.
type Aligned[T any] struct {
	buf [2 * Size]byte
}

// NewAligned constructs an Aligned[T] around v. It panics if sizeof(T)
// exceeds maxValueSize, since alignment could no longer be guaranteed.
func NewAligned[T any](v T) *Aligned[T] {
	if unsafe.Sizeof(v) > maxValueSize {
		panic("cacheline: value too large to isolate")
	}
	a := new(Aligned[T])
	*a.Get() = v
	return a
}

// Get returns a pointer to the wrapped value, aligned to a Size-byte
// boundary.
func (a *Aligned[T]) Get() *T {
	p := unsafe.Pointer(&a.buf[0])
	base := uintptr(p)
	misalign := base & (Size - 1)
	var offset uintptr
	if misalign != 0 {
		offset = Size - misalign
	}
	return (*T)(unsafe.Add(p, offset))
}
