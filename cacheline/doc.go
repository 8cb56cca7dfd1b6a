// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cacheline provides false-sharing-free placement for shared
// mutable state.
//
// [Size] is the target architecture's L1 cache line size. [Aligned] wraps a
// value so it never shares a cache line with a neighboring field in the same
// struct or a neighboring element in the same array/slice.
//
// # Usage
//
//	type counters struct {
//	    produced cacheline.Aligned[atomix.Uint64]
//	    consumed cacheline.Aligned[atomix.Uint64]
//	}
//
// produced and consumed never alias the same cache line, so a producer
// hammering produced never invalidates a consumer's cached copy of consumed.
package cacheline
