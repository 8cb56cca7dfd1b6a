// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build arm64

package cacheline

// Size is the L1 cache line size for ARM64 architectures.
// Apple Silicon (M1/M2/M3) has a 128-byte L2 prefetch granule; 128 bytes is
// used here as a conservative value so false-sharing guarantees also hold on
// that hardware even though most Cortex-A L1 lines are 64 bytes.
const Size = 128
