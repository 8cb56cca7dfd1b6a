// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build riscv64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || s390x || wasm

package cacheline

// Size is the L1 cache line size for other 64-bit architectures.
// 64 bytes is the most common cache line size on modern CPUs.
const Size = 64
