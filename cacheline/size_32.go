// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build 386 || arm || mips || mipsle || riscv

package cacheline

// Size is the typical L1 cache line size for 32-bit architectures.
const Size = 32
