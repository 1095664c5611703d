// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !amd64 && !arm64 && !riscv64 && !loong64

package internal

// CacheLineSize is the default cache line size for every architecture
// without its own file here: mips64, ppc64, s390x, wasm, sparc64, and all
// 32-bit architectures (386, arm, mips, ...). 64 bytes is the most common
// cache line size on modern CPUs.
const CacheLineSize = 64
