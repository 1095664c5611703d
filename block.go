// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package objpool

import (
	"fmt"
	"unsafe"
)

// block is one contiguous region acquired from the system allocator,
// aligned to at least the alignment of the pool's element type.
type block struct {
	mem []byte
}

func (b block) base() unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(b.mem))
}

// blockLedger owns the ordered sequence of blocks a Pool holds. A block the
// pool acquires itself is appended as the current block the bump tier
// carves; blocks absorbed later through Import are appended after it and
// are never bump-carved, so the current block is the last one the pool
// acquired, not necessarily the last element. Every block other than the
// current one is fully carved. Ledger operations never run a destructor — Go's
// garbage collector reclaims a block's backing array once the ledger drops
// its last reference, which is what "return to the system allocator" means
// in this module.
type blockLedger struct {
	blocks []block
}

// acquireBlock allocates size bytes aligned to at least align, appends it
// as the new current block, and returns its base address.
//
// Blocks whose alignment requirement fits within a memory page are
// acquired via AlignedMem (page alignment is always sufficient for any
// smaller or equal alignment). The align > PageSize branch below is dead
// for every real Go type — PageSize is always a multiple of any realistic
// alignof(T) — and is not a correct fallback if it were ever reached:
// CacheLineAlignedMem's cache-line alignment (64/128 bytes) is weaker
// than page alignment, not stronger, so it cannot satisfy an alignment
// requirement stricter than a page. It stays only as an unreachable guard
// against a T this package's type parameters don't currently permit.
//
// Go's allocator reports exhaustion by panicking rather than by returning
// an error; acquireBlock recovers that panic and reports it through the
// normal error return so Allocate can surface ErrAllocationFailure without
// mutating pool state, per the core contract.
func (l *blockLedger) acquireBlock(size int, align uintptr) (p unsafe.Pointer, err error) {
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, fmt.Errorf("system allocator: %v", r)
		}
	}()

	var mem []byte
	if align <= PageSize {
		mem = AlignedMem(size, PageSize)
	} else {
		mem = CacheLineAlignedMem(size)
	}

	b := block{mem: mem}
	l.blocks = append(l.blocks, b)
	return b.base(), nil
}

// size returns the number of blocks currently owned.
func (l *blockLedger) size() int {
	return len(l.blocks)
}

// bytes returns size() * blockSize, the total bytes owned.
func (l *blockLedger) bytes(blockSize int) int {
	return len(l.blocks) * blockSize
}

// drain removes and returns every block, leaving the ledger empty.
func (l *blockLedger) drain() []block {
	out := l.blocks
	l.blocks = nil
	return out
}

// absorb appends every block of vec, making this ledger the new owner.
func (l *blockLedger) absorb(vec []block) {
	l.blocks = append(l.blocks, vec...)
}

