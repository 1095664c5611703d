// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package objpool

import (
	"fmt"
	"unsafe"
)

// Pool is a fixed-size, single-writer object pool for one element type T.
//
// A Pool obtains memory from the system allocator in fixed-size blocks and
// carves each block into slots sized and aligned for T. Allocate and
// Deallocate are O(1); Allocate touches the system allocator only when both
// internal supply tiers (free list, bump cursor) are exhausted.
//
// A Pool must not be copied after first use; see noCopy. It is not safe for
// concurrent use by multiple goroutines — see Handoff for cooperative
// cross-goroutine handoff built on top of the transfer protocol.
type Pool[T any] struct {
	_ noCopy

	blockSize     int
	slotSize      uintptr
	slotsPerBlock int

	ledger blockLedger
	bump   bumpCursor
	free   freeList
}

// New creates an empty Pool for element type T, with blocks acquired in
// chunks of blockSize bytes. blockSize must be large enough to hold at
// least one T; New panics otherwise, the nearest runtime equivalent of the
// compile-time "S >= 1" requirement a templated allocator would enforce.
func New[T any](blockSize int) *Pool[T] {
	var zero T
	slotSize := unsafe.Sizeof(zero)
	if slotSize == 0 {
		slotSize = 1
	}
	slotsPerBlock := blockSize / int(slotSize)
	if slotsPerBlock < 1 {
		panic("objpool: blockSize too small to hold one element of T")
	}
	return &Pool[T]{
		blockSize:     blockSize,
		slotSize:      slotSize,
		slotsPerBlock: slotsPerBlock,
	}
}

// Allocate returns a pointer to an uninitialized, properly aligned slot for
// one T. It never returns nil on success. The only failure mode is
// ErrAllocationFailure, raised when the system allocator cannot satisfy a
// new block acquisition; on failure no pool state is mutated.
//
// Selection order: free list, then bump tier, then a freshly acquired
// block. The free list is checked first so that a just-deallocated slot is
// the next one reused.
func (p *Pool[T]) Allocate() (*T, error) {
	if ptr, ok := p.free.pop(); ok {
		return (*T)(ptr), nil
	}
	if ptr, ok := p.bump.allocateOne(p.slotSize); ok {
		return (*T)(ptr), nil
	}

	base, err := p.ledger.acquireBlock(p.blockSize, p.slotAlign())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocationFailure, err)
	}
	p.bump.init(base, p.slotsPerBlock, p.slotSize)

	ptr, ok := p.bump.allocateOne(p.slotSize)
	if !ok {
		// slotsPerBlock is always >= 1, so this is unreachable.
		panic("objpool: freshly initialized bump cursor reports no slots")
	}
	return (*T)(ptr), nil
}

// Deallocate returns a slot previously obtained from Allocate (on this pool
// or imported via the transfer protocol) to the free-list tier.
// Deallocate(nil) is a no-op. Passing a pointer not obtained from this pool
// or an already-freed pointer is a contract violation and is not detected.
func (p *Pool[T]) Deallocate(obj *T) {
	if obj == nil {
		return
	}
	p.free.push(unsafe.Pointer(obj))
}

// AllocatedBytes returns the total size in bytes of every block this pool
// currently owns.
func (p *Pool[T]) AllocatedBytes() int {
	return p.ledger.bytes(p.blockSize)
}

// NumSlotsAvailable returns the number of slots currently sitting on the
// free-list tier.
func (p *Pool[T]) NumSlotsAvailable() int {
	return p.free.size()
}

// NumBumpAvailable returns the number of uncarved slots remaining in the
// current block, or 0 if the pool owns no blocks.
func (p *Pool[T]) NumBumpAvailable() int {
	return p.bump.remaining(p.slotSize)
}

// Close releases every block this pool owns back to the system allocator
// (in Go, drops the pool's last references to their backing arrays) and
// resets the pool to its initial state. It returns the number of slots
// that were still live (neither on the free list nor uncarved) at the time
// of the call, as a diagnostic only: Close does not invoke any destructor
// and does not panic on a nonzero count. See spec Open Question 3.
func (p *Pool[T]) Close() (leaked int) {
	total := p.ledger.size() * p.slotsPerBlock
	live := total - p.free.size() - p.bump.remaining(p.slotSize)

	p.ledger.drain()
	p.bump = bumpCursor{}
	p.free.drain()

	return live
}

// String renders the (allocated_bytes, num_slots_available,
// num_bump_available) triple used throughout this package's invariant and
// diagnostic checks.
func (p *Pool[T]) String() string {
	var zero T
	return fmt.Sprintf("Pool[%T]{allocated_bytes=%d, num_slots_available=%d, num_bump_available=%d}",
		zero, p.AllocatedBytes(), p.NumSlotsAvailable(), p.NumBumpAvailable())
}

// slotAlign returns the alignment requirement of T, used to align freshly
// acquired blocks.
func (p *Pool[T]) slotAlign() uintptr {
	var zero T
	return unsafe.Alignof(zero)
}
