// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package objpool provides a fixed-size, single-writer object pool
// allocator and a cooperative protocol for transferring slots and block
// ownership between two pools of the same element type and block size.
//
// # Two-Tier Slot Supply
//
// Each Pool[T] hands out storage for one T at a time from two internal
// tiers:
//
//   - a bump tier that carves the current block from low to high
//   - a free-list tier (LIFO) that receives slots returned via Deallocate
//
// Allocate always prefers the free list over the bump tier, so a freshly
// deallocated slot is the next one reused. When both tiers are exhausted,
// the pool acquires a new block from the system allocator, sized and
// aligned for T, and resumes bump-carving it.
//
//	pool := objpool.New[MyStruct](64 * 1024)
//	p, err := pool.Allocate()
//	...
//	pool.Deallocate(p)
//
// # Transfer Protocol
//
// TransferFree moves only free slots between two pools of the same (T,
// block size); block ownership stays with the source. TransferAll moves
// both free slots and block ownership, reducing the source to its initial
// state. Both are implemented as an export/import pair (ExportRecord) so
// the record can be buffered or carried across a goroutine boundary.
//
//	objpool.TransferFree(dst, src)
//	objpool.TransferAll(dst, src)
//
// See the package-level Handoff type for a cooperative, backoff-based way
// to carry an ExportRecord from one goroutine to another.
//
// # Thread Safety
//
// A Pool[T] is single-writer: no method suspends, blocks, or takes a lock.
// Concurrent use of two different Pool[T] instances from two different
// goroutines is safe only if no slot pointer crosses between them except
// through the transfer protocol, and only one goroutine mutates a given
// pool at a time. Handoff provides one way to enforce that discipline.
//
// # Buffer Tiers
//
// objpool ships a twelve-tier fixed-size buffer hierarchy (PicoBuffer
// through TitanBuffer) as ready-made element types for Pool[T], along with
// per-tier constructors such as NewSmallBufferPool. Any type is usable as
// T; the tiers exist purely for convenience.
//
// # Dependencies
//
// objpool depends on:
//   - iox: semantic error types (ErrWouldBlock) and adaptive backoff, used
//     only by Handoff, never by the single-writer core.
//   - spin: spin-wait primitives, used only by Handoff.
package objpool
