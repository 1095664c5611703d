// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package objpool

import "unsafe"

// ExportRecord is the data produced by ExportFree or ExportAll on a source
// Pool and consumed by Import on a destination Pool of the same element
// type and block size. It is a plain value so it can be buffered or
// carried across a goroutine boundary (see Handoff) before being imported.
type ExportRecord[T any] struct {
	// FreeSlots holds pointers previously on the source pool's free list
	// (plus, for ExportAll, its bump remainder converted to free slots).
	FreeSlots []*T

	// blocks holds block ownership exported by ExportAll. Empty for a
	// record produced by ExportFree.
	blocks []block
}

// ExportFree removes every slot from src's free list and returns them in
// an ExportRecord. src's block list and bump cursor are unchanged. The
// slot pointers in the returned record still point into blocks owned by
// src: the caller must ensure src outlives every live allocation the
// destination pool later serves from these slots.
func ExportFree[T any](src *Pool[T]) ExportRecord[T] {
	raw := src.free.drain()
	return ExportRecord[T]{FreeSlots: toTypedSlice[T](raw)}
}

// ExportAll removes every slot from src's free list, converts its bump
// remainder into additional free slots, and takes ownership of every block
// src owns, returning all of it in an ExportRecord. src is left in its
// initial state (no blocks, no bump cursor, empty free list).
//
// The caller must ensure src holds no live allocations at the time of the
// call: every slot previously handed out by src must already have been
// deallocated back to src. This is the stricter reading of spec Open
// Question 1.
func ExportAll[T any](src *Pool[T]) ExportRecord[T] {
	src.bump.drainInto(&src.free, src.slotSize)
	src.bump = bumpCursor{}
	raw := src.free.drain()
	blocks := src.ledger.drain()

	return ExportRecord[T]{
		FreeSlots: toTypedSlice[T](raw),
		blocks:    blocks,
	}
}

// Import is always additive on dst: rec's free slots and blocks are
// appended to dst's own. dst's bump cursor is left untouched — in
// particular, Import never begins bump-carving any imported block; a
// block transferred via ExportAll is managed purely through dst's free
// list from then on.
func Import[T any](dst *Pool[T], rec ExportRecord[T]) {
	for _, p := range rec.FreeSlots {
		dst.free.push(unsafe.Pointer(p))
	}
	dst.ledger.absorb(rec.blocks)
}

// TransferFree moves only src's free slots to dst: after the call,
// src.NumSlotsAvailable() == 0 and dst.NumSlotsAvailable() has increased by
// the old src.NumSlotsAvailable(). Block ownership stays with src; see
// ExportFree for the resulting lifetime obligation on the caller.
//
// TransferFree panics if dst and src are the same pool.
func TransferFree[T any](dst, src *Pool[T]) {
	assertDistinct(dst, src)
	Import(dst, ExportFree(src))
}

// TransferAll moves src's free slots, bump remainder, and block ownership
// to dst, reducing src to its initial state. See ExportAll for the
// liveness precondition on src.
//
// TransferAll panics if dst and src are the same pool.
func TransferAll[T any](dst, src *Pool[T]) {
	assertDistinct(dst, src)
	Import(dst, ExportAll(src))
}

func assertDistinct[T any](dst, src *Pool[T]) {
	if dst == src {
		panic(ErrSelfTransfer)
	}
}

func toTypedSlice[T any](raw []unsafe.Pointer) []*T {
	if len(raw) == 0 {
		return nil
	}
	out := make([]*T, len(raw))
	for i, p := range raw {
		out[i] = (*T)(p)
	}
	return out
}
