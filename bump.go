// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package objpool

import "unsafe"

// bumpCursor carves slots from the current block in address order. It is
// the linear-allocation half of a Pool's two-tier slot supply; the other
// half is freeList.
//
// A zero bumpCursor has next == end == nil, meaning "no current block" —
// the state of a freshly constructed Pool before its first Allocate.
type bumpCursor struct {
	next unsafe.Pointer
	end  unsafe.Pointer
}

// init points the cursor at the start of a freshly acquired block holding
// count slots of slotSize bytes each.
func (b *bumpCursor) init(start unsafe.Pointer, count int, slotSize uintptr) {
	b.next = start
	b.end = unsafe.Add(start, uintptr(count)*slotSize)
}

// allocateOne returns the next uncarved slot and advances the cursor by one
// slot, or (nil, false) if the current block is fully carved.
func (b *bumpCursor) allocateOne(slotSize uintptr) (unsafe.Pointer, bool) {
	if b.next == b.end {
		return nil, false
	}
	p := b.next
	b.next = unsafe.Add(b.next, slotSize)
	return p, true
}

// remaining returns the number of uncarved slots left in the current block,
// or 0 for a zero-value cursor.
func (b *bumpCursor) remaining(slotSize uintptr) int {
	if b.next == nil {
		return 0
	}
	return int((uintptr(b.end) - uintptr(b.next)) / slotSize)
}

// drainInto moves every uncarved slot address into sink, one freeList push
// per slot, then marks the cursor fully carved. Used by TransferAll to
// convert a source pool's bump remainder into free slots the destination
// pool can hand out without itself bump-carving the transferred block.
func (b *bumpCursor) drainInto(sink *freeList, slotSize uintptr) {
	for p := b.next; p != b.end; p = unsafe.Add(p, slotSize) {
		sink.push(p)
	}
	b.next = b.end
}
