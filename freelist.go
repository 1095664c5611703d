// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package objpool

import "unsafe"

// freeList is a LIFO stack of slot pointers previously handed out and
// returned via Deallocate. Allocate consults it before the bump tier,
// preserving last-in-first-out reuse for cache locality. freeList performs
// no sorting and no deduplication; correctness depends on the caller never
// pushing a pointer that is already present.
type freeList struct {
	slots []unsafe.Pointer
}

// push appends p to the stack.
func (f *freeList) push(p unsafe.Pointer) {
	f.slots = append(f.slots, p)
}

// pop removes and returns the most recently pushed pointer, or (nil, false)
// if the stack is empty.
func (f *freeList) pop() (unsafe.Pointer, bool) {
	n := len(f.slots)
	if n == 0 {
		return nil, false
	}
	p := f.slots[n-1]
	f.slots[n-1] = nil
	f.slots = f.slots[:n-1]
	return p, true
}

// size returns the number of pointers currently on the stack.
func (f *freeList) size() int {
	return len(f.slots)
}

// drain removes and returns every entry, leaving the stack empty.
func (f *freeList) drain() []unsafe.Pointer {
	out := f.slots
	f.slots = nil
	return out
}

// absorb appends every entry of vec onto the stack.
func (f *freeList) absorb(vec []unsafe.Pointer) {
	f.slots = append(f.slots, vec...)
}
