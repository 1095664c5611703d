// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package objpool

import (
	"sync/atomic"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// Handoff carries a single ExportRecord[T] from one goroutine to another,
// on top of the transfer protocol's export/import pair (ExportFree,
// ExportAll, Import). It is the one place in this package where iox and
// spin are used: the core Pool rules out any synchronization, so these
// two dependencies are redirected from waiting for a network buffer to
// free up to waiting for a pool ownership transfer to be published — the
// same adaptive-backoff shape, a different external event.
//
// A Handoff is a single-slot mailbox. Publish overwrites whatever record,
// if any, is currently pending; callers that need queueing should use
// multiple Handoffs or their own channel of ExportRecord values.
type Handoff[T any] struct {
	slot atomic.Pointer[ExportRecord[T]]
}

// Publish makes rec available to the next Accept or TryAccept call.
func (h *Handoff[T]) Publish(rec ExportRecord[T]) {
	h.slot.Store(&rec)
}

// TryAccept takes the pending record without blocking. It returns
// iox.ErrWouldBlock if no record has been published since the last
// successful Accept/TryAccept.
func (h *Handoff[T]) TryAccept() (ExportRecord[T], error) {
	var sw spin.Wait
	for {
		p := h.slot.Load()
		if p == nil {
			return ExportRecord[T]{}, iox.ErrWouldBlock
		}
		if h.slot.CompareAndSwap(p, nil) {
			return *p, nil
		}
		sw.Once()
	}
}

// Accept blocks until a record is published, using adaptive backoff
// between polls. This acknowledges that a pool handoff, like buffer
// release in a network I/O pool, is driven by another goroutine's
// schedule rather than anything a spin loop alone should wait on.
func (h *Handoff[T]) Accept() ExportRecord[T] {
	var bo iox.Backoff
	for {
		rec, err := h.TryAccept()
		if err == nil {
			return rec
		}
		bo.Wait()
	}
}
