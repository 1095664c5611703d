// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package objpool_test

import (
	"errors"
	"sync"
	"testing"

	"code.hybscloud.com/iox"

	"github.com/canlin-zhang/objpool"
)

func TestHandoff_TryAcceptEmptyReturnsWouldBlock(t *testing.T) {
	var h objpool.Handoff[int32]
	_, err := h.TryAccept()
	if !errors.Is(err, iox.ErrWouldBlock) {
		t.Fatalf("expected iox.ErrWouldBlock, got %v", err)
	}
}

func TestHandoff_PublishThenTryAccept(t *testing.T) {
	p := objpool.New[int32](64)
	obj, err := p.Allocate()
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	p.Deallocate(obj)

	var h objpool.Handoff[int32]
	rec := objpool.ExportFree(p)
	h.Publish(rec)

	got, err := h.TryAccept()
	if err != nil {
		t.Fatalf("TryAccept: %v", err)
	}
	if len(got.FreeSlots) != 1 {
		t.Errorf("FreeSlots len = %d, want 1", len(got.FreeSlots))
	}

	// second call drains the mailbox
	if _, err := h.TryAccept(); !errors.Is(err, iox.ErrWouldBlock) {
		t.Errorf("expected ErrWouldBlock on drained mailbox, got %v", err)
	}
}

func TestHandoff_AcceptBlocksUntilPublish(t *testing.T) {
	src := objpool.New[int32](64)
	obj, err := src.Allocate()
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	src.Deallocate(obj)
	rec := objpool.ExportFree(src)

	var h objpool.Handoff[int32]
	var wg sync.WaitGroup
	wg.Add(1)

	var received objpool.ExportRecord[int32]
	go func() {
		defer wg.Done()
		received = h.Accept()
	}()

	h.Publish(rec)
	wg.Wait()

	if len(received.FreeSlots) != 1 {
		t.Errorf("received.FreeSlots len = %d, want 1", len(received.FreeSlots))
	}
}

func TestHandoff_ImportAfterAccept(t *testing.T) {
	src := objpool.New[int32](64)
	dst := objpool.New[int32](64)

	obj, err := src.Allocate()
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	src.Deallocate(obj)

	var h objpool.Handoff[int32]
	h.Publish(objpool.ExportFree(src))

	rec, err := h.TryAccept()
	if err != nil {
		t.Fatalf("TryAccept: %v", err)
	}
	objpool.Import(dst, rec)

	if got := dst.NumSlotsAvailable(); got != 1 {
		t.Errorf("dst.NumSlotsAvailable() = %d, want 1", got)
	}
}
