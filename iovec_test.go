// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package objpool_test

import (
	"testing"
	"unsafe"

	"github.com/canlin-zhang/objpool"
)

func TestIoVecAddrLen(t *testing.T) {
	t.Run("empty slice", func(t *testing.T) {
		addr, n := objpool.IoVecAddrLen(nil)
		if addr != 0 || n != 0 {
			t.Errorf("expected (0, 0), got (%d, %d)", addr, n)
		}
	})

	t.Run("non-empty slice", func(t *testing.T) {
		vec := make([]objpool.IoVec, 4)
		addr, n := objpool.IoVecAddrLen(vec)
		if n != 4 {
			t.Errorf("expected n=4, got %d", n)
		}
		if addr == 0 {
			t.Error("expected non-zero address")
		}
		expectedAddr := uintptr(unsafe.Pointer(&vec[0]))
		if addr != expectedAddr {
			t.Errorf("expected addr=%d, got %d", expectedAddr, addr)
		}
	})
}

func TestIoVecFromSlots(t *testing.T) {
	t.Run("empty slice", func(t *testing.T) {
		vec := objpool.IoVecFromSlots[objpool.PicoBuffer](nil)
		if vec != nil {
			t.Error("expected nil for empty input")
		}
	})

	t.Run("pointer and length correctness", func(t *testing.T) {
		pool := objpool.NewPicoBufferPool(objpool.BufferSizePico * 8)
		slots := make([]*objpool.PicoBuffer, 4)
		for i := range slots {
			obj, err := pool.Allocate()
			if err != nil {
				t.Fatalf("Allocate: %v", err)
			}
			obj[0] = byte(i)
			slots[i] = obj
		}

		vec := objpool.IoVecFromSlots(slots)
		if len(vec) != 4 {
			t.Fatalf("expected len=4, got %d", len(vec))
		}
		for i, v := range vec {
			if v.Len != objpool.BufferSizePico {
				t.Errorf("vec[%d].Len = %d, expected %d", i, v.Len, objpool.BufferSizePico)
			}
			expectedBase := (*byte)(unsafe.Pointer(slots[i]))
			if v.Base != expectedBase {
				t.Errorf("vec[%d].Base mismatch", i)
			}
			if *v.Base != byte(i) {
				t.Errorf("vec[%d] points to value %d, expected %d", i, *v.Base, i)
			}
		}
	})
}

func TestPoolLiveIoVec(t *testing.T) {
	pool := objpool.NewMicroBufferPool(objpool.BufferSizeMicro * 4)

	live := make([]*objpool.MicroBuffer, 2)
	for i := range live {
		obj, err := pool.Allocate()
		if err != nil {
			t.Fatalf("Allocate: %v", err)
		}
		live[i] = obj
	}

	vec := pool.LiveIoVec(live)
	if len(vec) != 2 {
		t.Fatalf("expected len=2, got %d", len(vec))
	}
	for i, v := range vec {
		if v.Len != objpool.BufferSizeMicro {
			t.Errorf("vec[%d].Len = %d, expected %d", i, v.Len, objpool.BufferSizeMicro)
		}
	}
}
