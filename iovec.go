// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package objpool

import (
	"unsafe"
)

// IoVec represents a scatter/gather I/O descriptor compatible with the
// standard Linux struct iovec. It is used to pass multiple non-contiguous
// user-space buffers to the kernel in a single vectored I/O system call
// (readv, writev, preadv, pwritev, io_uring operations).
//
// Memory layout matches the C struct iovec exactly:
//
//	struct iovec {
//	    void  *iov_base;  // Starting address
//	    size_t iov_len;   // Number of bytes
//	};
//
// The caller must ensure Base points to valid memory for the lifetime of
// any I/O operation using this IoVec.
type IoVec struct {
	Base *byte  // Starting address of the memory block
	Len  uint64 // Number of bytes to transfer
}

// IoVecAddrLen extracts the raw pointer and length from an IoVec slice
// for direct syscall consumption (readv, writev, io_uring submission).
//
// Returns (0, 0) for empty or nil slices.
func IoVecAddrLen(vec []IoVec) (addr uintptr, n int) {
	if len(vec) == 0 {
		return 0, 0
	}
	addr, n = uintptr(unsafe.Pointer(unsafe.SliceData(vec))), len(vec)
	return
}

// IoVecFromSlots converts a slice of pool-allocated slots into an IoVec
// descriptor for each one, in place of one near-identical function per
// buffer tier, constrained to BufferType. Each IoVec's Base points
// directly at the slot's memory; no copy is made, so the slots must stay
// live (not yet Deallocated) for as long as the returned IoVecs are used
// in I/O.
func IoVecFromSlots[T BufferType](slots []*T) []IoVec {
	return ioVecFromSlots(slots)
}

// LiveIoVec builds IoVecs directly over slots this pool handed out. It
// generalizes IoVecFromSlots to any element type, not just the twelve
// buffer tiers.
func (p *Pool[T]) LiveIoVec(live []*T) []IoVec {
	return ioVecFromSlots(live)
}

func ioVecFromSlots[T any](slots []*T) []IoVec {
	if len(slots) == 0 {
		return nil
	}
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	vec := make([]IoVec, len(slots))
	for i, s := range slots {
		vec[i] = IoVec{Base: (*byte)(unsafe.Pointer(s)), Len: size}
	}
	return vec
}
