// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package objpool

import "errors"

// ErrAllocationFailure is returned by Allocate (and anything built on it)
// when the underlying system allocator could not satisfy a block
// acquisition. Pool state is unchanged when this error is returned.
var ErrAllocationFailure = errors.New("objpool: block acquisition failed")

// ErrConstructionFailure is returned by NewObject and MakeUnique when the
// caller-supplied constructor fails. The slot that was allocated for the
// failed construction is returned to the free list before this error
// propagates.
var ErrConstructionFailure = errors.New("objpool: object construction failed")

// ErrSelfTransfer is the panic value used when TransferFree or TransferAll
// is called with identical source and destination pools. It is exported so
// that callers wrapping these calls in recover() can identify the cause.
var ErrSelfTransfer = errors.New("objpool: transfer source and destination are the same pool")
