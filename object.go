// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package objpool

import "fmt"

// NewObject allocates a slot from p and runs ctor in place on it. If ctor
// returns an error, the slot is returned to p's free list before the
// error is re-raised wrapped in ErrConstructionFailure — the same
// free-list tier Deallocate would use.
func NewObject[T any](p *Pool[T], ctor func(*T) error) (*T, error) {
	obj, err := p.Allocate()
	if err != nil {
		return nil, err
	}
	if err := ctor(obj); err != nil {
		p.Deallocate(obj)
		return nil, fmt.Errorf("%w: %v", ErrConstructionFailure, err)
	}
	return obj, nil
}

// DeleteObject runs dtor on obj (if non-nil) and returns the slot to p's
// free list. dtor may be nil for trivially destructible T.
func DeleteObject[T any](p *Pool[T], obj *T, dtor func(*T)) {
	if obj == nil {
		return
	}
	if dtor != nil {
		dtor(obj)
	}
	p.Deallocate(obj)
}

// Handle is a scoped owning handle over a pool-allocated object, the
// nearest idiomatic Go analogue of a unique_ptr with a deleter bound to
// the pool it came from. Close is idempotent: calling it more than once
// after the first call is a no-op.
type Handle[T any] struct {
	pool *Pool[T]
	obj  *T
	dtor func(*T)
}

// MakeUnique allocates and constructs a T on p via ctor, wrapped in a
// Handle whose Close invokes dtor (which may be nil) and returns the slot
// to p.
func MakeUnique[T any](p *Pool[T], ctor func(*T) error, dtor func(*T)) (*Handle[T], error) {
	obj, err := NewObject(p, ctor)
	if err != nil {
		return nil, err
	}
	return &Handle[T]{pool: p, obj: obj, dtor: dtor}, nil
}

// Get returns the underlying object pointer. It is valid until Close.
func (h *Handle[T]) Get() *T {
	return h.obj
}

// Close destructs and deallocates the handle's object. Calling Close more
// than once is a no-op.
func (h *Handle[T]) Close() {
	if h.obj == nil {
		return
	}
	DeleteObject(h.pool, h.obj, h.dtor)
	h.obj = nil
}
