// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package objpool

// PageSize defines the standard memory page size (4 KiB) used for alignment.
var PageSize uintptr = 4096

// SetPageSize updates the package-level page size used for block acquisition.
func SetPageSize(size int) {
	PageSize = uintptr(size)
}

// noCopy is a sentinel used to prevent copying of a Pool by value.
// Copying a live Pool would invalidate every outstanding slot pointer,
// so Pool embeds noCopy to make `go vet -copylocks` flag accidental copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
