//go:build linux

package alloc

import (
	"golang.org/x/sys/unix"
)

// Reallocate implements Allocator. mremap moves the pages to a larger
// mapping when it cannot extend in place, so no byte copying happens in
// either case.
func (m *Mmap) Reallocate(size int, buf []byte) ([]byte, error) {
	if size < 0 {
		return nil, ErrSize
	}
	if len(buf) == 0 {
		return m.Allocate(size)
	}
	if size == len(buf) {
		return buf, nil
	}
	newBuf, err := unix.Mremap(buf, size, unix.MREMAP_MAYMOVE)
	if err != nil {
		return nil, err
	}
	return newBuf, nil
}
