//go:build darwin || freebsd

package alloc

import (
	"golang.org/x/sys/unix"
)

// Reallocate implements Allocator. Darwin and FreeBSD have no mremap, so
// growth maps a fresh region, copies the common prefix and unmaps the old
// one. The old mapping is only torn down after the new one exists, keeping
// buf intact on failure.
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
	newBuf, err := m.Allocate(size)
	if err != nil {
		return nil, err
	}
	copy(newBuf, buf)
	_ = unix.Munmap(buf)
	return newBuf, nil
}
