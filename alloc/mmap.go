//go:build linux || darwin || freebsd

package alloc

import (
	"golang.org/x/sys/unix"
)

// Mmap allocates blocks as anonymous private mappings. Blocks live outside
// the Go heap, so very large lists neither inflate GC scan work nor fight
// the heap for address space. On Linux, growth remaps pages instead of
// copying them (see mmap_linux.go).
//
// Mapped blocks are page-aligned, which satisfies mem.BlockAlign.
type Mmap struct{}

// NewMmap returns the mapping allocator.
func NewMmap() *Mmap { return &Mmap{} }

// Allocate implements Allocator.
func (*Mmap) Allocate(size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrSize
	}
	if size == 0 {
		// mmap rejects zero-length mappings; keep zero-size requests
		// consistently successful.
		return []byte{}, nil
	}
	buf, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Release implements Allocator.
func (*Mmap) Release(buf []byte) {
	if len(buf) == 0 {
		return
	}
	_ = unix.Munmap(buf)
}

var _ Allocator = (*Mmap)(nil)
