package alloc

import (
	"github.com/joshuapare/dynlist/internal/mem"
)

// Allocator is the three-operation capability a list allocates through.
// See the package documentation for the full contract.
type Allocator interface {
	// Allocate returns a new block of exactly size bytes, base-aligned to
	// mem.BlockAlign. A zero size yields an empty, releasable block.
	Allocate(size int) ([]byte, error)

	// Reallocate resizes buf to size bytes, preserving the common prefix.
	// The returned block may be buf itself or a replacement at a different
	// address; callers must use the returned block and forget buf.
	// On error buf is untouched and remains valid.
	Reallocate(size int, buf []byte) ([]byte, error)

	// Release returns buf to the allocator. buf must be a block previously
	// obtained from Allocate or Reallocate on this same allocator, and must
	// not be used afterwards.
	Release(buf []byte)
}

// Default is the process-wide allocator used when a list is created without
// an explicit one. It is stateless and shared by all its users.
var Default Allocator = NewHeap()

// alignedMake returns a size-byte slice from the Go heap whose base address
// is aligned to mem.BlockAlign, by over-allocating and shifting the base.
func alignedMake(size int) []byte {
	buf := make([]byte, size+mem.BlockAlign)
	shift := mem.AlignedOffset(buf)
	return buf[shift : size+shift : size+shift]
}
