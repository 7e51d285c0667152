package dynlist

import (
	"unsafe"

	"github.com/joshuapare/dynlist/alloc"
	"github.com/joshuapare/dynlist/internal/mem"
)

// header is the metadata block that immediately precedes the element buffer
// inside a list's single allocation. A handle points at the first element
// slot; the header is recovered by stepping back headerSize bytes.
type header struct {
	capacity uintptr // element slots the buffer holds without reallocating
	length   uintptr // element slots logically present; length <= capacity

	// alloc is the allocator that produced this block, shared, not owned.
	// The block is no-scan memory, so this reference is invisible to the
	// garbage collector; callers must keep the allocator reachable for the
	// list's whole lifetime.
	alloc alloc.Allocator
}

// headerSize is sizeof(header) rounded up to mem.BlockAlign so the first
// element slot satisfies the strictest alignment any Go type requires.
const headerSize = (unsafe.Sizeof(header{}) + mem.BlockAlign - 1) &^ (mem.BlockAlign - 1)

// hdr recovers the header behind a handle.
func hdr(h unsafe.Pointer) *header {
	return (*header)(unsafe.Add(h, -int(headerSize)))
}

// slot returns the address of element i.
func slot(h unsafe.Pointer, i, stride uintptr) unsafe.Pointer {
	return unsafe.Add(h, i*stride)
}

// block rebuilds the full allocation, header included, as the byte slice the
// allocator originally handed out. Allocate and Reallocate return blocks with
// len == cap, so the rebuilt slice is identical to the original.
func block(h unsafe.Pointer, stride uintptr) []byte {
	hd := hdr(h)
	return unsafe.Slice((*byte)(unsafe.Pointer(hd)), headerSize+hd.capacity*stride)
}

// copyBytes moves n bytes between non-overlapping element slots.
func copyBytes(dst, src unsafe.Pointer, n uintptr) {
	copy(unsafe.Slice((*byte)(dst), n), unsafe.Slice((*byte)(src), n))
}
