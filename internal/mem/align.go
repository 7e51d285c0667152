package mem

import "unsafe"

// Alignment utilities shared by the storage engine and the allocators.

// BlockAlign is the base alignment guaranteed for allocator-returned blocks
// and for the first element slot after a list header. 16 bytes covers the
// strictest alignment any Go type requires.
const BlockAlign = 16

// AlignUp returns n aligned up to the next multiple of align.
// align must be a power of two.
//
// Example:
//
//	AlignUp(1, 16)  = 16
//	AlignUp(16, 16) = 16
//	AlignUp(17, 16) = 32
func AlignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// AlignedOffset returns the smallest offset into buf at which a BlockAlign
// boundary falls. buf must be at least BlockAlign bytes longer than the
// region the caller intends to carve at that offset.
func AlignedOffset(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	next := (addr + BlockAlign - 1) &^ uintptr(BlockAlign-1)
	return int(next - addr)
}
