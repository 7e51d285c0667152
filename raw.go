package dynlist

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/dynlist/alloc"
)

// The raw engine. It knows nothing about element types beyond a byte stride
// and works on opaque handles: a handle is the address of the first element
// slot, one headerSize past the start of the allocation. Handles are not
// stable - every function that can grow the buffer returns the handle to use
// from then on. List wraps this surface and keeps the pointer arithmetic out
// of the public contract.

// create allocates headerSize + stride*capacity bytes in one block, writes
// the header and returns the handle. A nil allocator selects alloc.Default.
// On failure nothing is left behind.
func create(stride, capacity uintptr, a alloc.Allocator) (unsafe.Pointer, error) {
	if a == nil {
		a = alloc.Default
	}
	buf, err := a.Allocate(int(headerSize + stride*capacity))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocFailed, err)
	}
	hd := (*header)(unsafe.Pointer(unsafe.SliceData(buf)))
	hd.capacity = capacity
	hd.length = 0
	hd.alloc = a
	return unsafe.Add(unsafe.Pointer(hd), headerSize), nil
}

// ensureCapacity grows the buffer, if needed, so extra more elements fit.
// Capacity doubles until the need is covered; a zero capacity jumps straight
// to the need, since doubling zero never advances. On success the (possibly
// relocated) handle is returned; on failure the original handle and its
// contents stay valid and unchanged.
func ensureCapacity(h unsafe.Pointer, extra, stride uintptr) (unsafe.Pointer, error) {
	hd := hdr(h)
	desired := hd.length + extra
	if hd.capacity >= desired {
		return h, nil
	}
	newCap := hd.capacity * 2
	if newCap == 0 {
		newCap = desired
	}
	for newCap < desired {
		newCap *= 2
	}
	buf, err := hd.alloc.Reallocate(int(headerSize+newCap*stride), block(h, stride))
	if err != nil {
		return h, fmt.Errorf("%w: %w", ErrAllocFailed, err)
	}
	hd = (*header)(unsafe.Pointer(unsafe.SliceData(buf)))
	hd.capacity = newCap
	return unsafe.Add(unsafe.Pointer(hd), headerSize), nil
}

// appendRaw copies stride bytes from src into the next free slot and bumps
// the length. It returns the written slot and the updated handle.
func appendRaw(h, src unsafe.Pointer, stride uintptr) (unsafe.Pointer, unsafe.Pointer, error) {
	h, err := ensureCapacity(h, 1, stride)
	if err != nil {
		return nil, h, err
	}
	hd := hdr(h)
	dst := slot(h, hd.length, stride)
	copyBytes(dst, src, stride)
	hd.length++
	return dst, h, nil
}

// resizeRaw extends the list by delta slots and returns the address of the
// first added slot plus the updated handle. The added region is
// uninitialized; the caller populates it.
func resizeRaw(h unsafe.Pointer, delta, stride uintptr) (unsafe.Pointer, unsafe.Pointer, error) {
	h, err := ensureCapacity(h, delta, stride)
	if err != nil {
		return nil, h, err
	}
	hd := hdr(h)
	first := slot(h, hd.length, stride)
	hd.length += delta
	return first, h, nil
}

// removeAtRaw removes element index in O(1) by moving the last live element
// into its slot. Order is not preserved. Never grows, so the handle is
// stable across this call.
func removeAtRaw(h unsafe.Pointer, index, stride uintptr) error {
	hd := hdr(h)
	if hd.length == 0 {
		return ErrEmptyList
	}
	if index >= hd.length {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, index, hd.length)
	}
	hd.length--
	if index < hd.length {
		copyBytes(slot(h, index, stride), slot(h, hd.length, stride), stride)
	}
	return nil
}

// clearRaw forgets all elements. Capacity and buffer contents are untouched.
func clearRaw(h unsafe.Pointer) {
	hdr(h).length = 0
}

// releaseRaw hands the whole allocation, header included, back to the
// allocator stored in the header. The handle dangles afterwards.
func releaseRaw(h unsafe.Pointer, stride uintptr) {
	hdr(h).alloc.Release(block(h, stride))
}

func lengthOf(h unsafe.Pointer) uintptr   { return hdr(h).length }
func capacityOf(h unsafe.Pointer) uintptr { return hdr(h).capacity }
