// Package dynlist provides a growable contiguous container backed by a
// single raw allocation and a pluggable allocator.
//
// # Memory Layout
//
// Each list is one allocation: a fixed metadata header (capacity, length and
// the allocator that produced the block) immediately followed by the element
// buffer. The header ends on a 16-byte boundary so any element type can be
// stored after it. The layout is an internal detail of the engine; the public
// surface is the generic List type.
//
// # Growth and Handle Stability
//
// When an operation needs more room than the current capacity, the engine
// doubles capacity until the need is covered and reallocates the whole block.
// Reallocation may move the buffer. A List owns its internal handle and
// re-points it on every growth, so the List value itself is always safe to
// keep using - but element addresses and slices previously obtained from
// Append, Resize or Slice are invalidated by any call that can grow the
// buffer, and by Release.
//
// Growth is all-or-nothing: if the allocator fails, the list's length,
// capacity and contents are untouched and the error is returned.
//
// # Allocators
//
// Lists allocate through the alloc.Allocator capability. When none is given,
// alloc.Default (the Go heap) is used. The caller owns the allocator's
// lifetime and must keep it valid - and reachable - for as long as any list
// created on it exists.
//
// # Element Semantics
//
// Elements are moved by raw byte copy. The list never invokes finalizers or
// touches element internals, and element memory is not scanned by the
// garbage collector: a T containing Go pointers is stored fine, but the list
// alone does not keep the referenced objects alive.
//
// # Thread Safety
//
// A List has exactly one logical owner and no internal locking. Concurrent
// use of the same List requires external synchronization.
package dynlist
