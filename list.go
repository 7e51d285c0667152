package dynlist

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/dynlist/alloc"
)

// DefaultCapacity is the element capacity a new list starts with when
// WithCapacity is not given.
const DefaultCapacity = 16

// Option configures New.
type Option func(*options)

type options struct {
	capacity  int
	allocator alloc.Allocator
}

// WithCapacity sets the initial element capacity. Zero is allowed; the first
// growth then jumps straight to whatever is needed.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithAllocator selects the allocator backing the list. The caller owns the
// allocator and must keep it valid, and reachable, for the list's entire
// lifetime.
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) { o.allocator = a }
}

// List is a growable contiguous sequence of T in a single raw allocation.
// The zero value is not usable; call New.
//
// A List owns its handle into the allocation. Operations that can grow the
// buffer (Append, Resize, Reserve) may relocate it and re-point the List in
// place, which invalidates every element address or slice handed out
// earlier. See the package documentation for the full stability contract.
//
// Not safe for concurrent use.
type List[T any] struct {
	// ptr addresses the first element slot, one headerSize past the start
	// of the allocation. nil after Release.
	ptr unsafe.Pointer

	// ak mirrors the header's allocator reference. The header lives in
	// no-scan memory, so this copy is what keeps the allocator visible to
	// the garbage collector.
	ak alloc.Allocator
}

// New creates an empty list of T with DefaultCapacity slots, on alloc.Default
// unless WithAllocator says otherwise.
func New[T any](opts ...Option) (*List[T], error) {
	opt := options{capacity: DefaultCapacity}
	for _, o := range opts {
		o(&opt)
	}
	if opt.capacity < 0 {
		return nil, fmt.Errorf("%w: capacity %d", ErrNegativeCount, opt.capacity)
	}
	a := opt.allocator
	if a == nil {
		a = alloc.Default
	}
	var zero T
	h, err := create(unsafe.Sizeof(zero), uintptr(opt.capacity), a)
	if err != nil {
		return nil, err
	}
	return &List[T]{ptr: h, ak: a}, nil
}

func (l *List[T]) stride() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	if l.ptr == nil {
		return 0
	}
	return int(lengthOf(l.ptr))
}

// Cap returns the number of elements the buffer holds without reallocating.
func (l *List[T]) Cap() int {
	if l.ptr == nil {
		return 0
	}
	return int(capacityOf(l.ptr))
}

// Append adds v at the end, growing the buffer if needed, and returns the
// address of the written slot. The address stays valid only until the next
// growth-capable call. On allocation failure the list is unchanged.
func (l *List[T]) Append(v T) (*T, error) {
	if l.ptr == nil {
		return nil, ErrReleased
	}
	s, h, err := appendRaw(l.ptr, unsafe.Pointer(&v), l.stride())
	l.ptr = h
	if err != nil {
		return nil, err
	}
	return (*T)(s), nil
}

// Resize extends the list by delta slots in one step and returns the added
// region as a slice for the caller to populate. The region is uninitialized
// memory: element values in it are unspecified until written. The returned
// slice is invalidated like any other view (see Slice).
func (l *List[T]) Resize(delta int) ([]T, error) {
	if l.ptr == nil {
		return nil, ErrReleased
	}
	if delta < 0 {
		return nil, fmt.Errorf("%w: delta %d", ErrNegativeCount, delta)
	}
	first, h, err := resizeRaw(l.ptr, uintptr(delta), l.stride())
	l.ptr = h
	if err != nil {
		return nil, err
	}
	if delta == 0 {
		return nil, nil
	}
	return unsafe.Slice((*T)(first), delta), nil
}

// Reserve grows capacity, if needed, so n more elements fit without another
// allocation. A no-op when they already fit.
func (l *List[T]) Reserve(n int) error {
	if l.ptr == nil {
		return ErrReleased
	}
	if n < 0 {
		return fmt.Errorf("%w: reserve %d", ErrNegativeCount, n)
	}
	h, err := ensureCapacity(l.ptr, uintptr(n), l.stride())
	l.ptr = h
	return err
}

// RemoveAt removes the element at index i in O(1) by moving the last element
// into its place. Element order is not preserved. Length shrinks by one;
// capacity never shrinks.
func (l *List[T]) RemoveAt(i int) error {
	if l.ptr == nil {
		return ErrReleased
	}
	if i < 0 {
		return fmt.Errorf("%w: index %d", ErrIndexOutOfBounds, i)
	}
	return removeAtRaw(l.ptr, uintptr(i), l.stride())
}

// Clear resets the length to zero. Capacity is kept and the buffer is not
// zeroed; previous contents simply become out of contract.
func (l *List[T]) Clear() {
	if l.ptr != nil {
		clearRaw(l.ptr)
	}
}

// At returns the element at index i.
func (l *List[T]) At(i int) (T, error) {
	var zero T
	if l.ptr == nil {
		return zero, ErrReleased
	}
	if i < 0 || uintptr(i) >= lengthOf(l.ptr) {
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, lengthOf(l.ptr))
	}
	return *(*T)(slot(l.ptr, uintptr(i), l.stride())), nil
}

// Set overwrites the element at index i.
func (l *List[T]) Set(i int, v T) error {
	if l.ptr == nil {
		return ErrReleased
	}
	if i < 0 || uintptr(i) >= lengthOf(l.ptr) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfBounds, i, lengthOf(l.ptr))
	}
	*(*T)(slot(l.ptr, uintptr(i), l.stride())) = v
	return nil
}

// Slice returns a view over the live elements [0, Len). The view shares the
// backing buffer: writes through it are writes to the list, and it is
// invalidated by any growth-capable call and by Release.
func (l *List[T]) Slice() []T {
	if l.ptr == nil {
		return nil
	}
	n := lengthOf(l.ptr)
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(l.ptr), n)
}

// Release hands the backing allocation back to the allocator. The list and
// every address or slice obtained from it are invalid afterwards; further
// operations report ErrReleased. Release on a released list is a no-op.
func (l *List[T]) Release() {
	if l.ptr == nil {
		return
	}
	releaseRaw(l.ptr, l.stride())
	l.ptr = nil
}
