package alloc

// Heap allocates from the Go heap. It carries no state, so a single value
// (see Default) serves any number of lists concurrently.
type Heap struct{}

// NewHeap returns the heap allocator.
func NewHeap() *Heap { return &Heap{} }

// Allocate implements Allocator.
func (*Heap) Allocate(size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrSize
	}
	return alignedMake(size), nil
}

// Reallocate implements Allocator. Blocks never resize in place; a changed
// size allocates a new block and copies the common prefix.
func (h *Heap) Reallocate(size int, buf []byte) ([]byte, error) {
	if size < 0 {
		return nil, ErrSize
	}
	if size == len(buf) {
		return buf, nil
	}
	newBuf := alignedMake(size)
	copy(newBuf, buf)
	return newBuf, nil
}

// Release implements Allocator. The garbage collector reclaims the block once
// the last reference to it drops.
func (*Heap) Release([]byte) {}

var _ Allocator = (*Heap)(nil)
