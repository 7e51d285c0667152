package alloc

import "fmt"

// Limit wraps another Allocator and enforces a byte budget across all live
// blocks. Requests that would push the live total past the budget fail with
// ErrLimit before reaching the inner allocator, so the caller's existing
// blocks are never disturbed.
//
// A Limit is not thread-safe.
type Limit struct {
	inner Allocator
	max   int64
	live  int64
}

// NewLimit wraps inner with a budget of max bytes. A nil inner selects
// Default.
func NewLimit(max int64, inner Allocator) *Limit {
	if inner == nil {
		inner = Default
	}
	return &Limit{inner: inner, max: max}
}

// Allocate implements Allocator.
func (l *Limit) Allocate(size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrSize
	}
	if l.live+int64(size) > l.max {
		return nil, fmt.Errorf("%w: %d live + %d requested > %d", ErrLimit, l.live, size, l.max)
	}
	buf, err := l.inner.Allocate(size)
	if err != nil {
		return nil, err
	}
	l.live += int64(size)
	return buf, nil
}

// Reallocate implements Allocator. Only the size delta is charged against
// the budget.
func (l *Limit) Reallocate(size int, buf []byte) ([]byte, error) {
	if size < 0 {
		return nil, ErrSize
	}
	delta := int64(size) - int64(len(buf))
	if delta > 0 && l.live+delta > l.max {
		return nil, fmt.Errorf("%w: %d live + %d growth > %d", ErrLimit, l.live, delta, l.max)
	}
	newBuf, err := l.inner.Reallocate(size, buf)
	if err != nil {
		return nil, err
	}
	l.live += delta
	return newBuf, nil
}

// Release implements Allocator and returns the block's bytes to the budget.
func (l *Limit) Release(buf []byte) {
	l.inner.Release(buf)
	l.live -= int64(len(buf))
}

// Live reports the bytes currently counted against the budget.
func (l *Limit) Live() int64 { return l.live }

var _ Allocator = (*Limit)(nil)
